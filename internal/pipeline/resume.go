package pipeline

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/skill-search/internal/dictionary"
	"github.com/jonathan/skill-search/internal/llm"
	"github.com/jonathan/skill-search/internal/matcher"
	"github.com/jonathan/skill-search/internal/parsing"
	"github.com/jonathan/skill-search/internal/types"
)

// ParseResume runs the resume pipeline: dictionary matching with experience
// heuristics, section identification, and optional model augmentation.
func (p *Parser) ParseResume(ctx context.Context, text string) (*types.ParsedResume, error) {
	runID := uuid.NewString()[:8]
	log.Printf("[Pipeline %s] Parsing resume (%d chars)", runID, len(text))

	skills := matcher.MatchResumeSkills(text, dictionary.Terms())
	skills = p.augmentResumeSkills(ctx, runID, text, skills)

	sections := matcher.IdentifySections(text)
	parsed := &types.ParsedResume{
		Skills:     skills,
		Sections:   sections,
		Statistics: matcher.BuildStatistics(text, len(skills)),
		Profile:    matcher.BuildProfile(text, sections),
	}
	if parsed.Skills == nil {
		parsed.Skills = []types.ResumeSkill{}
	}
	log.Printf("[Pipeline %s] Done: %d skills, %d sections", runID, len(parsed.Skills), len(sections))
	return parsed, nil
}

// augmentResumeSkills folds model-extracted skills into the matcher results.
// A skill the matcher already found gains model provenance and the model
// importance; a new skill is appended with zero mentions. Model failures are
// logged and swallowed.
func (p *Parser) augmentResumeSkills(ctx context.Context, runID, text string, skills []types.ResumeSkill) []types.ResumeSkill {
	if p.model == nil || !p.cfg.GeminiEnabled() {
		return skills
	}

	modelSkills, err := llm.ExtractSkills(ctx, p.model, text)
	if err != nil {
		log.Printf("[Pipeline %s] Warning: model augmentation failed: %v", runID, err)
		return skills
	}

	index := make(map[string]int, len(skills))
	for i, skill := range skills {
		index[skill.Skill] = i
	}
	for _, ms := range modelSkills {
		canonical := parsing.CanonicalSkillName(ms.Skill)
		if canonical == "" {
			continue
		}
		if i, ok := index[canonical]; ok {
			existing := &skills[i]
			if !hasSource(existing.Sources, types.SourceGemini) {
				existing.Sources = append(existing.Sources, types.SourceGemini)
			}
			existing.GeminiImportance = ms.Importance
			continue
		}
		index[canonical] = len(skills)
		skills = append(skills, types.ResumeSkill{
			Skill:            canonical,
			Sources:          []string{types.SourceGemini},
			GeminiImportance: ms.Importance,
		})
	}
	return skills
}

func hasSource(sources []string, source string) bool {
	for _, s := range sources {
		if s == source {
			return true
		}
	}
	return false
}
