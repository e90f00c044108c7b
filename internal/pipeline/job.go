// Package pipeline orchestrates the job and resume parsing flows: title
// sanitization, taxonomy lookups, explicit matching, model augmentation, and
// the final requirement accrual.
package pipeline

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-search/internal/config"
	"github.com/jonathan/skill-search/internal/dictionary"
	"github.com/jonathan/skill-search/internal/llm"
	"github.com/jonathan/skill-search/internal/matcher"
	"github.com/jonathan/skill-search/internal/parsing"
	"github.com/jonathan/skill-search/internal/requirements"
	"github.com/jonathan/skill-search/internal/types"
)

// codeFetchLimit bounds concurrent per-code taxonomy fetches.
const codeFetchLimit = 4

// TaxonomyClient is the taxonomy surface the pipeline needs. The concrete
// client lives in the taxonomy package; tests substitute a stub.
type TaxonomyClient interface {
	Search(ctx context.Context, query string) ([]string, error)
	TechnologySkills(ctx context.Context, code string) ([]types.SkillItem, error)
	KnowledgeSkills(ctx context.Context, code string) ([]types.SkillItem, error)
	SoftSkills(ctx context.Context, code string) ([]types.SkillItem, error)
}

// Parser runs the parsing pipelines against configured collaborators. Either
// collaborator may be nil; the corresponding stage degrades to a no-op and
// the parse still succeeds on matcher output alone.
type Parser struct {
	cfg      *config.Config
	taxonomy TaxonomyClient
	model    llm.Client
}

// NewParser creates a parser with the given collaborators.
func NewParser(cfg *config.Config, taxonomy TaxonomyClient, model llm.Client) *Parser {
	return &Parser{cfg: cfg, taxonomy: taxonomy, model: model}
}

// ParseJob runs the full job pipeline and returns the requirement and
// soft-skill collections. Taxonomy and model failures degrade to partial
// results; only an empty posting is an error upstream of this call.
func (p *Parser) ParseJob(ctx context.Context, title, text string) (*types.ParsedJob, error) {
	runID := uuid.NewString()[:8]
	log.Printf("[Pipeline %s] Parsing job posting (title=%q, %d chars)", runID, title, len(text))

	var perCode []requirements.CodeSkills
	var modelSkills []llm.ModelSkill

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		perCode = p.fetchTaxonomy(gCtx, runID, title)
		return nil
	})
	g.Go(func() error {
		modelSkills = p.augment(gCtx, runID, text)
		return nil
	})
	// Both branches swallow their errors; Wait only propagates ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pool := requirements.BuildPool(perCode, p.cfg.RelevanceThreshold)
	log.Printf("[Pipeline %s] Candidate pool: %d skills after relevance filter", runID, len(pool))

	terms := append(requirements.PoolTerms(pool), dictionary.Terms()...)
	matched := matcher.MatchRequirements(text, terms)

	set := requirements.NewSet()
	set.AddMatched(matched)
	for _, skill := range modelSkills {
		set.MergeModel(skill.Skill, skill.Importance)
	}
	set.AddInferred(pool)

	softSkills := requirements.AggregateSoftSkills(perCode, p.cfg.SoftSkillThreshold)
	log.Printf("[Pipeline %s] Done: %d requirements, %d soft skills", runID, set.Len(), len(softSkills))

	parsed := &types.ParsedJob{
		Requirements: set.Items(),
		SoftSkills:   softSkills,
	}
	if parsed.Requirements == nil {
		parsed.Requirements = []types.RequirementItem{}
	}
	if parsed.SoftSkills == nil {
		parsed.SoftSkills = []types.SoftSkillItem{}
	}
	return parsed, nil
}

// fetchTaxonomy resolves the title to classification codes and fetches the
// skill listings for each code concurrently. Every failure is logged and
// degrades to an empty listing; results come back in code-discovery order.
func (p *Parser) fetchTaxonomy(ctx context.Context, runID, title string) []requirements.CodeSkills {
	if p.taxonomy == nil || !p.cfg.TaxonomyEnabled() {
		return nil
	}

	codes := p.discoverCodes(ctx, runID, title)
	if len(codes) == 0 {
		return nil
	}

	perCode := make([]requirements.CodeSkills, len(codes))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(codeFetchLimit)
	for i, code := range codes {
		g.Go(func() error {
			perCode[i] = p.fetchCode(gCtx, runID, code)
			return nil
		})
	}
	_ = g.Wait()
	return perCode
}

// discoverCodes issues both title queries, full title then last token, and
// merges their codes in discovery order. A failed query is logged and
// skipped; the other query's codes still count.
func (p *Parser) discoverCodes(ctx context.Context, runID, title string) []string {
	queries := parsing.SanitizeTitle(title)
	if queries.IsEmpty() {
		log.Printf("[Pipeline %s] Title %q sanitized to nothing, skipping taxonomy", runID, title)
		return nil
	}

	seen := make(map[string]bool)
	var merged []string
	for _, query := range queries.All() {
		codes, err := p.taxonomy.Search(ctx, query)
		if err != nil {
			log.Printf("[Pipeline %s] Warning: taxonomy search %q failed: %v", runID, query, err)
			continue
		}
		for _, code := range codes {
			if code == "" || seen[code] {
				continue
			}
			seen[code] = true
			merged = append(merged, code)
		}
	}
	if len(merged) == 0 {
		log.Printf("[Pipeline %s] No classification codes found for %q", runID, title)
		return nil
	}
	log.Printf("[Pipeline %s] Title %q resolved to %d codes", runID, title, len(merged))
	return merged
}

// fetchCode fetches the three listings for one code. Each category fails
// independently.
func (p *Parser) fetchCode(ctx context.Context, runID, code string) requirements.CodeSkills {
	cs := requirements.CodeSkills{Code: code}

	var err error
	if cs.Technology, err = p.taxonomy.TechnologySkills(ctx, code); err != nil {
		log.Printf("[Pipeline %s] Warning: technology fetch for %s failed: %v", runID, code, err)
	}
	if cs.Knowledge, err = p.taxonomy.KnowledgeSkills(ctx, code); err != nil {
		log.Printf("[Pipeline %s] Warning: knowledge fetch for %s failed: %v", runID, code, err)
	}
	if cs.Soft, err = p.taxonomy.SoftSkills(ctx, code); err != nil {
		log.Printf("[Pipeline %s] Warning: soft-skill fetch for %s failed: %v", runID, code, err)
	}
	return cs
}

// augment runs the model extraction. Any failure is logged and swallowed;
// the parse continues without model skills.
func (p *Parser) augment(ctx context.Context, runID, text string) []llm.ModelSkill {
	if p.model == nil || !p.cfg.GeminiEnabled() {
		return nil
	}

	skills, err := llm.ExtractSkills(ctx, p.model, text)
	if err != nil {
		log.Printf("[Pipeline %s] Warning: model augmentation failed: %v", runID, err)
		return nil
	}
	log.Printf("[Pipeline %s] Model extracted %d skills", runID, len(skills))
	return skills
}
