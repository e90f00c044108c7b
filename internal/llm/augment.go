package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skill-search/internal/schemas"
)

// promptTextLimit caps how much posting text is sent to the model.
const promptTextLimit = 15000

// Explicit and inferred importance values the model is instructed to emit.
const (
	ExplicitImportance = 1.0
	InferredImportance = 0.8
)

// ModelSkill is one skill the model extracted from the posting text.
type ModelSkill struct {
	Skill      string  `json:"skill"`
	Importance float64 `json:"importance"`
}

// skillListSchema validates the model payload before it reaches the merge
// step: a flat array of {skill, importance} objects and nothing else.
const skillListSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "skill": {"type": "string", "minLength": 1},
      "importance": {"type": "number"}
    },
    "required": ["skill", "importance"],
    "additionalProperties": false
  }
}`

// BuildSkillPrompt constructs the extraction prompt for a job posting. Text
// beyond the prompt limit is truncated on a rune boundary; postings rarely
// carry skill signal that deep.
func BuildSkillPrompt(text string) string {
	if len(text) > promptTextLimit {
		cut := promptTextLimit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	var sb strings.Builder
	sb.WriteString("You are an expert job posting analyst. Extract every skill, technology, and competency the posting asks for.\n\n")
	sb.WriteString("Return ONLY a JSON array with this exact structure:\n")
	sb.WriteString(`[{"skill": "skill name", "importance": 1.0}]` + "\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString(fmt.Sprintf("- importance is %.1f for skills the posting explicitly requires.\n", ExplicitImportance))
	sb.WriteString(fmt.Sprintf("- importance is %.1f for skills the posting names as optional, preferred, nice-to-have, or a bonus.\n", InferredImportance))
	sb.WriteString("- Only include skills the posting actually mentions. Do not infer technologies the posting does not name.\n")
	sb.WriteString("- Skip soft skills and vague traits such as communication, teamwork, or self-starter.\n")
	sb.WriteString("- Use short lowercase skill names, one skill per entry, no duplicates.\n")
	sb.WriteString("- Return ONLY the JSON array, no markdown, no explanation, no code blocks.\n\n")
	sb.WriteString("Job posting:\n\"\"\"\n")
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// ParseSkillPayload validates and decodes a model response into skills.
// Entries with empty names are dropped; importance values outside (0, 1]
// are clamped into range.
func ParseSkillPayload(raw string) ([]ModelSkill, error) {
	cleaned := CleanJSONBlock(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty model response")
	}

	if err := schemas.ValidateJSONString(skillListSchema, cleaned); err != nil {
		return nil, fmt.Errorf("model response failed validation: %w", err)
	}

	var decoded []ModelSkill
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	skills := make([]ModelSkill, 0, len(decoded))
	for _, skill := range decoded {
		name := strings.TrimSpace(skill.Skill)
		if name == "" {
			continue
		}
		importance := skill.Importance
		if importance <= 0 || importance > 1 {
			importance = InferredImportance
		}
		skills = append(skills, ModelSkill{Skill: name, Importance: importance})
	}
	return skills, nil
}

// ExtractSkills runs the full augmentation round-trip: prompt, generate,
// validate, decode. Model order is preserved.
func ExtractSkills(ctx context.Context, client Client, text string) ([]ModelSkill, error) {
	if client == nil {
		return nil, fmt.Errorf("no model client configured")
	}

	raw, err := client.GenerateJSON(ctx, BuildSkillPrompt(text))
	if err != nil {
		return nil, err
	}
	return ParseSkillPayload(raw)
}
