// Package types provides type definitions for structured data used throughout the skill-search system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Requirement sources, in the order they contribute during a parse.
const (
	// SourceMatcher marks skills detected directly in the text by the explicit matcher.
	SourceMatcher = "matcher"
	// SourceGemini marks skills extracted by the LLM augmenter.
	SourceGemini = "gemini"
	// SourceONet marks skills inferred from the occupational taxonomy candidate pool.
	SourceONet = "onet"
)

// SkillItem is a single taxonomy-sourced skill with its provider relevance
// normalized to the 0-1 range.
type SkillItem struct {
	Name      string  `json:"name"`
	Relevance float64 `json:"relevance"`
}

// RequirementItem is one entry in the requirement collection produced by the
// job pipeline. Importance is always in (0, 1]. Inferred entries come from the
// candidate pool only, never from the matcher or the LLM.
type RequirementItem struct {
	Skill      string  `json:"skill"`
	Importance float64 `json:"importance"`
	Inferred   bool    `json:"inferred"`

	// Sources records which stages produced this skill. It is kept for
	// provenance and resume output but omitted from the job response.
	Sources []string `json:"-"`
	// GeminiImportance preserves the model-assigned importance when the
	// matcher importance wins the merge. Zero when the LLM never saw the skill.
	GeminiImportance float64 `json:"-"`
}

// HasSource reports whether the requirement carries the given provenance tag.
func (r *RequirementItem) HasSource(source string) bool {
	for _, s := range r.Sources {
		if s == source {
			return true
		}
	}
	return false
}

// SoftSkillItem is one entry in the soft-skill collection. Value is the
// maximum normalized relevance observed across all classification codes.
type SoftSkillItem struct {
	Skill string  `json:"skill"`
	Value float64 `json:"value"`
}

// ParsedJob is the terminal output of the job pipeline. Exactly these two
// keys appear in the job parsing response.
type ParsedJob struct {
	Requirements []RequirementItem `json:"requirements"`
	SoftSkills   []SoftSkillItem   `json:"soft_skills"`
}

// ResumeSkill is one detected skill in a resume. ExperienceYears and Mentions
// are derived purely from matcher-side text heuristics; the LLM augmenter only
// contributes provenance and its auxiliary importance.
type ResumeSkill struct {
	Skill            string   `json:"skill"`
	ExperienceYears  *int     `json:"experience_years"`
	Mentions         int      `json:"mentions"`
	Sources          []string `json:"source"`
	GeminiImportance float64  `json:"gemini_importance,omitempty"`
}

// ResumeStatistics describes the size of the parsed resume.
type ResumeStatistics struct {
	Characters     int `json:"characters"`
	Lines          int `json:"lines"`
	SkillsDetected int `json:"skills_detected"`
}

// ResumeProfile is the high-level summary derived from a resume.
type ResumeProfile struct {
	Summary              string `json:"summary"`
	TotalExperienceYears *int   `json:"total_experience_years"`
}

// ParsedResume is the terminal output of the resume pipeline.
type ParsedResume struct {
	Skills     []ResumeSkill     `json:"skills"`
	Sections   map[string]string `json:"sections"`
	Statistics ResumeStatistics  `json:"statistics"`
	Profile    ResumeProfile     `json:"profile"`
}
