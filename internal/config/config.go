// Package config provides configuration loading and validation for the skill-search service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultSoftSkillThreshold applies to soft-skill filtering when no raw value
// is configured. Requirement filtering has no default (unset means no filtering).
const DefaultSoftSkillThreshold = 0.50

// DefaultGeminiModel is used when GEMINI_MODEL is not set.
const DefaultGeminiModel = "gemini-2.5-flash"

// Config holds the process-wide configuration, established at startup and
// never mutated during request handling.
type Config struct {
	// Taxonomy service credentials. Both must be set to enable taxonomy lookups.
	ONetUser     string
	ONetPassword string
	// ONetBaseURL overrides the taxonomy service endpoint (tests, proxies).
	ONetBaseURL string

	// RelevanceThreshold is the effective minimum normalized relevance for
	// candidate-pool skills, already parsed per ParseThreshold.
	RelevanceThreshold float64
	// SoftSkillThreshold is the effective minimum for soft-skill filtering.
	SoftSkillThreshold float64

	// GeminiAPIKey enables the LLM augmenter when non-empty.
	GeminiAPIKey string
	// GeminiModel is the model identifier for the augmenter.
	GeminiModel string

	// InferredScoring reports whether a downstream consumer may count
	// inferred requirements toward its match score. This core only tags
	// entries as inferred; the flag is surfaced for that consumer.
	InferredScoring bool
}

// ParseThreshold converts a raw configured value into an effective threshold:
// unparsable or <=0 means no filtering (0), values in (0,1] are used as-is,
// and values above 1 are treated as percentages and divided by 100.
func ParseThreshold(raw string) float64 {
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return 0
	}
	if value > 1 {
		return value / 100
	}
	return value
}

// FromEnv builds a Config from environment variables. Missing taxonomy or
// Gemini credentials disable the respective stage rather than failing.
func FromEnv() *Config {
	cfg := &Config{
		ONetUser:           os.Getenv("ONET_USER"),
		ONetPassword:       os.Getenv("ONET_PASSWORD"),
		ONetBaseURL:        os.Getenv("ONET_BASE_URL"),
		RelevanceThreshold: ParseThreshold(os.Getenv("RELEVANCE_THRESHOLD")),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),
		InferredScoring:    parseBool(os.Getenv("INFERRED_SCORING")),
	}

	if raw := os.Getenv("SOFT_SKILL_THRESHOLD"); raw != "" {
		cfg.SoftSkillThreshold = ParseThreshold(raw)
	} else {
		cfg.SoftSkillThreshold = DefaultSoftSkillThreshold
	}

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultGeminiModel
	}

	return cfg
}

// TaxonomyEnabled reports whether taxonomy lookups should be attempted.
func (c *Config) TaxonomyEnabled() bool {
	return c.ONetUser != "" && c.ONetPassword != ""
}

// GeminiEnabled reports whether the LLM augmenter should be attempted.
func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.RelevanceThreshold < 0 || c.RelevanceThreshold > 1 {
		return fmt.Errorf("config error: relevance threshold %v outside [0,1]", c.RelevanceThreshold)
	}
	if c.SoftSkillThreshold < 0 || c.SoftSkillThreshold > 1 {
		return fmt.Errorf("config error: soft-skill threshold %v outside [0,1]", c.SoftSkillThreshold)
	}
	if c.ONetUser != "" && c.ONetPassword == "" || c.ONetUser == "" && c.ONetPassword != "" {
		return fmt.Errorf("config error: ONET_USER and ONET_PASSWORD must be set together")
	}
	return nil
}

func parseBool(raw string) bool {
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return value
}
