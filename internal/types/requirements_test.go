package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementItem_HasSource(t *testing.T) {
	req := RequirementItem{Sources: []string{SourceMatcher, SourceGemini}}

	assert.True(t, req.HasSource(SourceMatcher))
	assert.True(t, req.HasSource(SourceGemini))
	assert.False(t, req.HasSource(SourceONet))
}

func TestRequirementItem_JSONOmitsProvenance(t *testing.T) {
	req := RequirementItem{
		Skill:            "python",
		Importance:       0.9,
		Sources:          []string{SourceMatcher},
		GeminiImportance: 1.0,
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skill": "python", "importance": 0.9, "inferred": false}`, string(data))
}

func TestResumeSkill_JSONShape(t *testing.T) {
	years := 4
	skill := ResumeSkill{
		Skill:            "python",
		ExperienceYears:  &years,
		Mentions:         2,
		Sources:          []string{SourceMatcher, SourceGemini},
		GeminiImportance: 1.0,
	}

	data, err := json.Marshal(skill)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"skill": "python",
		"experience_years": 4,
		"mentions": 2,
		"source": ["matcher", "gemini"],
		"gemini_importance": 1.0
	}`, string(data))
}

func TestResumeSkill_GeminiImportanceOmittedWhenZero(t *testing.T) {
	data, err := json.Marshal(ResumeSkill{Skill: "go", Sources: []string{SourceMatcher}})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "gemini_importance")
}

func TestParseJobRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ParseJobRequest{Text: "posting"}).Validate())
	assert.NoError(t, (&ParseJobRequest{URL: "https://example.com/job"}).Validate())

	assert.Error(t, (&ParseJobRequest{}).Validate())
	assert.Error(t, (&ParseJobRequest{Text: "posting", URL: "https://example.com/job"}).Validate())
	assert.Error(t, (&ParseJobRequest{URL: "not a url"}).Validate())
}

func TestParseResumeRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ParseResumeRequest{Text: "resume"}).Validate())
	assert.Error(t, (&ParseResumeRequest{}).Validate())
}
