package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Model() string { return "fake-model" }
func (f *fakeClient) Close() error  { return nil }

func TestBuildSkillPrompt_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", promptTextLimit+500)
	prompt := BuildSkillPrompt(long)

	assert.NotContains(t, prompt, strings.Repeat("a", promptTextLimit+1))
	assert.Contains(t, prompt, strings.Repeat("a", promptTextLimit))
}

func TestBuildSkillPrompt_TruncatesOnRuneBoundary(t *testing.T) {
	// place a multi-byte rune so the byte limit lands inside it
	long := strings.Repeat("a", promptTextLimit-1) + "é" + strings.Repeat("b", 200)
	prompt := BuildSkillPrompt(long)

	assert.True(t, utf8.ValidString(prompt))
	assert.NotContains(t, prompt, "é")
	assert.Contains(t, prompt, strings.Repeat("a", promptTextLimit-1))
}

func TestBuildSkillPrompt_ContainsRulesAndText(t *testing.T) {
	prompt := BuildSkillPrompt("We need a Python developer")

	assert.Contains(t, prompt, "We need a Python developer")
	assert.Contains(t, prompt, "1.0")
	assert.Contains(t, prompt, "0.8")
	assert.Contains(t, prompt, "optional, preferred, nice-to-have")
	assert.Contains(t, prompt, "Do not infer technologies")
	assert.Contains(t, prompt, "Skip soft skills")
	assert.Contains(t, prompt, "JSON array")
}

func TestParseSkillPayload_ValidResponse(t *testing.T) {
	skills, err := ParseSkillPayload(`[{"skill": "python", "importance": 1.0}, {"skill": "docker", "importance": 0.8}]`)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "python", skills[0].Skill)
	assert.InDelta(t, 1.0, skills[0].Importance, 1e-9)
	assert.Equal(t, "docker", skills[1].Skill)
	assert.InDelta(t, 0.8, skills[1].Importance, 1e-9)
}

func TestParseSkillPayload_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n[{\"skill\": \"go\", \"importance\": 1.0}]\n```"
	skills, err := ParseSkillPayload(raw)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "go", skills[0].Skill)
}

func TestParseSkillPayload_ClampsOutOfRangeImportance(t *testing.T) {
	skills, err := ParseSkillPayload(`[{"skill": "sql", "importance": 7.5}, {"skill": "aws", "importance": -1}]`)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.InDelta(t, InferredImportance, skills[0].Importance, 1e-9)
	assert.InDelta(t, InferredImportance, skills[1].Importance, 1e-9)
}

func TestParseSkillPayload_DropsBlankNames(t *testing.T) {
	skills, err := ParseSkillPayload(`[{"skill": "  ", "importance": 1.0}, {"skill": "react", "importance": 1.0}]`)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "react", skills[0].Skill)
}

func TestParseSkillPayload_RejectsWrongShape(t *testing.T) {
	_, err := ParseSkillPayload(`{"skills": ["python"]}`)
	require.Error(t, err)

	_, err = ParseSkillPayload(`[{"skill": "python"}]`)
	require.Error(t, err)

	_, err = ParseSkillPayload("")
	require.Error(t, err)
}

func TestExtractSkills_RoundTrip(t *testing.T) {
	client := &fakeClient{response: `[{"skill": "kubernetes", "importance": 0.8}]`}

	skills, err := ExtractSkills(context.Background(), client, "posting text")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "kubernetes", skills[0].Skill)
	assert.Contains(t, client.prompt, "posting text")
}

func TestExtractSkills_PropagatesClientError(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("deadline exceeded")}

	_, err := ExtractSkills(context.Background(), client, "text")
	require.Error(t, err)
}

func TestExtractSkills_NilClient(t *testing.T) {
	_, err := ExtractSkills(context.Background(), nil, "text")
	require.Error(t, err)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, CleanJSONBlock("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, CleanJSONBlock("```\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, CleanJSONBlock(`[{"a":1}]`))
	assert.Equal(t, "", CleanJSONBlock("   "))
}
