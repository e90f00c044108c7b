package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-search/internal/types"
)

func TestScan_CountsWholeTermOccurrences(t *testing.T) {
	text := "We use Python daily. Python and SQL power our stack. SQLAlchemy too."
	occurrences := Scan(text, []string{"python", "sql"})

	require.Len(t, occurrences, 2)
	assert.Equal(t, "python", occurrences[0].Skill)
	assert.Equal(t, 2, occurrences[0].Count)
	// "sqlalchemy" must not count as "sql"
	assert.Equal(t, "sql", occurrences[1].Skill)
	assert.Equal(t, 1, occurrences[1].Count)
}

func TestScan_MatchesMultiWordTermsAcrossLineBreaks(t *testing.T) {
	text := "Experience with machine\nlearning required"
	occurrences := Scan(text, []string{"machine learning"})

	require.Len(t, occurrences, 1)
	assert.Equal(t, "machine learning", occurrences[0].Skill)
}

func TestScan_CaseInsensitive(t *testing.T) {
	occurrences := Scan("KUBERNETES and Kubernetes and kubernetes", []string{"kubernetes"})
	require.Len(t, occurrences, 1)
	assert.Equal(t, 3, occurrences[0].Count)
}

func TestScan_MergesVariantSpellings(t *testing.T) {
	text := "Golang services. We love Go."
	occurrences := Scan(text, []string{"golang", "go"})

	require.Len(t, occurrences, 1)
	assert.Equal(t, "go", occurrences[0].Skill)
	assert.Equal(t, 2, occurrences[0].Count)
}

func TestScan_SymbolHeavyTerms(t *testing.T) {
	text := "Strong C++ and .NET background, with some C# too."
	occurrences := Scan(text, []string{"c++", ".net", "c#"})
	assert.Len(t, occurrences, 3)
}

func TestScan_EmptyInputs(t *testing.T) {
	assert.Nil(t, Scan("", []string{"python"}))
	assert.Empty(t, Scan("some text", nil))
	assert.Empty(t, Scan("some text", []string{""}))
}

func TestImportance_BoundedAboveHalf(t *testing.T) {
	assert.InDelta(t, 1.0, Importance(4, 4), 1e-9)
	assert.InDelta(t, 0.75, Importance(2, 4), 1e-9)
	assert.InDelta(t, 0.625, Importance(1, 4), 1e-9)
	// single mention of the only skill still scores 1.0
	assert.InDelta(t, 1.0, Importance(1, 1), 1e-9)
	// never exceeds 1.0
	assert.InDelta(t, 1.0, Importance(9, 4), 1e-9)
}

func TestMatchRequirements_OrderedByImportance(t *testing.T) {
	text := "python python python sql sql aws"
	requirements := MatchRequirements(text, []string{"python", "sql", "aws"})

	require.Len(t, requirements, 3)
	assert.Equal(t, "python", requirements[0].Skill)
	assert.InDelta(t, 1.0, requirements[0].Importance, 1e-9)
	assert.Equal(t, "sql", requirements[1].Skill)
	assert.Equal(t, "aws", requirements[2].Skill)

	for _, req := range requirements {
		assert.False(t, req.Inferred)
		assert.Equal(t, []string{types.SourceMatcher}, req.Sources)
		assert.Greater(t, req.Importance, 0.5)
		assert.LessOrEqual(t, req.Importance, 1.0)
	}
}

func TestMatchRequirements_TiebreakByName(t *testing.T) {
	requirements := MatchRequirements("terraform docker", []string{"terraform", "docker"})

	require.Len(t, requirements, 2)
	assert.Equal(t, "docker", requirements[0].Skill)
	assert.Equal(t, "terraform", requirements[1].Skill)
}

func TestMatchRequirements_NoMatches(t *testing.T) {
	assert.Nil(t, MatchRequirements("nothing relevant here", []string{"cobol"}))
}
