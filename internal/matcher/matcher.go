// Package matcher scans raw job and resume text for explicit skill mentions
// and converts occurrence frequency into bounded importance scores.
package matcher

import (
	"sort"
	"strings"

	"github.com/jonathan/skill-search/internal/parsing"
	"github.com/jonathan/skill-search/internal/types"
)

// Occurrence records one matched term and how often it appears in the text.
type Occurrence struct {
	Skill string
	Count int
	// FirstIndex is the byte offset of the first match in the normalized
	// text; resume output preserves first-mention order through it.
	FirstIndex int
}

// normalizeText lowercases text and collapses whitespace runs to single
// spaces so multi-word terms match across line breaks.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// isWordByte reports whether b continues a word for boundary purposes.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

// countTerm counts non-overlapping whole-term occurrences of term in the
// normalized text and returns the offset of the first one.
func countTerm(text, term string) (int, int) {
	count := 0
	first := -1
	for idx := 0; idx < len(text); {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			break
		}
		start := idx + i
		end := start + len(term)
		boundedLeft := start == 0 || !isWordByte(text[start-1])
		boundedRight := end == len(text) || !isWordByte(text[end])
		if boundedLeft && boundedRight {
			if first < 0 {
				first = start
			}
			count++
		}
		idx = end
	}
	return count, first
}

// Scan matches every term (case-insensitive, whole-term, multi-word aware)
// against the text and returns one Occurrence per term found, keyed by
// canonical skill name with counts merged across variant spellings.
func Scan(text string, terms []string) []Occurrence {
	normalized := normalizeText(text)
	if normalized == "" {
		return nil
	}

	found := make(map[string]*Occurrence)
	seen := make(map[string]bool)
	for _, term := range terms {
		needle := normalizeText(term)
		if needle == "" || seen[needle] {
			continue
		}
		seen[needle] = true

		count, first := countTerm(normalized, needle)
		if count == 0 {
			continue
		}

		canonical := parsing.CanonicalSkillName(needle)
		if existing, ok := found[canonical]; ok {
			existing.Count += count
			if first < existing.FirstIndex {
				existing.FirstIndex = first
			}
			continue
		}
		found[canonical] = &Occurrence{Skill: canonical, Count: count, FirstIndex: first}
	}

	occurrences := make([]Occurrence, 0, len(found))
	for _, occ := range found {
		occurrences = append(occurrences, *occ)
	}
	sort.Slice(occurrences, func(i, j int) bool {
		return occurrences[i].FirstIndex < occurrences[j].FirstIndex
	})
	return occurrences
}

// Importance maps an occurrence count to (0.5, 1.0]: a single mention of the
// least frequent skill lands near 0.5 and the most frequent skill at 1.0.
// The mapping saturates; importance never exceeds 1.0.
func Importance(count, maxCount int) float64 {
	if maxCount < 1 {
		maxCount = 1
	}
	if count > maxCount {
		count = maxCount
	}
	score := 0.5 + 0.5*float64(count)/float64(maxCount)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// MatchRequirements scans the text against the term set and emits one
// explicit requirement per matched skill, ordered by importance descending
// with canonical name as the tiebreak.
func MatchRequirements(text string, terms []string) []types.RequirementItem {
	occurrences := Scan(text, terms)
	if len(occurrences) == 0 {
		return nil
	}

	maxCount := 0
	for _, occ := range occurrences {
		if occ.Count > maxCount {
			maxCount = occ.Count
		}
	}

	requirements := make([]types.RequirementItem, 0, len(occurrences))
	for _, occ := range occurrences {
		requirements = append(requirements, types.RequirementItem{
			Skill:      occ.Skill,
			Importance: Importance(occ.Count, maxCount),
			Inferred:   false,
			Sources:    []string{types.SourceMatcher},
		})
	}

	sort.Slice(requirements, func(i, j int) bool {
		if requirements[i].Importance != requirements[j].Importance {
			return requirements[i].Importance > requirements[j].Importance
		}
		return requirements[i].Skill < requirements[j].Skill
	})
	return requirements
}
