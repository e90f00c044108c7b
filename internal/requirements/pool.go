// Package requirements builds the candidate skill pool from taxonomy
// listings and accrues explicit, model, and inferred skills into the final
// requirement set.
package requirements

import (
	"github.com/jonathan/skill-search/internal/parsing"
	"github.com/jonathan/skill-search/internal/types"
)

// CodeSkills holds the taxonomy listings fetched for one classification code.
type CodeSkills struct {
	Code       string
	Technology []types.SkillItem
	Knowledge  []types.SkillItem
	Soft       []types.SkillItem
}

// FilterRelevant keeps skills whose relevance meets the threshold,
// preserving order.
func FilterRelevant(items []types.SkillItem, threshold float64) []types.SkillItem {
	var kept []types.SkillItem
	for _, item := range items {
		if item.Relevance >= threshold {
			kept = append(kept, item)
		}
	}
	return kept
}

// BuildPool merges the technology listings across all codes into the
// candidate pool, deduplicating by canonical name and keeping the maximum
// relevance, then applies the relevance threshold. When no technology skill
// survives the threshold, the pool falls back to the knowledge listings,
// filtered the same way; the two categories are never mixed.
func BuildPool(perCode []CodeSkills, threshold float64) []types.SkillItem {
	pool := FilterRelevant(mergeListings(perCode, func(cs CodeSkills) []types.SkillItem {
		return cs.Technology
	}), threshold)
	if len(pool) > 0 {
		return pool
	}
	return FilterRelevant(mergeListings(perCode, func(cs CodeSkills) []types.SkillItem {
		return cs.Knowledge
	}), threshold)
}

// mergeListings deduplicates one listing category across codes, keeping the
// maximum relevance per canonical name and first-seen order.
func mergeListings(perCode []CodeSkills, pick func(CodeSkills) []types.SkillItem) []types.SkillItem {
	var order []string
	best := make(map[string]types.SkillItem)
	for _, cs := range perCode {
		for _, item := range pick(cs) {
			canonical := parsing.CanonicalSkillName(item.Name)
			if canonical == "" {
				continue
			}
			existing, ok := best[canonical]
			if !ok {
				order = append(order, canonical)
				best[canonical] = types.SkillItem{Name: canonical, Relevance: item.Relevance}
				continue
			}
			if item.Relevance > existing.Relevance {
				existing.Relevance = item.Relevance
				best[canonical] = existing
			}
		}
	}

	merged := make([]types.SkillItem, 0, len(order))
	for _, canonical := range order {
		merged = append(merged, best[canonical])
	}
	return merged
}

// PoolTerms extracts the matcher term set from a pool.
func PoolTerms(pool []types.SkillItem) []string {
	terms := make([]string, 0, len(pool))
	for _, item := range pool {
		terms = append(terms, item.Name)
	}
	return terms
}
