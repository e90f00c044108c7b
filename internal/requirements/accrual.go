package requirements

import (
	"github.com/jonathan/skill-search/internal/parsing"
	"github.com/jonathan/skill-search/internal/types"
)

// DefaultInferredImportance is assigned to inferred skills whose pool entry
// carries no usable relevance.
const DefaultInferredImportance = 0.5

// Set accrues requirements from the matcher, the model, and the taxonomy
// pool. Entries are keyed by canonical skill name; insertion order is
// preserved so the final list is deterministic: matcher results first, then
// model-only skills in model order, then inferred skills in pool order.
type Set struct {
	order []string
	items map[string]*types.RequirementItem
}

// NewSet returns an empty accrual set.
func NewSet() *Set {
	return &Set{items: make(map[string]*types.RequirementItem)}
}

// AddMatched inserts explicit matcher results. Matcher output is already
// deduplicated; a repeated name keeps the first entry.
func (s *Set) AddMatched(matched []types.RequirementItem) {
	for _, item := range matched {
		canonical := parsing.CanonicalSkillName(item.Skill)
		if canonical == "" || s.items[canonical] != nil {
			continue
		}
		entry := item
		entry.Skill = canonical
		s.order = append(s.order, canonical)
		s.items[canonical] = &entry
	}
}

// MergeModel folds one model-extracted skill into the set. A skill the
// matcher already found keeps its matcher importance, gains model
// provenance, and records the model importance separately. A new skill is
// inserted with the model importance as an explicit requirement.
func (s *Set) MergeModel(skill string, importance float64) {
	canonical := parsing.CanonicalSkillName(skill)
	if canonical == "" {
		return
	}

	if existing, ok := s.items[canonical]; ok {
		if !existing.HasSource(types.SourceGemini) {
			existing.Sources = append(existing.Sources, types.SourceGemini)
		}
		existing.GeminiImportance = importance
		return
	}

	s.order = append(s.order, canonical)
	s.items[canonical] = &types.RequirementItem{
		Skill:      canonical,
		Importance: importance,
		Inferred:   false,
		Sources:    []string{types.SourceGemini},
	}
}

// AddInferred inserts pool skills not yet present as inferred requirements.
// The pool relevance becomes the importance; a non-positive relevance falls
// back to the default.
func (s *Set) AddInferred(pool []types.SkillItem) {
	for _, item := range pool {
		canonical := parsing.CanonicalSkillName(item.Name)
		if canonical == "" || s.items[canonical] != nil {
			continue
		}

		importance := DefaultInferredImportance
		if item.Relevance > 0 {
			importance = item.Relevance
		}
		s.order = append(s.order, canonical)
		s.items[canonical] = &types.RequirementItem{
			Skill:      canonical,
			Importance: importance,
			Inferred:   true,
			Sources:    []string{types.SourceONet},
		}
	}
}

// Contains reports whether the set already holds the skill.
func (s *Set) Contains(skill string) bool {
	return s.items[parsing.CanonicalSkillName(skill)] != nil
}

// Len returns the number of accrued requirements.
func (s *Set) Len() int {
	return len(s.order)
}

// Items returns the accrued requirements in insertion order.
func (s *Set) Items() []types.RequirementItem {
	result := make([]types.RequirementItem, 0, len(s.order))
	for _, canonical := range s.order {
		result = append(result, *s.items[canonical])
	}
	return result
}
