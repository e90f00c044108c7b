package requirements

import (
	"github.com/jonathan/skill-search/internal/parsing"
	"github.com/jonathan/skill-search/internal/types"
)

// AggregateSoftSkills merges the soft-skill listings fetched per code into
// one list. Skills below the threshold are dropped, duplicates keep the
// maximum value, and first-seen order is preserved.
func AggregateSoftSkills(perCode []CodeSkills, threshold float64) []types.SoftSkillItem {
	var order []string
	best := make(map[string]float64)
	for _, cs := range perCode {
		for _, item := range cs.Soft {
			if item.Relevance < threshold {
				continue
			}
			canonical := parsing.CanonicalSkillName(item.Name)
			if canonical == "" {
				continue
			}
			value, ok := best[canonical]
			if !ok {
				order = append(order, canonical)
				best[canonical] = item.Relevance
				continue
			}
			if item.Relevance > value {
				best[canonical] = item.Relevance
			}
		}
	}

	softSkills := make([]types.SoftSkillItem, 0, len(order))
	for _, canonical := range order {
		softSkills = append(softSkills, types.SoftSkillItem{
			Skill: canonical,
			Value: best[canonical],
		})
	}
	return softSkills
}
