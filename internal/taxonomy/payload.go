package taxonomy

import (
	"strings"

	"github.com/jonathan/skill-search/internal/types"
)

// The taxonomy service wraps element arrays in several shapes depending on
// the endpoint generation:
//
//	{ "element": [...] }
//	{ "report": { "element": [...] } }
//	{ "report": { "category": [ { "element": [...] }, ... ] } }
//	{ "summary": { "skills": { "element": [...] } } }
//	{ "details": { "skills": { "element": [...] } } }
//
// elementPayload covers all of them; elementLists flattens whichever are set.
type elementPayload struct {
	Element []element `json:"element"`
	Report  *wrapper  `json:"report"`
	Summary *wrapper  `json:"summary"`
	Details *wrapper  `json:"details"`
}

type wrapper struct {
	Element  []element `json:"element"`
	Skills   *group    `json:"skills"`
	Category []group   `json:"category"`
}

type group struct {
	Element []element `json:"element"`
}

type element struct {
	Name    string      `json:"name"`
	Score   *score      `json:"score"`
	Data    []dataPoint `json:"data"`
	Example []example   `json:"example"`
}

type score struct {
	Value *float64 `json:"value"`
}

// dataPoint is a labeled measurement attached to an element; the importance
// measurement carries id "IM" (older responses spell out the name).
type dataPoint struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
}

type example struct {
	Name          string `json:"name"`
	HotTechnology bool   `json:"hot_technology"`
}

func (p *elementPayload) elementLists() [][]element {
	var lists [][]element
	if len(p.Element) > 0 {
		lists = append(lists, p.Element)
	}
	for _, w := range []*wrapper{p.Report, p.Summary, p.Details} {
		if w == nil {
			continue
		}
		if len(w.Element) > 0 {
			lists = append(lists, w.Element)
		}
		if w.Skills != nil && len(w.Skills.Element) > 0 {
			lists = append(lists, w.Skills.Element)
		}
		for _, category := range w.Category {
			if len(category.Element) > 0 {
				lists = append(lists, category.Element)
			}
		}
	}
	return lists
}

// importance extracts the provider importance for an element, preferring the
// score object over the labeled data array. Returns false when the provider
// supplied no measurement.
func (e *element) importance() (float64, bool) {
	if e.Score != nil && e.Score.Value != nil {
		return *e.Score.Value, true
	}
	for _, d := range e.Data {
		if d.Value == nil {
			continue
		}
		// Labels vary ("Importance", "importance score"); a substring check
		// keeps parsing tolerant across response generations.
		if d.ID == "IM" || d.ID == "IMP" || strings.Contains(strings.ToLower(d.Name), "importance") {
			return *d.Value, true
		}
	}
	return 0, false
}

// parseScoredPayload extracts named elements with provider importance scores,
// normalizing the provider's 0-100 scale to [0,1].
func parseScoredPayload(payload *elementPayload) []types.SkillItem {
	var items []types.SkillItem
	for _, elements := range payload.elementLists() {
		for _, el := range elements {
			if el.Name == "" {
				continue
			}
			value, ok := el.importance()
			if !ok {
				continue
			}
			items = append(items, types.SkillItem{
				Name:      el.Name,
				Relevance: value / 100,
			})
		}
	}
	return items
}

// parseTechnologyPayload extracts technology skills: every category name
// becomes a skill at relevance 1.0, and each hot-technology example becomes a
// skill with a tiered relevance based on the example-list length.
func parseTechnologyPayload(payload *elementPayload) []types.SkillItem {
	var items []types.SkillItem
	for _, elements := range payload.elementLists() {
		for _, el := range elements {
			if el.Name != "" {
				items = append(items, types.SkillItem{Name: el.Name, Relevance: 1.0})
			}
			if len(el.Example) == 0 {
				continue
			}
			tiered := tieredExampleScore(len(el.Example))
			for _, ex := range el.Example {
				if ex.Name != "" && ex.HotTechnology {
					items = append(items, types.SkillItem{Name: ex.Name, Relevance: tiered})
				}
			}
		}
	}
	return items
}

// tieredExampleScore maps an example-list length to a relevance in [0.1, 1.0]:
// 1-2 examples score 1.0, 3-4 score 0.9, and so on down by 0.1 per pair with
// a 0.1 floor. Longer lists dilute the signal of any single example.
func tieredExampleScore(n int) float64 {
	bucket := (n + 1) / 2
	if bucket < 1 {
		bucket = 1
	}
	raw := 110 - bucket*10
	if raw < 10 {
		raw = 10
	}
	return float64(raw) / 100
}
