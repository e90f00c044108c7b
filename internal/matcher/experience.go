package matcher

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/skill-search/internal/types"
)

// yearsPattern captures "<n> years of experience with <skill>" style phrases,
// including the "yrs"/"exp." abbreviations.
var yearsPattern = regexp.MustCompile(`(?i)(\d+)\s+(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp\.?)(?:\s+with)?\s+([\w\-.+#]+)`)

// rangePattern captures employment date ranges like "2018 - 2022" or
// "2019 – present".
var rangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-\x{2013}\x{2014}]\s*(present|current|\d{4})`)

// sectionHeadings maps the canonical resume section names to the heading
// variants that introduce them.
var sectionHeadings = map[string][]string{
	"summary":        {"summary", "professional summary", "profile", "about", "about me", "objective"},
	"experience":     {"experience", "work experience", "professional experience", "employment", "employment history", "work history"},
	"education":      {"education", "academic background", "qualifications"},
	"skills":         {"skills", "technical skills", "core competencies", "technologies", "tech stack"},
	"projects":       {"projects", "personal projects", "selected projects", "portfolio"},
	"certifications": {"certifications", "certificates", "licenses", "licenses and certifications"},
}

// headingLookup is the inverse of sectionHeadings, keyed by normalized
// heading text.
var headingLookup = func() map[string]string {
	lookup := make(map[string]string)
	for section, variants := range sectionHeadings {
		for _, v := range variants {
			lookup[v] = section
		}
	}
	return lookup
}()

// summaryLimit bounds the profile summary extracted from a resume.
const summaryLimit = 500

// MatchResumeSkills scans resume text for explicit skill mentions and
// attaches per-skill experience years when a years phrase appears near the
// mention. Skills come back in first-mention order.
func MatchResumeSkills(text string, terms []string) []types.ResumeSkill {
	occurrences := Scan(text, terms)
	if len(occurrences) == 0 {
		return nil
	}

	yearsBySkill := skillYears(text)

	skills := make([]types.ResumeSkill, 0, len(occurrences))
	for _, occ := range occurrences {
		skill := types.ResumeSkill{
			Skill:    occ.Skill,
			Mentions: occ.Count,
			Sources:  []string{types.SourceMatcher},
		}
		if years, ok := yearsBySkill[firstToken(occ.Skill)]; ok {
			skill.ExperienceYears = &years
		}
		skills = append(skills, skill)
	}
	return skills
}

// skillYears extracts every "<n> years ... <skill>" phrase from the text and
// returns years keyed by the lowercased skill token. When a skill appears in
// several phrases the largest figure wins.
func skillYears(text string) map[string]int {
	matches := yearsPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	years := make(map[string]int, len(matches))
	for _, m := range matches {
		n := parseInt(m[1])
		if n <= 0 {
			continue
		}
		token := strings.ToLower(strings.Trim(m[2], ".,;:"))
		if token == "" {
			continue
		}
		if n > years[token] {
			years[token] = n
		}
	}
	return years
}

// EstimateTotalYears derives total professional experience from employment
// date ranges found in the text. Overlaps are not collapsed; the span from
// the earliest start to the latest end is used. Returns nil when the text
// carries no parsable range.
func EstimateTotalYears(text string) *int {
	matches := rangePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	currentYear := time.Now().Year()
	earliest := 0
	latest := 0
	for _, m := range matches {
		start := parseInt(m[1])
		end := currentYear
		if strings.EqualFold(m[2], "present") || strings.EqualFold(m[2], "current") {
			end = currentYear
		} else {
			end = parseInt(m[2])
		}
		if start <= 1900 || start > currentYear || end < start {
			continue
		}
		if earliest == 0 || start < earliest {
			earliest = start
		}
		if end > latest {
			latest = end
		}
	}
	if earliest == 0 {
		return nil
	}
	total := latest - earliest
	return &total
}

// IdentifySections splits resume text into named sections by recognizing
// heading lines. Text before the first heading is ignored; each section runs
// until the next recognized heading.
func IdentifySections(text string) map[string]string {
	sections := make(map[string]string)
	lines := strings.Split(text, "\n")

	current := ""
	var buffer []string
	flush := func() {
		if current == "" {
			return
		}
		content := strings.TrimSpace(strings.Join(buffer, "\n"))
		if content != "" {
			if existing, ok := sections[current]; ok {
				sections[current] = existing + "\n" + content
			} else {
				sections[current] = content
			}
		}
		buffer = buffer[:0]
	}

	for _, line := range lines {
		if section, ok := matchHeading(line); ok {
			flush()
			current = section
			continue
		}
		if current != "" {
			buffer = append(buffer, line)
		}
	}
	flush()
	return sections
}

// matchHeading reports whether a line is a recognized section heading.
// Headings tolerate a trailing colon and arbitrary letter case.
func matchHeading(line string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(line))
	normalized = strings.TrimSuffix(normalized, ":")
	normalized = strings.Join(strings.Fields(normalized), " ")
	if normalized == "" {
		return "", false
	}
	section, ok := headingLookup[normalized]
	return section, ok
}

// BuildProfile assembles the resume profile from identified sections and the
// employment-range estimate.
func BuildProfile(text string, sections map[string]string) types.ResumeProfile {
	profile := types.ResumeProfile{
		TotalExperienceYears: EstimateTotalYears(text),
	}
	if summary, ok := sections["summary"]; ok {
		profile.Summary = truncate(summary, summaryLimit)
	}
	return profile
}

// BuildStatistics computes surface statistics over the raw resume text.
func BuildStatistics(text string, skillCount int) types.ResumeStatistics {
	lines := 0
	if text != "" {
		lines = strings.Count(text, "\n") + 1
	}
	return types.ResumeStatistics{
		Characters:     len(text),
		Lines:          lines,
		SkillsDetected: skillCount,
	}
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return strings.TrimSpace(s[:limit])
}

func firstToken(skill string) string {
	if i := strings.IndexByte(skill, ' '); i > 0 {
		return skill[:i]
	}
	return skill
}

func parseInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
