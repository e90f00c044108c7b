package parsing

import "strings"

// skillVariants maps common skill spelling variants to one canonical form.
// Canonical names are lowercase; the matcher and merge set are keyed on them.
var skillVariants = map[string]string{
	"golang":      "go",
	"go lang":     "go",
	"js":          "javascript",
	"ts":          "typescript",
	"k8s":         "kubernetes",
	"react.js":    "react",
	"reactjs":     "react",
	"vue.js":      "vue",
	"vuejs":       "vue",
	"nodejs":      "node.js",
	"node js":     "node.js",
	"postgres":    "postgresql",
	"psql":        "postgresql",
	"ci/cd":       "cicd",
	"restful api": "rest api",
}

// CanonicalSkillName lowercases and trims a skill name and resolves known
// spelling variants, producing the uniqueness key used by every merge step.
func CanonicalSkillName(name string) string {
	canonical := strings.ToLower(strings.TrimSpace(name))
	if canonical == "" {
		return ""
	}
	canonical = strings.Join(strings.Fields(canonical), " ")
	if variant, ok := skillVariants[canonical]; ok {
		return variant
	}
	return canonical
}
