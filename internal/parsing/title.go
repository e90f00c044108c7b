// Package parsing provides title sanitization and skill-name canonicalization
// for the extraction pipeline.
package parsing

import (
	"regexp"
	"strings"
)

// QuerySeparator joins title tokens into a single taxonomy search query.
const QuerySeparator = "+"

// bracketPattern matches content inside (), [] and {} including the brackets.
var bracketPattern = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]|\{[^}]*\}`)

// seniorityTokens are level/seniority words stripped from titles before the
// taxonomy lookup; they carry no occupational signal.
var seniorityTokens = map[string]bool{
	"junior":       true,
	"jr":           true,
	"senior":       true,
	"sr":           true,
	"intermediate": true,
	"mid":          true,
	"lead":         true,
	"principal":    true,
	"staff":        true,
	"intern":       true,
	"internship":   true,
	"entry":        true,
	"entry-level":  true,
	"graduate":     true,
}

// TitleQueries holds the search queries derived from a sanitized job title.
type TitleQueries struct {
	// Full is the whole sanitized title with tokens joined by QuerySeparator.
	// Empty only when the input was empty or consisted entirely of noise.
	Full string
	// LastToken is the final remaining token alone. Empty when the sanitized
	// title has a single token.
	LastToken string
}

// IsEmpty reports whether sanitization produced no usable query.
func (q TitleQueries) IsEmpty() bool {
	return q.Full == ""
}

// All returns the non-empty queries in lookup order.
func (q TitleQueries) All() []string {
	if q.Full == "" {
		return nil
	}
	if q.LastToken == "" {
		return []string{q.Full}
	}
	return []string{q.Full, q.LastToken}
}

// SanitizeTitle strips bracketed content and seniority tokens from a raw job
// title and returns the taxonomy search queries built from what remains.
func SanitizeTitle(title string) TitleQueries {
	cleaned := bracketPattern.ReplaceAllString(title, " ")

	var tokens []string
	for _, field := range strings.Fields(cleaned) {
		token := strings.ToLower(strings.Trim(field, ",;:/\\|"))
		if token == "" || seniorityTokens[token] {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		return TitleQueries{}
	}

	queries := TitleQueries{Full: strings.Join(tokens, QuerySeparator)}
	if len(tokens) > 1 {
		queries.LastToken = tokens[len(tokens)-1]
	}
	return queries
}
