// Package normalize cleans raw sentences into lowercase alphabetic tokens.
//
// Cleaning keeps only the characters a-z, space and underscore. Underscore
// survives so that phrases joined by a phrase-detection stage ("new_york")
// stay a single token.
package normalize

import (
	"regexp"
	"strings"
)

var (
	connectors = regexp.MustCompile(`[,:(){}\[\]]+`)
	spaces     = regexp.MustCompile(`\s+`)
	disallowed = regexp.MustCompile(`[^a-z _]`)
	boundaries = regexp.MustCompile(`[\n.;]+`)
)

// Clean lowercases a sentence, replaces connector punctuation with spaces,
// drops every character outside [a-z _] and collapses whitespace.
// The result never has leading, trailing or repeated spaces.
func Clean(sentence string) string {
	s := strings.ToLower(strings.TrimSpace(sentence))
	s = connectors.ReplaceAllString(s, " ")
	s = spaces.ReplaceAllString(s, " ")
	s = disallowed.ReplaceAllString(s, "")
	// Stripping can leave "a  b" behind when a symbol sat between spaces.
	s = spaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens splits a cleaned sentence into its raw tokens.
func Tokens(sentence string) []string {
	cleaned := Clean(sentence)
	if cleaned == "" {
		return nil
	}
	parts := strings.Split(cleaned, " ")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Sentences splits text on newlines, periods and semicolons. Consecutive
// delimiters form a single boundary and blank candidates are discarded.
func Sentences(text string) []string {
	candidates := boundaries.Split(text, -1)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}
