package ingest

import (
	"strings"

	"github.com/cognicore/mindmap/pkg/mindmap/normalize"
)

// PhraseJoiner rewrites known multi-word phrases into single underscore
// joined tokens ("machine learning" → "machine_learning"), the same
// convention word2phrase uses for the phrases it detects.
type PhraseJoiner struct {
	dict   map[string]string // cleaned phrase → joined canonical
	maxLen int
}

// DictEntry represents a dictionary entry for a multi-token phrase
type DictEntry struct {
	Canonical string
	Category  string
	Variants  []string
}

// NewPhraseJoiner creates a joiner over the given dictionary
func NewPhraseJoiner(entries []DictEntry) *PhraseJoiner {
	dict := make(map[string]string)
	maxLen := 1
	add := func(phrase, canonical string) {
		key := normalize.Clean(phrase)
		if key == "" {
			return
		}
		dict[key] = canonical
		if l := phraseLen(key); l > maxLen {
			maxLen = l
		}
	}
	for _, e := range entries {
		canonical := strings.ReplaceAll(normalize.Clean(e.Canonical), " ", "_")
		if canonical == "" {
			continue
		}
		add(e.Canonical, canonical)
		for _, v := range e.Variants {
			add(v, canonical)
		}
	}
	return &PhraseJoiner{dict: dict, maxLen: maxLen}
}

// Len returns the number of phrases and variants known to the joiner.
func (p *PhraseJoiner) Len() int { return len(p.dict) }

// Parse applies greedy longest-match to a token sequence
func (p *PhraseJoiner) Parse(tokens []string) []string {
	var result []string
	i := 0

	for i < len(tokens) {
		matched := ""
		matchLen := 1

		// Try matching from longest phrase to shortest (bigram)
		maxPhrase := p.maxLen
		if remaining := len(tokens) - i; maxPhrase > remaining {
			maxPhrase = remaining
		}
		for n := maxPhrase; n >= 2; n-- {
			if canonical, ok := p.dict[strings.Join(tokens[i:i+n], " ")]; ok {
				matched = canonical
				matchLen = n
				break
			}
		}

		if matched != "" {
			result = append(result, matched)
			i += matchLen
			continue
		}
		// Single-token variants map to their canonical form
		if canonical, ok := p.dict[tokens[i]]; ok {
			result = append(result, canonical)
		} else {
			result = append(result, tokens[i])
		}
		i++
	}

	return result
}

// Join rewrites raw text sentence by sentence, one output line per
// non-empty sentence.
func (p *PhraseJoiner) Join(text string) string {
	var lines []string
	for _, sentence := range normalize.Sentences(text) {
		toks := normalize.Tokens(sentence)
		if len(toks) == 0 {
			continue
		}
		lines = append(lines, strings.Join(p.Parse(toks), " "))
	}
	return strings.Join(lines, "\n")
}

func phraseLen(phrase string) int {
	if phrase == "" {
		return 1
	}
	return len(strings.Fields(phrase))
}
