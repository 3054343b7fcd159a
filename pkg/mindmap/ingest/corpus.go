package ingest

import "strings"

// Corpus is an ordered sequence of sentences, each an ordered sequence of
// kept stems.
type Corpus [][]string

// Text renders the corpus in the line-oriented transport format: one
// sentence per line, tokens joined by single spaces.
func (c Corpus) Text() string {
	lines := make([]string, len(c))
	for i, sentence := range c {
		lines[i] = strings.TrimSpace(strings.Join(sentence, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Len returns the number of sentences.
func (c Corpus) Len() int { return len(c) }

// Tokens returns the total number of tokens across all sentences.
func (c Corpus) Tokens() int {
	n := 0
	for _, s := range c {
		n += len(s)
	}
	return n
}
