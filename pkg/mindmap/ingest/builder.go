// Package ingest turns raw text into a frequency-filtered, stem-indexed
// token corpus.
package ingest

import (
	"github.com/cognicore/mindmap/pkg/mindmap/normalize"
	"github.com/cognicore/mindmap/pkg/mindmap/stem"
	"github.com/cognicore/mindmap/pkg/mindmap/stoplist"
	"github.com/cognicore/mindmap/pkg/mindmap/vocab"
)

// DefaultMinCount is the frequency floor applied when cleaning text.
const DefaultMinCount = 5

// FilterMode selects when the frequency threshold is evaluated.
type FilterMode int

const (
	// SinglePass checks the threshold while counting, token by token.
	// A term reaching the threshold on its k-th occurrence is kept from
	// that occurrence on; earlier occurrences stay dropped.
	SinglePass FilterMode = iota
	// TwoPass counts the whole text first and filters against the final
	// frequencies, so a term is either kept everywhere or nowhere.
	TwoPass
)

// String implements fmt.Stringer.
func (m FilterMode) String() string {
	switch m {
	case SinglePass:
		return "single-pass"
	case TwoPass:
		return "two-pass"
	default:
		return "unknown"
	}
}

// Options configures a corpus build.
type Options struct {
	Stemmer   stem.Stemmer // nil disables stemming
	Stopwords []string
	MinCount  int
	Mode      FilterMode
}

// Result bundles everything one build produces.
type Result struct {
	Corpus     Corpus
	Vocabulary *vocab.Vocabulary
	Stopwords  *stoplist.Set
}

// Builder runs corpus builds with fixed options. Every Build gets a fresh
// vocabulary.
type Builder struct {
	opts Options
}

// NewBuilder creates a builder with the given options
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Build is shorthand for NewBuilder(opts).Build(raw).
func Build(raw string, opts Options) Result {
	return NewBuilder(opts).Build(raw)
}

// Build normalizes, stems, counts and filters raw text. It never fails:
// empty or garbage input yields an empty corpus.
func (b *Builder) Build(raw string) Result {
	var stemmer stem.Stemmer
	if !stem.IsIdentity(b.opts.Stemmer) {
		stemmer = b.opts.Stemmer
	}
	stops := stoplist.NewSet(b.opts.Stopwords, stemmer)
	v := vocab.New(stemmer, stops)

	var corpus Corpus
	switch b.opts.Mode {
	case TwoPass:
		corpus = b.twoPass(raw, v)
	default:
		corpus = b.singlePass(raw, v)
	}

	return Result{Corpus: corpus, Vocabulary: v, Stopwords: stops}
}

func (b *Builder) singlePass(raw string, v *vocab.Vocabulary) Corpus {
	var corpus Corpus
	for _, sentence := range normalize.Sentences(raw) {
		var kept []string
		for _, tok := range normalize.Tokens(sentence) {
			s := v.Record(tok)
			if !v.IsStop(s) && v.Keep(s, b.opts.MinCount) {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			corpus = append(corpus, kept)
		}
	}
	return corpus
}

func (b *Builder) twoPass(raw string, v *vocab.Vocabulary) Corpus {
	var stemmed [][]string
	for _, sentence := range normalize.Sentences(raw) {
		toks := normalize.Tokens(sentence)
		stems := make([]string, 0, len(toks))
		for _, tok := range toks {
			stems = append(stems, v.Record(tok))
		}
		stemmed = append(stemmed, stems)
	}

	var corpus Corpus
	for _, stems := range stemmed {
		var kept []string
		for _, s := range stems {
			if !v.IsStop(s) && v.Keep(s, b.opts.MinCount) {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			corpus = append(corpus, kept)
		}
	}
	return corpus
}
