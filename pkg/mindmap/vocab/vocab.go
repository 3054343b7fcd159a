// Package vocab tracks, for one corpus build, how often each stem occurs and
// which surface forms produced it.
//
// A Vocabulary is created fresh for every build and is not safe for
// concurrent mutation. After the build it is only read.
package vocab

import (
	"sort"
	"strings"

	"github.com/cognicore/mindmap/pkg/mindmap/stem"
	"github.com/cognicore/mindmap/pkg/mindmap/stoplist"
)

// Vocabulary maps stems to their surface forms and occurrence counts.
type Vocabulary struct {
	stemmer stem.Stemmer
	stops   *stoplist.Set

	forms map[string]map[string]int // stem → surface form → count
	freq  map[string]int
	order []string // stems in first-seen order
	first map[string]string
}

// Form is one surface form of a stem and how often it was seen.
type Form struct {
	Token string
	Count int
}

// Entry is a read-only view of one stem.
type Entry struct {
	Stem  string
	Count int
	Forms []Form // sorted by descending count, then token
}

// New creates an empty vocabulary. A nil stemmer disables stemming and a
// nil stopword set excludes nothing.
func New(s stem.Stemmer, stops *stoplist.Set) *Vocabulary {
	if s == nil {
		s = stem.Identity()
	}
	return &Vocabulary{
		stemmer: s,
		stops:   stops,
		forms:   make(map[string]map[string]int),
		freq:    make(map[string]int),
		first:   make(map[string]string),
	}
}

// Record stems a token and, unless the stem is a stopword, counts it and
// remembers the token as one of the stem's surface forms. The stem is
// returned either way so callers can filter on it.
func (v *Vocabulary) Record(token string) string {
	token = strings.TrimSpace(token)
	s := v.stemmer.Stem(token)
	if v.stops.Contains(s) {
		return s
	}

	forms, ok := v.forms[s]
	if !ok {
		forms = make(map[string]int)
		v.forms[s] = forms
		v.order = append(v.order, s)
		v.first[s] = token
	}
	forms[token]++
	v.freq[s]++
	return s
}

// Stem returns the stem of a token without recording it.
func (v *Vocabulary) Stem(token string) string {
	return v.stemmer.Stem(strings.TrimSpace(token))
}

// IsStop reports whether a stem is in the build's stopword set.
func (v *Vocabulary) IsStop(s string) bool {
	return v.stops.Contains(s)
}

// Keep reports whether a stem has been seen at least minCount times.
// Stems never recorded count as zero.
func (v *Vocabulary) Keep(s string, minCount int) bool {
	return v.freq[s] >= minCount
}

// Frequency returns how many times a stem was recorded.
func (v *Vocabulary) Frequency(s string) int {
	return v.freq[s]
}

// Original returns the surface forms recorded for a stem, sorted.
// The boolean is false when the stem was never recorded.
func (v *Vocabulary) Original(s string) ([]string, bool) {
	forms, ok := v.forms[s]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(forms))
	for tok := range forms {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out, true
}

// Display returns the first surface form seen for a stem, or the stem
// itself when it was never recorded.
func (v *Vocabulary) Display(s string) string {
	if tok, ok := v.first[s]; ok {
		return tok
	}
	return s
}

// Stems returns every recorded stem in first-seen order.
func (v *Vocabulary) Stems() []string {
	return append([]string(nil), v.order...)
}

// Len returns the number of distinct stems.
func (v *Vocabulary) Len() int {
	return len(v.order)
}

// Stopwords returns the build's stopword set.
func (v *Vocabulary) Stopwords() *stoplist.Set {
	return v.stops
}

// Entries returns every stem with its count and forms, in first-seen order.
func (v *Vocabulary) Entries() []Entry {
	entries := make([]Entry, 0, len(v.order))
	for _, s := range v.order {
		forms := make([]Form, 0, len(v.forms[s]))
		for tok, c := range v.forms[s] {
			forms = append(forms, Form{Token: tok, Count: c})
		}
		sort.Slice(forms, func(i, j int) bool {
			if forms[i].Count != forms[j].Count {
				return forms[i].Count > forms[j].Count
			}
			return forms[i].Token < forms[j].Token
		})
		entries = append(entries, Entry{Stem: s, Count: v.freq[s], Forms: forms})
	}
	return entries
}
