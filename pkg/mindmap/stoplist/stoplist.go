// Package stoplist builds the stopword set used by one corpus build and
// suggests new stopwords from corpus statistics.
package stoplist

import (
	"sort"

	"github.com/cognicore/mindmap/pkg/mindmap/normalize"
	"github.com/cognicore/mindmap/pkg/mindmap/stem"
)

// Set is the cleaned (and optionally stemmed) stopword set for one build.
type Set struct {
	stops map[string]struct{}
}

// NewSet cleans every entry as a whole phrase and, when s is non-nil,
// stems the cleaned entry. Entries that clean to nothing are ignored.
func NewSet(entries []string, s stem.Stemmer) *Set {
	stops := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		cleaned := normalize.Clean(e)
		if cleaned == "" {
			continue
		}
		if s != nil {
			cleaned = s.Stem(cleaned)
		}
		stops[cleaned] = struct{}{}
	}
	return &Set{stops: stops}
}

// Contains reports whether a stem (or cleaned word) is a stopword.
// A nil Set contains nothing.
func (s *Set) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s.stops[term]
	return ok
}

// Len returns the number of stopwords.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.stops)
}

// All returns all stopwords, sorted
func (s *Set) All() []string {
	if s == nil {
		return nil
	}
	result := make([]string, 0, len(s.stops))
	for w := range s.stops {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// Reason explains why a term is suggested as a stopword
type Reason struct {
	HighDF   bool    // appears in a large share of sentences
	HighFreq bool    // takes a large share of all token occurrences
	DF       float64 // sentence frequency, percent
	Freq     float64 // occurrence share, percent
}

// Stats holds corpus statistics for one term
type Stats struct {
	Term        string
	Count       int64
	Sentences   int64
	DFPercent   float64
	FreqPercent float64
}

// Candidate represents a candidate stopword
type Candidate struct {
	Term   string
	Reason Reason
	Score  float64 // confidence score
}

// Thresholds defines criteria for stopword identification
type Thresholds struct {
	DFPercent   float64 // e.g., 50% - appears in half of all sentences
	FreqPercent float64 // e.g., 3% - three of every hundred tokens
	MinCount    int64   // ignore terms rarer than this
}

// DefaultThresholds returns sensible default thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DFPercent:   50.0,
		FreqPercent: 3.0,
		MinCount:    3,
	}
}

// StatsFromCorpus computes per-term occurrence and sentence frequencies.
// The result is sorted by descending count, then term.
func StatsFromCorpus(corpus [][]string) []Stats {
	counts := make(map[string]int64)
	sentences := make(map[string]int64)
	var total int64
	for _, sentence := range corpus {
		seen := make(map[string]struct{}, len(sentence))
		for _, tok := range sentence {
			counts[tok]++
			total++
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			sentences[tok]++
		}
	}

	stats := make([]Stats, 0, len(counts))
	n := float64(len(corpus))
	for term, c := range counts {
		stats = append(stats, Stats{
			Term:        term,
			Count:       c,
			Sentences:   sentences[term],
			DFPercent:   100 * float64(sentences[term]) / n,
			FreqPercent: 100 * float64(c) / float64(total),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Term < stats[j].Term
	})
	return stats
}

// SuggestCandidates suggests terms that should be stopwords. Terms already
// in the set are skipped. Candidates are ordered by descending score.
func (s *Set) SuggestCandidates(stats []Stats, thresholds Thresholds) []Candidate {
	var candidates []Candidate

	for _, st := range stats {
		if s.Contains(st.Term) {
			continue // already a stopword
		}
		if st.Count < thresholds.MinCount {
			continue
		}

		reason := Reason{
			HighDF:   st.DFPercent > thresholds.DFPercent,
			HighFreq: st.FreqPercent > thresholds.FreqPercent,
			DF:       st.DFPercent,
			Freq:     st.FreqPercent,
		}
		if !reason.HighDF && !reason.HighFreq {
			continue
		}

		score := st.DFPercent / 100.0
		if reason.HighDF && reason.HighFreq {
			score = (score + 1.0) / 2.0
		}
		candidates = append(candidates, Candidate{
			Term:   st.Term,
			Reason: reason,
			Score:  score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
