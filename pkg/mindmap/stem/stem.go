// Package stem provides the pluggable token-to-stem capability used by the
// vocabulary. All downstream code is agnostic to which Stemmer is used.
package stem

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
)

// Stemmer reduces a token to its stem.
type Stemmer interface {
	Stem(token string) string
}

// Func adapts an ordinary function to the Stemmer interface.
type Func func(token string) string

// Stem implements Stemmer.
func (f Func) Stem(token string) string { return f(token) }

type porter struct{}

// Porter returns the default algorithmic stemmer (Snowball English).
// Stopwords are stemmed like any other word; filtering them is the
// caller's job.
func Porter() Stemmer { return porter{} }

func (porter) Stem(token string) string {
	if token == "" {
		return ""
	}
	return english.Stem(token, true)
}

type identity struct{}

// Identity returns a Stemmer that leaves tokens unchanged. It is used when
// stemming is disabled.
func Identity() Stemmer { return identity{} }

func (identity) Stem(token string) string { return token }

// FromConfig selects a built-in stemmer by name.
func FromConfig(name string) (Stemmer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "porter", "snowball", "english", "true":
		return Porter(), nil
	case "none", "identity", "false", "off":
		return Identity(), nil
	default:
		return nil, fmt.Errorf("%w: unknown stemmer %q", internalerr.ErrInvalidConfig, name)
	}
}

// IsIdentity reports whether s is the built-in identity stemmer (or nil).
func IsIdentity(s Stemmer) bool {
	if s == nil {
		return true
	}
	_, ok := s.(identity)
	return ok
}
