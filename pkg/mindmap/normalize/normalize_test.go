package normalize

import (
	"reflect"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"The Cat", "the cat"},
		{"  Hello, World!  ", "hello world"},
		{"a:b(c){d}[e]", "a b c d e"},
		{"one,,,:: two", "one two"},
		{"tabs\tand\n newlines", "tabs and newlines"},
		{"new_york city", "new_york city"},
		{"gpt-4 rocks", "gpt rocks"},
		{"a - b", "a b"},
		{"Café", "caf"},
		{"12345", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := Clean(tc.in); got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanCharacterClass(t *testing.T) {
	inputs := []string{
		"Mixed CASE with 123 numbers & symbols #!",
		"   (parenthetical)   [bracketed]  {braced}  ",
		"ünïcödé — dashes – and “quotes”",
	}
	for _, in := range inputs {
		out := Clean(in)
		for _, r := range out {
			if !(r >= 'a' && r <= 'z') && r != ' ' && r != '_' {
				t.Errorf("Clean(%q) produced disallowed rune %q", in, r)
			}
		}
		if strings.Contains(out, "  ") {
			t.Errorf("Clean(%q) = %q contains a double space", in, out)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{"The Quick, brown FOX!", "a  -  b", "x(y)z", "__init__ method"}
	for _, in := range inputs {
		once := Tokens(in)
		twice := Tokens(strings.Join(once, " "))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Tokens not idempotent for %q: %v vs %v", in, once, twice)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("The cat, sat (quietly) on the mat!")
	want := []string{"the", "cat", "sat", "quietly", "on", "the", "mat"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}

	if toks := Tokens("!!! ??? 42"); len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", toks)
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("The cat sat. The cat ran.\n\nAnd then;; it slept...")
	want := []string{"The cat sat", " The cat ran", "And then", " it slept"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sentences = %q, want %q", got, want)
	}
}

func TestSentencesBlank(t *testing.T) {
	for _, in := range []string{"", "....", "\n;\n.", "  .  ;  "} {
		if got := Sentences(in); len(got) != 0 {
			t.Errorf("Sentences(%q) = %q, want empty", in, got)
		}
	}
}
