package ingest

import (
	"reflect"
	"testing"
)

func TestPhraseJoinerParse(t *testing.T) {
	p := NewPhraseJoiner([]DictEntry{
		{Canonical: "machine learning", Variants: []string{"ml"}, Category: "ai"},
		{Canonical: "new york city", Variants: []string{"nyc", "new york"}, Category: "place"},
	})

	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"machine", "learning", "rocks"}, []string{"machine_learning", "rocks"}},
		{[]string{"i", "love", "ml"}, []string{"i", "love", "machine_learning"}},
		{[]string{"new", "york", "city", "lights"}, []string{"new_york_city", "lights"}},
		{[]string{"new", "york"}, []string{"new_york_city"}},
		{[]string{"new"}, []string{"new"}},
		{nil, nil},
	}
	for _, tc := range cases {
		if got := p.Parse(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Parse(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPhraseJoinerJoin(t *testing.T) {
	p := NewPhraseJoiner([]DictEntry{{Canonical: "Machine Learning"}})
	got := p.Join("Machine learning is fun. I like MACHINE LEARNING!\n\n...")
	want := "machine_learning is fun\ni like machine_learning"
	if got != want {
		t.Fatalf("Join = %q, want %q", got, want)
	}
}

func TestPhraseJoinerOutputSurvivesCleaning(t *testing.T) {
	p := NewPhraseJoiner([]DictEntry{{Canonical: "deep learning"}})
	res := Build(p.Join("Deep learning works. deep learning scales."), Options{MinCount: 1})
	want := Corpus{{"deep_learning", "works"}, {"deep_learning", "scales"}}
	if !reflect.DeepEqual(res.Corpus, want) {
		t.Fatalf("corpus = %v, want %v", res.Corpus, want)
	}
}

func TestPhraseJoinerSkipsEmptyCanonical(t *testing.T) {
	p := NewPhraseJoiner([]DictEntry{{Canonical: "!!!", Variants: []string{"bang"}}})
	if p.Len() != 0 {
		t.Fatalf("expected empty dictionary, got %d entries", p.Len())
	}
}
