package ingest

import (
	"reflect"
	"testing"

	"github.com/cognicore/mindmap/pkg/mindmap/normalize"
	"github.com/cognicore/mindmap/pkg/mindmap/stem"
)

func runStripper() stem.Stemmer {
	return stem.Func(func(tok string) string {
		switch tok {
		case "running", "runner", "runs":
			return "run"
		}
		return tok
	})
}

func TestBuildCatScenario(t *testing.T) {
	res := Build("The cat sat. The cat ran.", Options{
		Stopwords: []string{"the"},
		MinCount:  1,
	})

	want := Corpus{{"cat", "sat"}, {"cat", "ran"}}
	if !reflect.DeepEqual(res.Corpus, want) {
		t.Fatalf("corpus = %v, want %v", res.Corpus, want)
	}
	if got := res.Vocabulary.Frequency("cat"); got != 2 {
		t.Errorf("frequency(cat) = %d, want 2", got)
	}
	forms, ok := res.Vocabulary.Original("cat")
	if !ok || !reflect.DeepEqual(forms, []string{"cat"}) {
		t.Errorf("original(cat) = %v, %v", forms, ok)
	}
	if !res.Stopwords.Contains("the") {
		t.Error("stopword set should contain 'the'")
	}
}

func TestBuildSinglePassThreshold(t *testing.T) {
	res := Build("Running runner runs.", Options{
		Stemmer:  runStripper(),
		MinCount: 3,
	})

	// Only the third occurrence reaches the threshold.
	want := Corpus{{"run"}}
	if !reflect.DeepEqual(res.Corpus, want) {
		t.Fatalf("single-pass corpus = %v, want %v", res.Corpus, want)
	}
	if got := res.Vocabulary.Frequency("run"); got != 3 {
		t.Errorf("frequency(run) = %d, want 3", got)
	}
	forms, _ := res.Vocabulary.Original("run")
	if !reflect.DeepEqual(forms, []string{"runner", "running", "runs"}) {
		t.Errorf("original(run) = %v", forms)
	}
}

func TestBuildTwoPassThreshold(t *testing.T) {
	res := Build("Running runner runs.", Options{
		Stemmer:  runStripper(),
		MinCount: 3,
		Mode:     TwoPass,
	})

	want := Corpus{{"run", "run", "run"}}
	if !reflect.DeepEqual(res.Corpus, want) {
		t.Fatalf("two-pass corpus = %v, want %v", res.Corpus, want)
	}
}

func TestBuildSinglePassAcrossSentences(t *testing.T) {
	text := "alpha beta. alpha gamma. alpha delta."
	single := Build(text, Options{MinCount: 2})
	want := Corpus{{"alpha"}, {"alpha"}}
	if !reflect.DeepEqual(single.Corpus, want) {
		t.Fatalf("single-pass corpus = %v, want %v", single.Corpus, want)
	}

	two := Build(text, Options{MinCount: 2, Mode: TwoPass})
	want = Corpus{{"alpha"}, {"alpha"}, {"alpha"}}
	if !reflect.DeepEqual(two.Corpus, want) {
		t.Fatalf("two-pass corpus = %v, want %v", two.Corpus, want)
	}
}

func TestBuildStemmedStopwords(t *testing.T) {
	res := Build("Running dogs runs fast", Options{
		Stemmer:   stem.Porter(),
		Stopwords: []string{"Running"},
		MinCount:  1,
	})

	want := Corpus{{"dog", "fast"}}
	if !reflect.DeepEqual(res.Corpus, want) {
		t.Fatalf("corpus = %v, want %v", res.Corpus, want)
	}
	if _, ok := res.Vocabulary.Original("run"); ok {
		t.Error("stemmed stopword must not be recorded")
	}
}

func TestBuildStopwordsNeverKept(t *testing.T) {
	text := "the the the the the the cat"
	res := Build(text, Options{Stopwords: []string{"the"}, MinCount: 0})
	want := Corpus{{"cat"}}
	if !reflect.DeepEqual(res.Corpus, want) {
		t.Fatalf("corpus = %v, want %v", res.Corpus, want)
	}
	if res.Vocabulary.Frequency("the") != 0 {
		t.Error("stopword should have zero frequency")
	}
}

func TestBuildRoundTrip(t *testing.T) {
	text := "The Quick brown fox; jumps over (the) lazy dog.\nAnd, then: sleeps"
	res := Build(text, Options{MinCount: 0})

	var want Corpus
	for _, s := range normalize.Sentences(text) {
		if toks := normalize.Tokens(s); len(toks) > 0 {
			want = append(want, toks)
		}
	}
	if !reflect.DeepEqual(res.Corpus, want) {
		t.Fatalf("corpus = %v, want %v", res.Corpus, want)
	}
}

func TestBuildDropsEmptySentences(t *testing.T) {
	res := Build("the. cat. the", Options{Stopwords: []string{"the"}, MinCount: 1})
	want := Corpus{{"cat"}}
	if !reflect.DeepEqual(res.Corpus, want) {
		t.Fatalf("corpus = %v, want %v", res.Corpus, want)
	}
}

func TestBuildMalformedInput(t *testing.T) {
	for _, in := range []string{"", "...;;\n\n", "123 456. !!!", "   "} {
		res := Build(in, Options{MinCount: 0})
		if len(res.Corpus) != 0 {
			t.Errorf("Build(%q) corpus = %v, want empty", in, res.Corpus)
		}
		if res.Vocabulary == nil || res.Stopwords == nil {
			t.Errorf("Build(%q) should still return vocabulary and stopwords", in)
		}
	}
}

func TestBuilderFreshVocabularyPerBuild(t *testing.T) {
	b := NewBuilder(Options{MinCount: 1})
	first := b.Build("cat cat")
	second := b.Build("cat")

	if first.Vocabulary == second.Vocabulary {
		t.Fatal("each build must own its vocabulary")
	}
	if second.Vocabulary.Frequency("cat") != 1 {
		t.Fatalf("second build leaked counts: %d", second.Vocabulary.Frequency("cat"))
	}
}

func TestFilterModeString(t *testing.T) {
	if SinglePass.String() != "single-pass" || TwoPass.String() != "two-pass" {
		t.Fatal("unexpected FilterMode names")
	}
}
