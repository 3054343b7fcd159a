package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
	"github.com/cognicore/mindmap/pkg/mindmap/stem"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Clean.MinCount != 5 {
		t.Errorf("clean min count = %d, want 5", cfg.Clean.MinCount)
	}
	if cfg.Phrases.MinCount != 3 || cfg.Phrases.Threshold != 100 || !cfg.Phrases.Enabled {
		t.Errorf("unexpected phrase defaults: %+v", cfg.Phrases)
	}
	if cfg.Train.Size != 100 || cfg.Train.Window != 5 || cfg.Train.MinCount != 3 {
		t.Errorf("unexpected train defaults: %+v", cfg.Train)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "mindmap.yaml", `
clean:
  stemmer: none
  min_count: 2
  mode: two-pass
  stopwords: ["the", "a"]
train:
  size: 50
  extra:
    iter: "10"
stages:
  word2vec: /usr/local/bin/word2vec
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Clean.MinCount != 2 || cfg.Clean.Mode != "two-pass" {
		t.Errorf("clean not applied: %+v", cfg.Clean)
	}
	if cfg.Train.Size != 50 || cfg.Train.Window != 5 {
		t.Errorf("train should keep default window: %+v", cfg.Train)
	}
	if cfg.Train.Extra["iter"] != "10" {
		t.Errorf("extra not applied: %v", cfg.Train.Extra)
	}
	if cfg.Stages.Word2Vec != "/usr/local/bin/word2vec" || cfg.Stages.Word2Phrase != "word2phrase" {
		t.Errorf("stages not applied: %+v", cfg.Stages)
	}

	opts, err := cfg.Clean.BuilderOptions([]string{"of"})
	if err != nil {
		t.Fatalf("BuilderOptions: %v", err)
	}
	if !stem.IsIdentity(opts.Stemmer) || opts.Mode != ingest.TwoPass || opts.MinCount != 2 {
		t.Errorf("unexpected builder options: %+v", opts)
	}
	if !reflect.DeepEqual(opts.Stopwords, []string{"the", "a", "of"}) {
		t.Errorf("stopwords = %v", opts.Stopwords)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "mindmap.toml", `
[clean]
min_count = 1

[phrases]
enabled = false
threshold = 50.0

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Clean.MinCount != 1 || cfg.Clean.Stemmer != "porter" {
		t.Errorf("clean = %+v", cfg.Clean)
	}
	if cfg.Phrases.Enabled || cfg.Phrases.Threshold != 50 || cfg.Phrases.MinCount != 3 {
		t.Errorf("phrases = %+v", cfg.Phrases)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log = %+v", cfg.Log)
	}

	p := cfg.Phrases.Params()
	if p.Threshold != 50 || p.MinCount != 3 {
		t.Errorf("phrase params = %+v", p)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"negative.yaml": "clean:\n  min_count: -1\n",
		"mode.yaml":     "clean:\n  mode: sideways\n",
		"stemmer.yaml":  "clean:\n  stemmer: lancaster\n",
		"train.yaml":    "train:\n  window: -2\n",
		"syntax.yaml":   "clean: [unterminated\n",
		"syntax.toml":   "[clean\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, name, body))
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/mindmap.yaml"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestTrainParams(t *testing.T) {
	tr := Train{Size: 10, Window: 2, MinCount: 1, Binary: true, Extra: map[string]string{"cbow": "0"}}
	p := tr.Params()
	if p.Size != 10 || p.Window != 2 || p.MinCount != 1 || !p.Binary || p.Extra["cbow"] != "0" {
		t.Errorf("params = %+v", p)
	}
}

func TestRunnerOptions(t *testing.T) {
	opts := Default().Stages.RunnerOptions()
	if len(opts) != 3 {
		t.Fatalf("expected 3 runner options, got %d", len(opts))
	}
}
