package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
	"github.com/cognicore/mindmap/pkg/mindmap/stage"
	"github.com/cognicore/mindmap/pkg/mindmap/stem"
)

// Config is the full pipeline configuration
type Config struct {
	Clean   Clean   `yaml:"clean" toml:"clean"`
	Phrases Phrases `yaml:"phrases" toml:"phrases"`
	Train   Train   `yaml:"train" toml:"train"`
	Stages  Stages  `yaml:"stages" toml:"stages"`
	Log     Log     `yaml:"log" toml:"log"`
}

// Clean configures the corpus builder
type Clean struct {
	Stemmer      string   `yaml:"stemmer" toml:"stemmer"`
	MinCount     int      `yaml:"min_count" toml:"min_count"`
	Mode         string   `yaml:"mode" toml:"mode"`
	StoplistPath string   `yaml:"stoplist" toml:"stoplist"`
	Stopwords    []string `yaml:"stopwords" toml:"stopwords"`
}

// Phrases configures phrase detection
type Phrases struct {
	Enabled   bool              `yaml:"enabled" toml:"enabled"`
	MinCount  int               `yaml:"min_count" toml:"min_count"`
	Threshold float64           `yaml:"threshold" toml:"threshold"`
	DictPath  string            `yaml:"dict" toml:"dict"`
	Extra     map[string]string `yaml:"extra" toml:"extra"`
}

// Train configures embedding training
type Train struct {
	Size     int               `yaml:"size" toml:"size"`
	Window   int               `yaml:"window" toml:"window"`
	MinCount int               `yaml:"min_count" toml:"min_count"`
	Binary   bool              `yaml:"binary" toml:"binary"`
	Extra    map[string]string `yaml:"extra" toml:"extra"`
}

// Stages locates the external tools
type Stages struct {
	Word2Vec    string `yaml:"word2vec" toml:"word2vec"`
	Word2Phrase string `yaml:"word2phrase" toml:"word2phrase"`
	WorkDir     string `yaml:"work_dir" toml:"work_dir"`
}

// Log configures logging output
type Log struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the configuration the original pipeline ran with.
func Default() Config {
	phrase := stage.DefaultPhraseParams()
	train := stage.DefaultTrainParams()
	return Config{
		Clean: Clean{
			Stemmer:  "porter",
			MinCount: ingest.DefaultMinCount,
			Mode:     ingest.SinglePass.String(),
		},
		Phrases: Phrases{
			Enabled:   true,
			MinCount:  phrase.MinCount,
			Threshold: phrase.Threshold,
		},
		Train: Train{
			Size:     train.Size,
			Window:   train.Window,
			MinCount: train.MinCount,
		},
		Stages: Stages{
			Word2Vec:    stage.Word2Vec,
			Word2Phrase: stage.Word2Phrase,
			WorkDir:     ".",
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads a YAML or TOML file over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects negative thresholds and unknown names.
func (c Config) Validate() error {
	var problems []string
	if c.Clean.MinCount < 0 {
		problems = append(problems, "clean.min_count must be >= 0")
	}
	if _, err := parseMode(c.Clean.Mode); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := stem.FromConfig(c.Clean.Stemmer); err != nil {
		problems = append(problems, fmt.Sprintf("clean.stemmer %q unknown", c.Clean.Stemmer))
	}
	if c.Phrases.MinCount < 0 {
		problems = append(problems, "phrases.min_count must be >= 0")
	}
	if c.Phrases.Threshold < 0 {
		problems = append(problems, "phrases.threshold must be >= 0")
	}
	if c.Train.Size < 0 || c.Train.Window < 0 || c.Train.MinCount < 0 {
		problems = append(problems, "train.size, train.window and train.min_count must be >= 0")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", internalerr.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// BuilderOptions converts the clean section into corpus builder options.
func (c Clean) BuilderOptions(stopwords []string) (ingest.Options, error) {
	stemmer, err := stem.FromConfig(c.Stemmer)
	if err != nil {
		return ingest.Options{}, err
	}
	mode, err := parseMode(c.Mode)
	if err != nil {
		return ingest.Options{}, err
	}
	all := append(append([]string(nil), c.Stopwords...), stopwords...)
	return ingest.Options{
		Stemmer:   stemmer,
		Stopwords: all,
		MinCount:  c.MinCount,
		Mode:      mode,
	}, nil
}

// Params converts the phrases section into word2phrase parameters.
func (p Phrases) Params() stage.PhraseParams {
	return stage.PhraseParams{MinCount: p.MinCount, Threshold: p.Threshold, Extra: p.Extra}
}

// Params converts the train section into word2vec parameters.
func (t Train) Params() stage.TrainParams {
	return stage.TrainParams{
		Size:     t.Size,
		Window:   t.Window,
		MinCount: t.MinCount,
		Binary:   t.Binary,
		Extra:    t.Extra,
	}
}

// RunnerOptions converts the stages section into runner options.
func (s Stages) RunnerOptions() []stage.Option {
	return []stage.Option{
		stage.WithWord2VecBinary(s.Word2Vec),
		stage.WithWord2PhraseBinary(s.Word2Phrase),
		stage.WithWorkDir(s.WorkDir),
	}
}

func parseMode(mode string) (ingest.FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "single-pass", "single":
		return ingest.SinglePass, nil
	case "two-pass", "two":
		return ingest.TwoPass, nil
	default:
		return ingest.SinglePass, fmt.Errorf("clean.mode %q unknown", mode)
	}
}
