package config

import (
	"fmt"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	ConfigPath   string
	StoplistPath string // overrides clean.stoplist
	DictPath     string // overrides phrases.dict
}

// Components holds all loaded configuration components
type Components struct {
	Config    Config
	Stopwords []string
	Joiner    *ingest.PhraseJoiner // nil when no dictionary is configured
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Config: Default()}

	if l.ConfigPath != "" {
		cfg, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		comp.Config = cfg
	}

	stoplistPath := comp.Config.Clean.StoplistPath
	if l.StoplistPath != "" {
		stoplistPath = l.StoplistPath
	}
	if stoplistPath != "" {
		stops, err := LoadStoplist(stoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stopwords = stops
	}

	dictPath := comp.Config.Phrases.DictPath
	if l.DictPath != "" {
		dictPath = l.DictPath
	}
	if dictPath != "" {
		entries, err := LoadDict(dictPath)
		if err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
		comp.Joiner = ingest.NewPhraseJoiner(entries)
	}

	return comp, nil
}
