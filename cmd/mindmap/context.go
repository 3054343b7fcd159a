package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/mindmap/internal/logging"
	"github.com/cognicore/mindmap/internal/source"
	"github.com/cognicore/mindmap/pkg/mindmap"
	"github.com/cognicore/mindmap/pkg/mindmap/config"
	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
	"github.com/cognicore/mindmap/pkg/mindmap/stage"
)

// commandContext carries flag values and lazily loaded components shared
// by every subcommand.
type commandContext struct {
	configPath   string
	stoplistPath string
	dictPath     string
	workDir      string
	logLevel     string
	logFormat    string
	minCount     int
	twoPass      bool

	stderr   io.Writer
	executor stage.Executor // nil uses the real processes

	comp   *config.Components
	logger *logrus.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{minCount: -1, stderr: os.Stderr}
}

func (c *commandContext) components() (*config.Components, error) {
	if c.comp != nil {
		return c.comp, nil
	}
	loader := config.Loader{
		ConfigPath:   c.configPath,
		StoplistPath: c.stoplistPath,
		DictPath:     c.dictPath,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if c.workDir != "" {
		comp.Config.Stages.WorkDir = c.workDir
	}
	if c.logLevel != "" {
		comp.Config.Log.Level = c.logLevel
	}
	if c.logFormat != "" {
		comp.Config.Log.Format = c.logFormat
	}
	if c.minCount >= 0 {
		comp.Config.Clean.MinCount = c.minCount
	}
	if c.twoPass {
		comp.Config.Clean.Mode = ingest.TwoPass.String()
	}
	if err := comp.Config.Validate(); err != nil {
		return nil, err
	}
	c.comp = comp
	return comp, nil
}

func (c *commandContext) log(component string) (*logrus.Entry, error) {
	if c.logger == nil {
		comp, err := c.components()
		if err != nil {
			return nil, err
		}
		logger, err := logging.New(comp.Config.Log.Level, comp.Config.Log.Format, c.stderr)
		if err != nil {
			return nil, err
		}
		c.logger = logger
	}
	return logging.Component(c.logger, component), nil
}

func (c *commandContext) runner() (*stage.Runner, error) {
	comp, err := c.components()
	if err != nil {
		return nil, err
	}
	log, err := c.log("stage")
	if err != nil {
		return nil, err
	}
	opts := append(comp.Config.Stages.RunnerOptions(), stage.WithLogger(log), stage.WithExecutor(c.executor))
	return stage.New(opts...), nil
}

func (c *commandContext) builderOptions() (ingest.Options, error) {
	comp, err := c.components()
	if err != nil {
		return ingest.Options{}, err
	}
	return comp.Config.Clean.BuilderOptions(comp.Stopwords)
}

// phraser picks the dictionary joiner when a dictionary is configured,
// the external word2phrase stage when enabled, or nothing.
func (c *commandContext) phraser() (mindmap.Phraser, error) {
	comp, err := c.components()
	if err != nil {
		return nil, err
	}
	if comp.Joiner != nil {
		return mindmap.DictionaryPhraser{Joiner: comp.Joiner}, nil
	}
	if !comp.Config.Phrases.Enabled {
		return nil, nil
	}
	runner, err := c.runner()
	if err != nil {
		return nil, err
	}
	return runner, nil
}

func (c *commandContext) readInput(path string) (string, error) {
	log, err := c.log("source")
	if err != nil {
		return "", err
	}
	text, err := source.Load(path, log)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		log.WithField("path", path).Warn("input is empty")
	}
	return text, nil
}

func writeOutput(path string, stdout io.Writer, text string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text+"\n"), 0o644)
}
