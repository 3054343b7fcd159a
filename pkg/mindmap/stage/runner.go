package stage

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
	"github.com/cognicore/mindmap/pkg/mindmap/model"
)

// Input is the payload written to a stage's transport file.
type Input struct {
	text string
}

// FromText passes raw text to a stage verbatim.
func FromText(text string) Input { return Input{text: text} }

// FromCorpus serializes a corpus in the transport format.
func FromCorpus(c ingest.Corpus) Input { return Input{text: c.Text()} }

// Text returns the transport payload.
func (in Input) Text() string { return in.text }

// Trained is the outcome of a successful word2vec run.
type Trained struct {
	Model     *model.Model
	ModelPath string
}

// Option configures the Runner.
type Option func(*Runner)

// WithWord2VecBinary overrides the word2vec executable.
func WithWord2VecBinary(binary string) Option {
	return func(r *Runner) {
		if strings.TrimSpace(binary) != "" {
			r.word2vec = binary
		}
	}
}

// WithWord2PhraseBinary overrides the word2phrase executable.
func WithWord2PhraseBinary(binary string) Option {
	return func(r *Runner) {
		if strings.TrimSpace(binary) != "" {
			r.word2phrase = binary
		}
	}
}

// WithWorkDir sets the directory for transport and model files.
func WithWorkDir(dir string) Option {
	return func(r *Runner) {
		if strings.TrimSpace(dir) != "" {
			r.workDir = dir
		}
	}
}

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(r *Runner) {
		if exec != nil {
			r.exec = exec
		}
	}
}

// WithLogger sets the log entry used for stage output and cleanup.
func WithLogger(logger *logrus.Entry) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner invokes external stages. It is safe for concurrent use.
type Runner struct {
	word2vec    string
	word2phrase string
	workDir     string
	exec        Executor
	logger      *logrus.Entry

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New constructs a Runner. Defaults: binaries "word2vec" and
// "word2phrase" from PATH, files in the current directory.
func New(opts ...Option) *Runner {
	r := &Runner{
		word2vec:    Word2Vec,
		word2phrase: Word2Phrase,
		workDir:     ".",
		exec:        commandExecutor{},
		logger:      logrus.WithField("component", "stage"),
		entropy:     ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Phrases runs word2phrase and returns the phrase-annotated text.
func (r *Runner) Phrases(ctx context.Context, in Input, p PhraseParams) (string, error) {
	id := r.nextID()
	log := r.logger.WithFields(logrus.Fields{"stage": Word2Phrase, "run_id": id})

	inPath, err := r.writeInput(id, in)
	if err != nil {
		return "", err
	}
	defer r.remove(log, inPath)

	outPath := r.path(id, "phrases")
	defer r.remove(log, outPath)

	if err := r.run(ctx, log, Word2Phrase, r.word2phrase, p.args(inPath, outPath)); err != nil {
		return "", err
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return "", fmt.Errorf("read %s output: %w", Word2Phrase, err)
	}
	return string(data), nil
}

// Train runs word2vec and loads the resulting model. The model file is
// kept and its path returned.
func (r *Runner) Train(ctx context.Context, in Input, p TrainParams) (*Trained, error) {
	id := r.nextID()
	log := r.logger.WithFields(logrus.Fields{"stage": Word2Vec, "run_id": id})

	inPath, err := r.writeInput(id, in)
	if err != nil {
		return nil, err
	}
	defer r.remove(log, inPath)

	modelPath := r.path(id, "model")
	if err := r.run(ctx, log, Word2Vec, r.word2vec, p.args(inPath, modelPath)); err != nil {
		return nil, err
	}

	m, err := model.Load(modelPath)
	if err != nil {
		r.remove(log, modelPath)
		return nil, fmt.Errorf("load %s model: %w", Word2Vec, err)
	}
	log.WithFields(logrus.Fields{"terms": m.Len(), "dim": m.Dim(), "path": modelPath}).Info("model loaded")
	return &Trained{Model: m, ModelPath: modelPath}, nil
}

func (r *Runner) run(ctx context.Context, log *logrus.Entry, stage, binary string, args []string) error {
	log.WithField("args", strings.Join(args, " ")).Info("stage started")

	err := r.exec.Run(ctx, binary, args, func(line string) {
		log.Debug(line)
	})
	if err == nil {
		log.WithField("exit_code", 0).Info("stage finished")
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", stage, ctxErr)
	}

	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		code := coder.ExitCode()
		log.WithField("exit_code", code).Error("stage failed")
		return &ExitError{Stage: stage, Code: code, Err: err}
	}
	return fmt.Errorf("%s: %w", stage, err)
}

func (r *Runner) nextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.ToLower(ulid.MustNew(ulid.Now(), r.entropy).String())
}

func (r *Runner) path(id, kind string) string {
	return filepath.Join(r.workDir, id+"-"+kind+".txt")
}

func (r *Runner) writeInput(id string, in Input) (string, error) {
	path := r.path(id, "corpus")
	if err := os.WriteFile(path, []byte(in.text), 0o644); err != nil {
		return "", fmt.Errorf("write transport file: %w", err)
	}
	return path, nil
}

func (r *Runner) remove(log *logrus.Entry, path string) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		log.WithError(err).WithField("path", path).Warn("tmp file not deleted")
		return
	}
	log.WithField("path", path).Debug("tmp file deleted")
}
