// Package mindmap chains phrase detection, corpus cleaning and embedding
// training into one pipeline run, and maps similarity results back to the
// surface forms found in the source text.
package mindmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
	"github.com/cognicore/mindmap/pkg/mindmap/model"
	"github.com/cognicore/mindmap/pkg/mindmap/normalize"
	"github.com/cognicore/mindmap/pkg/mindmap/stage"
)

// Phraser annotates raw text with detected phrases.
type Phraser interface {
	Phrases(ctx context.Context, in stage.Input, p stage.PhraseParams) (string, error)
}

// Trainer trains an embedding model on a corpus.
type Trainer interface {
	Train(ctx context.Context, in stage.Input, p stage.TrainParams) (*stage.Trained, error)
}

// DictionaryPhraser detects phrases from a curated dictionary instead of
// running word2phrase.
type DictionaryPhraser struct {
	Joiner *ingest.PhraseJoiner
}

// Phrases implements Phraser.
func (d DictionaryPhraser) Phrases(_ context.Context, in stage.Input, _ stage.PhraseParams) (string, error) {
	if d.Joiner == nil {
		return in.Text(), nil
	}
	return d.Joiner.Join(in.Text()), nil
}

// Options configures a Pipeline
type Options struct {
	Phraser Phraser // nil skips phrase detection
	Trainer Trainer
	Clean   ingest.Options
	Phrase  stage.PhraseParams
	Train   stage.TrainParams
	Logger  *logrus.Entry
}

// Pipeline runs word2phrase, cleaning and word2vec in sequence
type Pipeline struct {
	opts    Options
	builder *ingest.Builder
	logger  *logrus.Entry
}

// New creates a pipeline with the given dependencies
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.WithField("component", "pipeline")
	}
	return &Pipeline{
		opts:    opts,
		builder: ingest.NewBuilder(opts.Clean),
		logger:  logger,
	}
}

// Result is everything one pipeline run produced
type Result struct {
	ingest.Result
	Model     *model.Model
	ModelPath string
	MinCount  int
}

// Clean runs only the corpus builder.
func (p *Pipeline) Clean(raw string) ingest.Result {
	return p.builder.Build(raw)
}

// Run executes the full chain. The first failing stage aborts the run and
// no partial result is returned.
func (p *Pipeline) Run(ctx context.Context, raw string) (*Result, error) {
	if p.opts.Trainer == nil {
		return nil, fmt.Errorf("%w: pipeline has no trainer", internalerr.ErrInvalidConfig)
	}

	text := raw
	if p.opts.Phraser != nil {
		start := time.Now()
		annotated, err := p.opts.Phraser.Phrases(ctx, stage.FromText(raw), p.opts.Phrase)
		if err != nil {
			return nil, fmt.Errorf("phrase detection: %w", err)
		}
		text = annotated
		p.logger.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("phrases detected")
	}

	built := p.builder.Build(text)
	p.logger.WithFields(logrus.Fields{
		"sentences": built.Corpus.Len(),
		"tokens":    built.Corpus.Tokens(),
		"stems":     built.Vocabulary.Len(),
		"stopwords": built.Stopwords.Len(),
		"mode":      p.opts.Clean.Mode.String(),
	}).Info("corpus built")

	trained, err := p.opts.Trainer.Train(ctx, stage.FromCorpus(built.Corpus), p.opts.Train)
	if err != nil {
		return nil, fmt.Errorf("training: %w", err)
	}

	return &Result{
		Result:    built,
		Model:     trained.Model,
		ModelPath: trained.ModelPath,
		MinCount:  p.opts.Clean.MinCount,
	}, nil
}

// Related is a neighbor of a query term, with its surface forms.
type Related struct {
	Stem    string
	Display string
	Forms   []string // nil when the model knows a term the build never recorded
	Score   float64
}

// Neighborhood groups a vocabulary stem with its nearest neighbors.
type Neighborhood struct {
	Stem    string
	Forms   []string
	Related []Related
}

// Related returns the n nearest neighbors of term. The term may be a stem
// or a surface form; surface forms are cleaned and stemmed first.
func (r *Result) Related(term string, n int) ([]Related, error) {
	key := r.lookupKey(term)
	sims, err := r.Model.MostSimilar(key, n)
	if err != nil {
		return nil, err
	}
	out := make([]Related, 0, len(sims))
	for _, s := range sims {
		forms, _ := r.Vocabulary.Original(s.Term)
		out = append(out, Related{
			Stem:    s.Term,
			Display: r.Vocabulary.Display(s.Term),
			Forms:   forms,
			Score:   s.Score,
		})
	}
	return out, nil
}

// Neighborhoods walks the vocabulary in first-seen order and returns up to
// limit stems that passed the frequency floor and are known to the model,
// each with its k nearest neighbors.
func (r *Result) Neighborhoods(limit, k int) []Neighborhood {
	var out []Neighborhood
	for _, s := range r.Vocabulary.Stems() {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !r.Vocabulary.Keep(s, r.MinCount) || !r.Model.Contains(s) {
			continue
		}
		related, err := r.Related(s, k)
		if err != nil || len(related) == 0 {
			continue
		}
		forms, _ := r.Vocabulary.Original(s)
		out = append(out, Neighborhood{Stem: s, Forms: forms, Related: related})
	}
	return out
}

func (r *Result) lookupKey(term string) string {
	if r.Model.Contains(term) {
		return term
	}
	cleaned := strings.ReplaceAll(normalize.Clean(term), " ", "_")
	if r.Model.Contains(cleaned) {
		return cleaned
	}
	return r.Vocabulary.Stem(cleaned)
}
