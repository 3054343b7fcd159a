package stage

import (
	"sort"
	"strconv"
	"strings"
)

// PhraseParams configures word2phrase.
type PhraseParams struct {
	MinCount  int     // frequency floor applied by the tool
	Threshold float64 // phrase score cutoff; zero takes the default
	Extra     map[string]string
}

// DefaultPhraseParams returns the parameters the original pipeline used.
func DefaultPhraseParams() PhraseParams {
	return PhraseParams{MinCount: 3, Threshold: 100}
}

func (p PhraseParams) args(input, output string) []string {
	threshold := p.Threshold
	if threshold == 0 {
		threshold = DefaultPhraseParams().Threshold
	}
	args := []string{
		"-train", input,
		"-output", output,
		"-min-count", strconv.Itoa(p.MinCount),
		"-threshold", strconv.FormatFloat(threshold, 'g', -1, 64),
	}
	return append(args, extraArgs(p.Extra)...)
}

// TrainParams configures word2vec.
type TrainParams struct {
	Size     int // vector dimensionality; zero takes the default
	Window   int // context radius; zero takes the default
	MinCount int
	Binary   bool
	Extra    map[string]string // e.g. {"cbow": "0", "iter": "10"}
}

// DefaultTrainParams returns the parameters the original pipeline used.
func DefaultTrainParams() TrainParams {
	return TrainParams{Size: 100, Window: 5, MinCount: 3}
}

func (p TrainParams) args(input, output string) []string {
	def := DefaultTrainParams()
	if p.Size == 0 {
		p.Size = def.Size
	}
	if p.Window == 0 {
		p.Window = def.Window
	}
	binary := "0"
	if p.Binary {
		binary = "1"
	}
	args := []string{
		"-train", input,
		"-output", output,
		"-size", strconv.Itoa(p.Size),
		"-window", strconv.Itoa(p.Window),
		"-min-count", strconv.Itoa(p.MinCount),
		"-binary", binary,
	}
	return append(args, extraArgs(p.Extra)...)
}

// extraArgs renders extra options as "-key value" pairs sorted by key.
func extraArgs(extra map[string]string) []string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if strings.TrimSpace(strings.TrimLeft(k, "-")) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, "-"+strings.TrimLeft(strings.TrimSpace(k), "-"), extra[k])
	}
	return args
}
