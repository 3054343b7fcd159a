// Package model loads word2vec model files and answers similarity queries.
//
// Both output formats of the word2vec tool are supported: text
// ("-binary 0") and binary ("-binary 1"). Vectors are L2-normalized at load
// time so cosine similarity is a plain dot product.
package model

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
)

// ErrUnknownTerm is returned for terms missing from the model.
var ErrUnknownTerm = fmt.Errorf("unknown term: %w", internalerr.ErrNotFound)

// Similarity is one neighbor of a query term.
type Similarity struct {
	Term  string
	Score float64
}

// Model holds unit-length word vectors.
type Model struct {
	dim   int
	terms []string
	index map[string]int
	vecs  [][]float32
}

// Load reads a model file, detecting the binary format from control bytes
// after the header.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	bin, err := sniffBinary(br)
	if err != nil {
		return nil, err
	}
	return read(br, bin)
}

// Read parses a model from r in the given format.
func Read(r io.Reader, bin bool) (*Model, error) {
	return read(bufio.NewReader(r), bin)
}

func sniffBinary(br *bufio.Reader) (bool, error) {
	peek, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return false, fmt.Errorf("read model: %w", err)
	}
	nl := strings.IndexByte(string(peek), '\n')
	if nl < 0 {
		return false, nil
	}
	// Text rows are printable apart from whitespace; raw float32 data is not.
	for _, b := range peek[nl+1:] {
		if b < 0x20 && b != '\n' && b != '\r' && b != '\t' {
			return true, nil
		}
	}
	return false, nil
}

func read(br *bufio.Reader, bin bool) (*Model, error) {
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var count, dim int
	if _, err := fmt.Sscanf(strings.TrimSpace(header), "%d %d", &count, &dim); err != nil {
		return nil, fmt.Errorf("%w: bad header %q", internalerr.ErrModelFormat, strings.TrimSpace(header))
	}
	if count < 0 || dim <= 0 {
		return nil, fmt.Errorf("%w: bad dimensions %d x %d", internalerr.ErrModelFormat, count, dim)
	}

	m := &Model{
		dim:   dim,
		terms: make([]string, 0, count),
		index: make(map[string]int, count),
		vecs:  make([][]float32, 0, count),
	}
	for i := 0; i < count; i++ {
		var (
			term string
			vec  []float32
		)
		if bin {
			term, vec, err = readBinaryRow(br, dim)
		} else {
			term, vec, err = readTextRow(br, dim)
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		m.add(term, vec)
	}
	return m, nil
}

func readTextRow(br *bufio.Reader, dim int) (string, []float32, error) {
	for {
		line, err := br.ReadString('\n')
		fields := strings.Fields(line)
		if len(fields) == 0 {
			if err != nil {
				return "", nil, fmt.Errorf("%w: unexpected end of file", internalerr.ErrModelFormat)
			}
			continue
		}
		if len(fields) != dim+1 {
			return "", nil, fmt.Errorf("%w: expected %d values for %q, got %d",
				internalerr.ErrModelFormat, dim, fields[0], len(fields)-1)
		}
		vec := make([]float32, dim)
		for j, raw := range fields[1:] {
			f, perr := strconv.ParseFloat(raw, 32)
			if perr != nil {
				return "", nil, fmt.Errorf("%w: value %q: %v", internalerr.ErrModelFormat, raw, perr)
			}
			vec[j] = float32(f)
		}
		return fields[0], vec, nil
	}
}

func readBinaryRow(br *bufio.Reader, dim int) (string, []float32, error) {
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", nil, fmt.Errorf("%w: unexpected end of file", internalerr.ErrModelFormat)
		}
		if b == ' ' {
			break
		}
		if b == '\n' && sb.Len() == 0 {
			continue
		}
		sb.WriteByte(b)
	}
	vec := make([]float32, dim)
	if err := binary.Read(br, binary.LittleEndian, vec); err != nil {
		return "", nil, fmt.Errorf("%w: vector for %q: %v", internalerr.ErrModelFormat, sb.String(), err)
	}
	return sb.String(), vec, nil
}

func (m *Model) add(term string, vec []float32) {
	var norm float64
	for _, x := range vec {
		norm += float64(x) * float64(x)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	if i, ok := m.index[term]; ok {
		m.vecs[i] = vec
		return
	}
	m.index[term] = len(m.terms)
	m.terms = append(m.terms, term)
	m.vecs = append(m.vecs, vec)
}

// Dim returns the vector dimensionality.
func (m *Model) Dim() int { return m.dim }

// Len returns the vocabulary size.
func (m *Model) Len() int { return len(m.terms) }

// Terms returns the model vocabulary in file order.
func (m *Model) Terms() []string { return append([]string(nil), m.terms...) }

// Contains reports whether the model knows a term.
func (m *Model) Contains(term string) bool {
	_, ok := m.index[term]
	return ok
}

// Vector returns a copy of the unit vector for a term.
func (m *Model) Vector(term string) ([]float32, bool) {
	i, ok := m.index[term]
	if !ok {
		return nil, false
	}
	return append([]float32(nil), m.vecs[i]...), true
}

// Similarity returns the cosine similarity between two terms.
func (m *Model) Similarity(a, b string) (float64, error) {
	ia, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownTerm)
	}
	ib, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownTerm)
	}
	return dot(m.vecs[ia], m.vecs[ib]), nil
}

// MostSimilar returns up to n terms ranked by descending cosine similarity
// to term, excluding term itself. Ties are broken by term.
func (m *Model) MostSimilar(term string, n int) ([]Similarity, error) {
	i, ok := m.index[term]
	if !ok {
		return nil, fmt.Errorf("%q: %w", term, ErrUnknownTerm)
	}
	if n <= 0 {
		return nil, nil
	}

	query := m.vecs[i]
	out := make([]Similarity, 0, len(m.terms)-1)
	for j, vec := range m.vecs {
		if j == i {
			continue
		}
		out = append(out, Similarity{Term: m.terms[j], Score: dot(query, vec)})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].Term < out[b].Term
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
