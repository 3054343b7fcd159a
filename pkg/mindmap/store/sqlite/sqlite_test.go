package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/mindmap/pkg/mindmap/ingest"
	"github.com/cognicore/mindmap/pkg/mindmap/stem"
	"github.com/cognicore/mindmap/pkg/mindmap/vocab"
)

func buildVocab(text string) *vocab.Vocabulary {
	return ingest.Build(text, ingest.Options{
		Stemmer:   stem.Porter(),
		Stopwords: []string{"the", "and"},
		MinCount:  1,
	}).Vocabulary
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "vocab.db")

	v := buildVocab("The cats and the cat. Running runs run. Dogs.")
	require.NoError(t, Export(ctx, dbPath, v))

	st, err := Open(ctx, dbPath)
	require.NoError(t, err)
	defer st.Close()

	top, err := st.TopStems(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, StemRow{Stem: "run", Count: 3, FirstSeen: 1}, top[0])
	assert.Equal(t, StemRow{Stem: "cat", Count: 2, FirstSeen: 0}, top[1])

	forms, err := st.Forms(ctx, "cat")
	require.NoError(t, err)
	assert.Equal(t, []vocab.Form{{Token: "cat", Count: 1}, {Token: "cats", Count: 1}}, forms)

	stops, err := st.Stopwords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "the"}, stops)

	all, err := st.TopStems(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, v.Len())
}

func TestExportReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "vocab.db")

	require.NoError(t, Export(ctx, dbPath, buildVocab("alpha beta gamma")))
	require.NoError(t, Export(ctx, dbPath, buildVocab("delta")))

	st, err := Open(ctx, dbPath)
	require.NoError(t, err)
	defer st.Close()

	all, err := st.TopStems(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "delta", all[0].Stem)
}

func TestFormsUnknownStem(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, filepath.Join(t.TempDir(), "vocab.db"))
	require.NoError(t, err)
	defer st.Close()

	forms, err := st.Forms(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, forms)
}
