package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/mindmap/internal/logging"
	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, HTML, KindOf("page.HTML"))
	assert.Equal(t, JSONL, KindOf("/data/items.jsonl"))
	assert.Equal(t, Text, KindOf("book.txt"))
	assert.Equal(t, Text, KindOf("README"))
}

func TestReadHTML(t *testing.T) {
	page := `<html><head><title>Gift</title><style>p{color:red}</style></head>
<body><p>Della counted   the money.</p><script>var x = 1;</script><div>Jim <b>came</b> home</div></body></html>`

	got, err := Read(strings.NewReader(page), HTML, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "Gift\nDella counted the money.\nJim came home", got)
}

func TestReadJSONL(t *testing.T) {
	data := `{"url":"a","text":"First body."}
not json
{"url":"b","text":"  "}
{"url":"c","text":"Second body."}
`
	got, err := Read(strings.NewReader(data), JSONL, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "First body.\nSecond body.", got)
}

func TestReadJSONLNoItems(t *testing.T) {
	_, err := Read(strings.NewReader("garbage\n"), JSONL, logging.Discard())
	assert.ErrorIs(t, err, internalerr.ErrInvalidInput)

	// A nil entry falls back to the standard logger.
	_, err = Read(strings.NewReader("{\"text\": \"  \"}\n"), JSONL, nil)
	assert.ErrorIs(t, err, internalerr.ErrInvalidInput)
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("The cat sat."), 0o644))

	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.", got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
