// Package source reads raw corpus text from plain text, HTML or JSONL files.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/cognicore/mindmap/internal/logging"
	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
)

// Kind is an input format.
type Kind string

const (
	Text  Kind = "text"
	HTML  Kind = "html"
	JSONL Kind = "jsonl"
)

// KindOf guesses the format from a file extension.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".jsonl", ".ndjson":
		return JSONL
	default:
		return Text
	}
}

// Load reads a file (or stdin for "-") and returns its text content.
func Load(path string, log *logrus.Entry) (string, error) {
	if path == "-" {
		return Read(os.Stdin, Text, log)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, KindOf(path), log)
}

// Read extracts text from r in the given format.
func Read(r io.Reader, kind Kind, log *logrus.Entry) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	switch kind {
	case HTML:
		return extractHTML(string(data)), nil
	case JSONL:
		return extractJSONL(string(data), log)
	default:
		return string(data), nil
	}
}

// Item is one JSONL record; only the text field is used.
type Item struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Body  string `json:"text"`
}

func extractJSONL(data string, log *logrus.Entry) (string, error) {
	if log == nil {
		log = logging.Component(nil, "source")
	}
	var bodies []string
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			log.WithError(err).WithField("line", i+1).Warn("skipping malformed JSON")
			continue
		}
		if body := strings.TrimSpace(item.Body); body != "" {
			bodies = append(bodies, body)
		}
	}
	if len(bodies) == 0 {
		return "", fmt.Errorf("%w: no valid items found", internalerr.ErrInvalidInput)
	}
	return strings.Join(bodies, "\n"), nil
}

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true, "td": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"title": true, "section": true, "article": true, "blockquote": true, "pre": true,
}

func extractHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteByte('\n')
		}
	}
	walk(doc)

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
