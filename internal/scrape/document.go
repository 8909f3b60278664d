package scrape

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"
)

// LoadDocument builds a document from raw HTML and strips the decorative
// rows basketball-reference inserts into its tables (spanning over-headers
// and repeated mid-table headers). Stripping happens once here so every
// downstream consumer sees stable row positions.
func LoadDocument(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc.Find("tr.over_header, tr.thead").Remove()

	return doc, nil
}

// ParseDocument is LoadDocument over an in-memory page.
func ParseDocument(html string) (*goquery.Document, error) {
	return LoadDocument(strings.NewReader(html))
}

// DecodeFile reads a stored document, decoding as UTF-8 when valid and
// falling back to Latin-1 otherwise. Older archived pages predate the
// site's move to UTF-8, so the fallback is load-bearing, not cosmetic.
func DecodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return string(decoded), nil
}
