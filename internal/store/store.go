package store

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/dastanaron/recentdirs/internal/models"

	"golang.org/x/net/html/charset"
)

// ErrUnavailable marks a recently-used store that is missing or malformed.
// The program treats it as fatal: no partial operation is attempted.
var ErrUnavailable = errors.New("recently-used store unavailable")

// Load reads and parses the XBEL store at path.
func Load(path string) (*models.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer file.Close()

	var doc models.Document
	dec := xml.NewDecoder(file)
	// Stores written by older toolkits occasionally declare non-UTF-8
	// encodings; decode through a charset-aware reader.
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, path, err)
	}
	return &doc, nil
}

// Save writes the document back to path as pretty-printed UTF-8 XML with
// a declaration header. The write replaces the whole file in one pass.
func Save(path string, doc *models.Document) error {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	out := append([]byte(xml.Header), body...)
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write store %s: %w", path, err)
	}
	return nil
}
