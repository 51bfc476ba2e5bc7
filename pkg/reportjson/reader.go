package reportjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Read parses a report document from r. Missing fields default to their
// zero values and unknown message categories pass through untouched, so
// documents from older or newer producers still load.
func Read(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if dec.More() {
		return nil, errors.New("trailing data after report document")
	}
	return &doc, nil
}

// ReadFile parses a report document from the file at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
