package sarif

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFile parses a SARIF document from disk.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sarif file: %w", err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Read parses a SARIF document from r. Anything but whitespace after the
// document is rejected.
func Read(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode sarif: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decode sarif: trailing data after document")
	}
	if doc.Version == "" {
		return nil, errors.New("decode sarif: missing version")
	}
	return &doc, nil
}
