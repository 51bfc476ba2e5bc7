// Package detect sniffs report input to determine which dialect it carries.
package detect

import (
	"encoding/json"
)

// Format represents a recognized input dialect.
type Format int

const (
	Unknown        Format = iota
	ReportDocument        // collector document: {"messages": [...], "stats": {...}}
	MessageArray          // a linter's native JSON message array
	SARIF                 // SARIF 2.1.0 JSON document
)

// Sniff examines input bytes and reports the dialect they carry.
// A top-level array can only be the native message array; objects are
// probed for SARIF markers first, then for the collector document shape.
func Sniff(data []byte) Format {
	for len(data) > 0 && (data[0] == ' ' || data[0] == '\t' || data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '[':
		return MessageArray
	case '{':
	default:
		return Unknown
	}

	if isSARIF(data) {
		return SARIF
	}
	if isReportDocument(data) {
		return ReportDocument
	}
	return Unknown
}

func isSARIF(data []byte) bool {
	var probe struct {
		Version string            `json:"version"`
		Runs    []json.RawMessage `json:"runs"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Version != "" && probe.Runs != nil
}

func isReportDocument(data []byte) bool {
	var probe struct {
		Messages json.RawMessage `json:"messages"`
		Stats    json.RawMessage `json:"stats"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Messages != nil || probe.Stats != nil
}
