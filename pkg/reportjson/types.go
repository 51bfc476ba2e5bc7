// Package reportjson provides the lint report interchange format: parsing,
// serialization, and grouping of the JSON documents exchanged between the
// collecting reporter and the rendering command.
package reportjson

// Message represents a single diagnostic record.
// The message text is stored HTML-escaped by the collector so it can be
// embedded in a report document without further processing.
type Message struct {
	Category  string `json:"type"` // "error", "warning", "refactor", "convention", "fatal", "info"
	Module    string `json:"module"`
	Obj       string `json:"obj"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Path      string `json:"path"`
	Symbol    string `json:"symbol"`
	Text      string `json:"message"`
	MessageID string `json:"message-id"`
}

// Stats holds the aggregate statistics a host analysis engine produces for
// one run. The engine supplies it wholesale; nothing here is accumulated
// incrementally by this package.
type Stats struct {
	ByModule     ModuleBreakdown      `json:"by_module"`
	Statement    int                  `json:"statement"`
	Error        int                  `json:"error"`
	Warning      int                  `json:"warning"`
	Refactor     int                  `json:"refactor"`
	Convention   int                  `json:"convention"`
	Info         int                  `json:"info,omitempty"`
	Fatal        int                  `json:"fatal,omitempty"`
	Dependencies map[string]StringSet `json:"dependencies,omitempty"`
}

// ModuleCounts is the per-module slice of Stats.
type ModuleCounts struct {
	Convention int `json:"convention"`
	Error      int `json:"error"`
	Fatal      int `json:"fatal"`
	Info       int `json:"info"`
	Refactor   int `json:"refactor"`
	Warning    int `json:"warning"`
	Statement  int `json:"statement,omitempty"`
}

// Document is the interchange unit between the collector and the renderers:
// every diagnostic of one run plus the final and previous statistics.
type Document struct {
	Messages      []Message `json:"messages"`
	Stats         Stats     `json:"stats"`
	PreviousStats *Stats    `json:"previous_stats,omitempty"`
}

// CategoryError indicates a likely bug.
const CategoryError = "error"

// CategoryWarning indicates a stylistic or minor programming issue.
const CategoryWarning = "warning"

// CategoryRefactor indicates a code smell.
const CategoryRefactor = "refactor"

// CategoryConvention indicates a coding-standard violation.
const CategoryConvention = "convention"

// CategoryFatal indicates an error that prevented further processing.
const CategoryFatal = "fatal"

// CategoryInfo indicates an informational finding.
const CategoryInfo = "info"
