package reportjson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write serializes doc to w as two-space indented JSON. A nil message
// slice is emitted as an empty array so consumers never see "messages":
// null for a clean run.
func Write(w io.Writer, doc *Document) error {
	out := *doc
	if out.Messages == nil {
		out.Messages = []Message{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
