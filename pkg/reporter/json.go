package reporter

import (
	"html"
	"io"

	"github.com/dkoosis/lintreport/pkg/reportjson"
)

// JSON buffers every diagnostic of a run and emits one report document
// when the engine closes the run.
type JSON struct {
	w    io.Writer
	msgs []reportjson.Message
}

// NewJSON creates a JSON reporter writing its document to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// HandleMessage appends one normalized record. The message text is
// HTML-escaped at collection time so renderers can embed it verbatim.
// Nothing is validated or deduplicated; the host's event stream is
// recorded as delivered.
func (j *JSON) HandleMessage(e Event) {
	j.msgs = append(j.msgs, reportjson.Message{
		Category:  e.Category,
		Module:    e.Module,
		Obj:       e.Obj,
		Line:      e.Line,
		Column:    e.Column,
		Path:      e.Path,
		Symbol:    e.Symbol,
		Text:      html.EscapeString(e.Text),
		MessageID: e.MessageID,
	})
}

// OnClose serializes the collected messages together with the engine's
// statistics. The statistics arrive wholesale from the engine; none of
// them are recomputed here.
func (j *JSON) OnClose(stats reportjson.Stats, previous *reportjson.Stats) error {
	return reportjson.Write(j.w, &reportjson.Document{
		Messages:      j.msgs,
		Stats:         stats,
		PreviousStats: previous,
	})
}
