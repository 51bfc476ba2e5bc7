// Package htmlreport renders a report document as one self-contained HTML
// page: score header, module summary list, and a detail section per module
// that produced messages.
package htmlreport

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/dkoosis/lintreport/pkg/reportjson"
	"github.com/dkoosis/lintreport/pkg/score"
)

const defaultTitle = "Lint report"

// Renderer holds the presentation knobs for HTML output. The zero value
// renders with the built-in stylesheet and the default title.
type Renderer struct {
	Title string // page heading, defaults to "Lint report"
	CSS   string // stylesheet text, defaults to the embedded default
}

// page is the root of the template data.
type page struct {
	Title    string
	Style    template.CSS
	Date     string
	Time     string
	Score    string
	Previous string
	Delta    string
	Summary  []summaryEntry
	Sections []section
}

// summaryEntry is one line of the module summary list. Modules without
// messages render unlinked with a zero count.
type summaryEntry struct {
	Module string
	Count  int
	Linked bool
}

// section is one per-module detail block.
type section struct {
	Module     string
	Count      int
	BySymbol   []reportjson.CountRow
	ByCategory []reportjson.CountRow
	Rows       []row
}

// row is one message in a detail table.
type row struct {
	Line     int
	Column   int
	Symbol   string
	Category string
	Obj      string
	Message  template.HTML
}

// Render writes doc as a complete HTML document to w.
//
// Two orderings coexist on the page: the summary list follows the key
// order of stats.by_module as the producing engine emitted it, while the
// detail sections follow the order modules are first encountered in the
// message stream. The two can diverge and neither is unified into the
// other.
func (r *Renderer) Render(w io.Writer, doc *reportjson.Document) error {
	if err := reportTemplate.Execute(w, r.buildPage(doc)); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}

func (r *Renderer) buildPage(doc *reportjson.Document) *page {
	title := r.Title
	if title == "" {
		title = defaultTitle
	}
	css := r.CSS
	if css == "" {
		css = defaultCSS
	}

	now := time.Now()
	p := &page{
		Title: title,
		Style: template.CSS(css),
		Date:  now.Format("2006-01-02"),
		Time:  now.Format("15:04:05"),
	}

	// A run without statements has no defined score; the page still
	// renders, showing -1.00 in its place.
	val, ok := score.Compute(doc.Stats)
	if !ok {
		val = -1
	}
	p.Score = fmt.Sprintf("%.2f", val)
	if ok && doc.PreviousStats != nil {
		if prev, defined := score.Compute(*doc.PreviousStats); defined {
			p.Previous = fmt.Sprintf("%.2f", prev)
			p.Delta = fmt.Sprintf("%+.2f", val-prev)
		}
	}

	groups := reportjson.GroupByModule(doc.Messages)
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.Module] = len(g.Messages)
	}

	for _, module := range doc.Stats.ByModule.Modules() {
		p.Summary = append(p.Summary, summaryEntry{
			Module: module,
			Count:  counts[module],
			Linked: counts[module] > 0,
		})
	}

	for _, g := range groups {
		reportjson.SortByPosition(g.Messages)
		sec := section{
			Module: g.Module,
			Count:  len(g.Messages),
			BySymbol: reportjson.CountBy(g.Messages, func(m reportjson.Message) string {
				return m.Symbol
			}),
			ByCategory: reportjson.CountBy(g.Messages, func(m reportjson.Message) string {
				return m.Category
			}),
		}
		for _, m := range g.Messages {
			sec.Rows = append(sec.Rows, row{
				Line:     m.Line,
				Column:   m.Column,
				Symbol:   m.Symbol,
				Category: m.Category,
				Obj:      m.Obj,
				Message:  messageHTML(m.Text),
			})
		}
		p.Sections = append(p.Sections, sec)
	}
	return p
}

// messageHTML injects collector-escaped text without a second escaping
// pass and turns embedded newlines into line breaks.
func messageHTML(text string) template.HTML {
	return template.HTML(strings.ReplaceAll(text, "\n", "<br>"))
}
