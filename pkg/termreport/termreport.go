// Package termreport renders a report document as styled terminal text:
// score header, per-module counts, category totals, and the most frequent
// symbols.
package termreport

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/lintreport/pkg/reportjson"
	"github.com/dkoosis/lintreport/pkg/score"
)

// topSymbolCount bounds the frequent-symbol leaderboard.
const topSymbolCount = 5

var titler = cases.Title(language.English)

// Renderer formats report documents for terminal display.
type Renderer struct {
	theme Theme
	width int
}

// NewRenderer creates a terminal renderer with the given theme. width
// bounds the module name column; values <= 0 fall back to 80.
func NewRenderer(theme Theme, width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{theme: theme, width: width}
}

// Render formats the whole document. Modules appear in the order the
// producing engine listed them in by_module.
func (r *Renderer) Render(doc *reportjson.Document) string {
	var sb strings.Builder
	r.renderScore(&sb, doc)
	r.renderModules(&sb, &doc.Stats)
	r.renderTotals(&sb, &doc.Stats)
	r.renderTopSymbols(&sb, doc.Messages)
	return sb.String()
}

func (r *Renderer) renderScore(sb *strings.Builder, doc *reportjson.Document) {
	sb.WriteString(r.theme.Bold.Render("Lint report"))
	sb.WriteString("\n")

	val, ok := score.Compute(doc.Stats)
	if !ok {
		sb.WriteString("  Score: ")
		sb.WriteString(r.theme.Muted.Render("unavailable (no statements counted)"))
		sb.WriteString("\n")
		return
	}

	style := r.theme.Bad
	switch {
	case val >= 9:
		style = r.theme.Good
	case val >= 5:
		style = r.theme.Warn
	}
	sb.WriteString("  Score: ")
	sb.WriteString(style.Render(fmt.Sprintf("%.2f / 10", val)))
	if doc.PreviousStats != nil {
		if d, defined := score.Delta(doc.Stats, *doc.PreviousStats); defined {
			sb.WriteString(r.theme.Muted.Render(fmt.Sprintf("  (%+.2f since previous run)", d)))
		}
	}
	sb.WriteString("\n")
}

func (r *Renderer) renderModules(sb *strings.Builder, stats *reportjson.Stats) {
	modules := stats.ByModule.Modules()
	if len(modules) == 0 {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(r.theme.Bold.Render("Modules"))
	sb.WriteString("\n")

	maxName := 0
	for _, name := range modules {
		if w := runewidth.StringWidth(name); w > maxName {
			maxName = w
		}
	}
	limit := r.width - 16
	if limit < 8 {
		limit = 8
	}
	if maxName > limit {
		maxName = limit
	}

	for _, name := range modules {
		c, _ := stats.ByModule.Get(name)
		total := c.Error + c.Warning + c.Refactor + c.Convention + c.Fatal + c.Info
		marker, style := r.moduleBadge(c)

		display := name
		if runewidth.StringWidth(display) > maxName {
			display = runewidth.Truncate(display, maxName, "...")
		}

		sb.WriteString("  ")
		sb.WriteString(style.Render(marker + " "))
		sb.WriteString(padRight(display, maxName))
		if total == 0 {
			sb.WriteString(r.theme.Muted.Render("  clean"))
		} else {
			sb.WriteString("  ")
			sb.WriteString(r.theme.Bold.Render(fmt.Sprintf("%d", total)))
		}
		sb.WriteString("\n")
	}
}

func (r *Renderer) renderTotals(sb *strings.Builder, stats *reportjson.Stats) {
	type total struct {
		category string
		count    int
		marker   string
		style    lipgloss.Style
	}
	totals := []total{
		{reportjson.CategoryFatal, stats.Fatal, r.theme.Markers.Error, r.theme.Bad},
		{reportjson.CategoryError, stats.Error, r.theme.Markers.Error, r.theme.Bad},
		{reportjson.CategoryWarning, stats.Warning, r.theme.Markers.Warning, r.theme.Warn},
		{reportjson.CategoryRefactor, stats.Refactor, r.theme.Markers.Refactor, r.theme.Note},
		{reportjson.CategoryConvention, stats.Convention, r.theme.Markers.Convention, r.theme.Note},
		{reportjson.CategoryInfo, stats.Info, r.theme.Markers.Bullet, r.theme.Muted},
	}

	sb.WriteString("\n")
	sb.WriteString(r.theme.Bold.Render("Totals"))
	sb.WriteString("\n")
	for _, tot := range totals {
		// Fatal and info rows only matter when the engine reported any.
		optional := tot.category == reportjson.CategoryFatal || tot.category == reportjson.CategoryInfo
		if optional && tot.count == 0 {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(tot.style.Render(fmt.Sprintf("%s %s: %d", tot.marker, titler.String(tot.category), tot.count)))
		sb.WriteString("\n")
	}
}

func (r *Renderer) renderTopSymbols(sb *strings.Builder, msgs []reportjson.Message) {
	if len(msgs) == 0 {
		return
	}

	rows := reportjson.CountBy(msgs, func(m reportjson.Message) string { return m.Symbol })
	// Key-sorted input keeps the tie-break alphabetical.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })

	shown := topSymbolCount
	if len(rows) < shown {
		shown = len(rows)
	}
	header := "Frequent symbols"
	if len(rows) > shown {
		header += fmt.Sprintf(" (top %d of %d)", shown, len(rows))
	}

	maxName, maxCount := 0, 0
	counts := make([]string, shown)
	for i, row := range rows[:shown] {
		if w := runewidth.StringWidth(row.Key); w > maxName {
			maxName = w
		}
		counts[i] = fmt.Sprintf("%d", row.Count)
		if len(counts[i]) > maxCount {
			maxCount = len(counts[i])
		}
	}

	sb.WriteString("\n")
	sb.WriteString(r.theme.Bold.Render(header))
	sb.WriteString("\n")
	for i, row := range rows[:shown] {
		sb.WriteString("  ")
		sb.WriteString(r.theme.Muted.Render(fmt.Sprintf("%2d. ", i+1)))
		sb.WriteString(r.theme.Note.Render(padRight(row.Key, maxName)))
		sb.WriteString("  ")
		sb.WriteString(r.theme.Warn.Render(padLeft(counts[i], maxCount)))
		sb.WriteString("\n")
	}
}

func (r *Renderer) moduleBadge(c reportjson.ModuleCounts) (string, lipgloss.Style) {
	switch {
	case c.Fatal > 0 || c.Error > 0:
		return r.theme.Markers.Error, r.theme.Bad
	case c.Warning > 0:
		return r.theme.Markers.Warning, r.theme.Warn
	case c.Refactor > 0 || c.Convention > 0:
		return r.theme.Markers.Convention, r.theme.Note
	default:
		return r.theme.Markers.Clean, r.theme.Good
	}
}

func padRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func padLeft(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
