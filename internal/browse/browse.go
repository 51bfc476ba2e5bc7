// Package browse provides an interactive terminal browser for report
// documents: module list on the left, per-message detail on the right.
package browse

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/lintreport/pkg/reportjson"
	"github.com/dkoosis/lintreport/pkg/score"
	"github.com/dkoosis/lintreport/pkg/termreport"
)

// Run opens the browser over doc and blocks until the user quits.
func Run(doc *reportjson.Document, theme termreport.Theme) error {
	program := tea.NewProgram(newModel(doc, theme), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

type model struct {
	theme       termreport.Theme
	scoreLine   string
	groups      []reportjson.ModuleGroup
	selected    int
	viewport    viewport.Model
	ready       bool
	width       int
	height      int
	listWidth   int
	detailWidth int
}

func newModel(doc *reportjson.Document, theme termreport.Theme) model {
	groups := reportjson.GroupByModule(doc.Messages)
	for _, g := range groups {
		reportjson.SortByPosition(g.Messages)
	}

	vp := viewport.New(0, 0)
	vp.SetContent("No messages")

	m := model{theme: theme, groups: groups, viewport: vp}
	if val, ok := score.Compute(doc.Stats); ok {
		m.scoreLine = fmt.Sprintf("score %.2f / 10", val)
	} else {
		m.scoreLine = "score unavailable"
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.groups)-1 {
				m.selected++
				m.refreshViewport()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = m.calculateListWidth()
		if m.listWidth > m.width/2 {
			m.listWidth = m.width / 2
		}
		m.detailWidth = m.width - m.listWidth - 3
		m.viewport.Width = m.detailWidth - 2
		m.viewport.Height = m.height - 7
		m.ready = true
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) calculateListWidth() int {
	width := 24
	for _, g := range m.groups {
		// "▶ name (42)" plus box padding
		if w := len(g.Module) + 10; w > width {
			width = w
		}
	}
	return width
}

func (m *model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.groups) {
		return
	}
	m.viewport.SetContent(m.renderMessages(m.groups[m.selected]))
	m.viewport.GotoTop()
}

// renderMessages lays out one module's messages, sorted by position.
// Stored text is collector-escaped; terminals need it plain again.
func (m *model) renderMessages(g reportjson.ModuleGroup) string {
	if len(g.Messages) == 0 {
		return "No messages"
	}
	var sb strings.Builder
	for _, msg := range g.Messages {
		marker, style := m.categoryBadge(msg.Category)
		sb.WriteString(m.theme.Muted.Render(fmt.Sprintf("%5d:%-4d", msg.Line, msg.Column)))
		sb.WriteString(" ")
		sb.WriteString(style.Render(marker + " " + msg.Symbol))
		if msg.Obj != "" {
			sb.WriteString(m.theme.Muted.Render(" in " + msg.Obj))
		}
		sb.WriteString("\n")
		text := html.UnescapeString(msg.Text)
		for _, line := range strings.Split(text, "\n") {
			sb.WriteString("           ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m *model) categoryBadge(category string) (string, lipgloss.Style) {
	switch category {
	case reportjson.CategoryFatal, reportjson.CategoryError:
		return m.theme.Markers.Error, m.theme.Bad
	case reportjson.CategoryWarning:
		return m.theme.Markers.Warning, m.theme.Warn
	case reportjson.CategoryRefactor:
		return m.theme.Markers.Refactor, m.theme.Note
	case reportjson.CategoryConvention:
		return m.theme.Markers.Convention, m.theme.Note
	default:
		return m.theme.Markers.Bullet, m.theme.Muted
	}
}

func (m model) View() string {
	if !m.ready {
		return "Loading report..."
	}

	title := m.theme.Bold.Render("lintreport") + "  " + m.theme.Muted.Render(m.scoreLine)

	contentHeight := m.height - 5
	if contentHeight < 3 {
		contentHeight = 3
	}

	listPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(m.listWidth).
		Height(contentHeight).
		Render(m.renderList(contentHeight))

	var detail string
	if m.selected >= 0 && m.selected < len(m.groups) {
		g := m.groups[m.selected]
		header := m.theme.Bold.Render(fmt.Sprintf("%s (%d)", g.Module, len(g.Messages)))
		detail = header + "\n\n" + m.viewport.View()
	} else {
		detail = "No modules"
	}
	detailPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(m.detailWidth).
		Height(contentHeight).
		Render(detail)

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	help := m.theme.Muted.Render("↑/↓ select module • pgup/pgdn scroll • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

func (m *model) renderList(height int) string {
	var lines []string
	for i, g := range m.groups {
		marker := "  "
		line := fmt.Sprintf("%s (%d)", g.Module, len(g.Messages))
		if i == m.selected {
			marker = "▶ "
			line = m.theme.Bold.Render(line)
		}
		lines = append(lines, marker+line)
	}
	if len(lines) == 0 {
		lines = []string{m.theme.Muted.Render("no modules with messages")}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
