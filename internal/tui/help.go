package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

type keyHelp struct {
	key  string
	desc string
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Input form"},
		{"2", "Analysis report"},
		{"3", "Assessment history"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / unfocus form"},
	}))

	sections = append(sections, m.renderSection("Input Form", []keyHelp{
		{"tab / enter", "Next field"},
		{"shift+tab", "Previous field"},
		{"ctrl+s", "Run the analysis"},
	}))

	sections = append(sections, m.renderSection("Report", []keyHelp{
		{"x", "Export text report"},
	}))

	sections = append(sections, m.renderSection("History", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Reload assessment"},
		{"d", "Delete assessment"},
		{"r", "Refresh list"},
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HelpModel) renderSection(name string, keys []keyHelp) string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(name))
	b.WriteString("\n")
	for _, k := range keys {
		b.WriteString("  " + RenderKeyHelp(padKey(k.key), k.desc) + "\n")
	}
	return b.String()
}

func padKey(key string) string {
	const width = 12
	if len(key) >= width {
		return key
	}
	return key + strings.Repeat(" ", width-len(key))
}
