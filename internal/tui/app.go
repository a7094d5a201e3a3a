package tui

import (
	"vo2lab/internal/config"
	"vo2lab/internal/report"
	"vo2lab/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenForm Screen = iota
	ScreenReport
	ScreenHistory
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	form       FormModel
	reportView ReportModel
	history    HistoryModel
	help       HelpModel

	// Dependencies
	db  *store.Store
	cfg *config.Config

	// Window dimensions
	width  int
	height int
}

// ReportReadyMsg is sent when a new analysis has been assembled, either
// from a form submission or by reloading a stored assessment.
type ReportReadyMsg struct {
	Report *report.Report
	Cached bool // true when the parameter tuple was already stored
}

// NewApp creates a new App with all dependencies
func NewApp(db *store.Store, cfg *config.Config) *App {
	return &App{
		screen:     ScreenForm,
		db:         db,
		cfg:        cfg,
		form:       NewFormModel(db, cfg),
		reportView: NewReportModel(cfg.Display),
		history:    NewHistoryModel(db, cfg),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings; the form owns most keystrokes while a
		// field is focused, so navigation happens on its terms
		if a.screen != ScreenForm || !a.form.editing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenForm
				return a, a.form.Init()
			case "2":
				if a.reportView.report != nil {
					a.screen = ScreenReport
				}
				return a, nil
			case "3":
				a.screen = ScreenHistory
				return a, a.history.Init()
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case ReportReadyMsg:
		a.form.computing = false
		a.form.errMsg = ""
		a.reportView.setReport(msg.Report, msg.Cached)
		a.screen = ScreenReport
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenForm:
		var m tea.Model
		m, cmd = a.form.Update(msg)
		a.form = m.(FormModel)
	case ScreenReport:
		var m tea.Model
		m, cmd = a.reportView.Update(msg)
		a.reportView = m.(ReportModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("vo2lab — Metabolic Analysis")
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenForm:
		content = a.form.View()
	case ScreenReport:
		content = a.reportView.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := statusStyle.Render("press ? for help")
	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Input", ScreenForm},
		{"2", "Report", ScreenReport},
		{"3", "History", ScreenHistory},
	}

	var nav string
	for i, item := range items {
		style := navInactiveStyle
		if a.screen == item.screen {
			style = navActiveStyle
		}
		if i > 0 {
			nav += navInactiveStyle.Render("  |  ")
		}
		nav += style.Render("[" + item.key + "] " + item.label)
	}
	return nav
}
