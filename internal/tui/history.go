package tui

import (
	"encoding/json"
	"fmt"

	"vo2lab/internal/config"
	"vo2lab/internal/engine"
	"vo2lab/internal/report"
	"vo2lab/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const historyPageSize = 50

// HistoryModel is the stored-assessments screen model
type HistoryModel struct {
	db  *store.Store
	cfg *config.Config

	items   []store.Assessment
	cursor  int
	loading bool
	err     error
}

// NewHistoryModel creates a new history model
func NewHistoryModel(db *store.Store, cfg *config.Config) HistoryModel {
	return HistoryModel{db: db, cfg: cfg, loading: true}
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory
}

type historyLoadedMsg struct {
	items []store.Assessment
	err   error
}

func (m HistoryModel) loadHistory() tea.Msg {
	items, err := m.db.ListAssessments(historyPageSize)
	return historyLoadedMsg{items: items, err: err}
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			return m, m.loadHistory
		case "enter":
			if len(m.items) > 0 {
				return m, reassembleCmd(m.items[m.cursor])
			}
		case "d":
			if len(m.items) > 0 {
				id := m.items[m.cursor].ID
				return m, func() tea.Msg {
					if err := m.db.DeleteAssessment(id); err != nil {
						return historyLoadedMsg{err: err}
					}
					return m.loadHistory()
				}
			}
		}
	}
	return m, nil
}

// reassembleCmd re-runs the models from a stored parameter tuple. The
// engine is deterministic, so this reproduces the original curves exactly.
func reassembleCmd(a store.Assessment) tea.Cmd {
	return func() tea.Msg {
		var opts report.Options
		if err := json.Unmarshal([]byte(a.OptionsJSON), &opts); err != nil {
			return formErrorMsg{err: fmt.Errorf("decoding stored options: %w", err)}
		}

		spec := engine.InputSpec{
			Vo2Max:       a.Vo2Max,
			LT1HeartRate: a.LT1HeartRate,
			LT2HeartRate: a.LT2HeartRate,
			MaxHeartRate: a.MaxHeartRate,
			SprintPower:  a.SprintPower,
			Notes:        a.Notes,
		}

		r, err := report.Assemble(spec, opts)
		if err != nil {
			return formErrorMsg{err: err}
		}
		// Keep the original session time rather than the reload time
		r.GeneratedAt = a.CreatedAt
		return ReportReadyMsg{Report: r, Cached: true}
	}
}

// View renders the history screen
func (m HistoryModel) View() string {
	var sections []string
	sections = append(sections, cardTitleStyle.Render("Past Assessments"))

	if m.loading {
		sections = append(sections, statusStyle.Render("Loading..."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
	if len(m.items) == 0 {
		sections = append(sections, statusStyle.Render("No stored assessments yet."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	header := tableRowStyle.Render(fmt.Sprintf("%-17s %-8s %-13s %-9s %s",
		"Date", "VO2max", "LT1/LT2/Max", "Sprint", "Notes"))
	rows := []string{header}
	for i, a := range m.items {
		line := fmt.Sprintf("%-17s %-8.1f %3d/%3d/%3d   %-9s %s",
			a.CreatedAt.Format("2006-01-02 15:04"),
			a.Vo2Max,
			a.LT1HeartRate, a.LT2HeartRate, a.MaxHeartRate,
			fmt.Sprintf("%.0f W", a.SprintPower),
			truncate(a.Notes, 28),
		)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}
	sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	sections = append(sections, statusStyle.Render("enter to view, d to delete, r to refresh"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
