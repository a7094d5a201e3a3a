package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"vo2lab/internal/config"
	"vo2lab/internal/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ReportModel is the analysis result screen model
type ReportModel struct {
	display config.DisplayConfig
	report  *report.Report
	cached  bool
	status  string
}

// NewReportModel creates a new report model
func NewReportModel(display config.DisplayConfig) ReportModel {
	return ReportModel{display: display}
}

func (m *ReportModel) setReport(r *report.Report, cached bool) {
	m.report = r
	m.cached = cached
	m.status = ""
}

// Init initializes the report screen
func (m ReportModel) Init() tea.Cmd {
	return nil
}

type exportDoneMsg struct {
	path string
	err  error
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.status = successStyle.Render("Report written to " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "x" && m.report != nil {
			return m, exportCmd(m.report)
		}
	}
	return m, nil
}

// exportCmd writes the text rendering of the report under ~/.vo2lab/reports
func exportCmd(r *report.Report) tea.Cmd {
	return func() tea.Msg {
		dir, err := config.GetConfigDir()
		if err != nil {
			return exportDoneMsg{err: err}
		}
		dir = filepath.Join(dir, "reports")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return exportDoneMsg{err: fmt.Errorf("creating reports directory: %w", err)}
		}

		path := filepath.Join(dir, "assessment-"+r.GeneratedAt.Format("20060102-150405")+".txt")
		if err := os.WriteFile(path, []byte(report.RenderText(r)), 0644); err != nil {
			return exportDoneMsg{err: fmt.Errorf("writing report: %w", err)}
		}
		return exportDoneMsg{path: path}
	}
}

// View renders the report screen
func (m ReportModel) View() string {
	if m.report == nil {
		return statusStyle.Render("\n  No analysis yet. Enter measurements on the input screen first.")
	}

	var sections []string
	sections = append(sections, m.renderSummary())
	sections = append(sections, m.renderZones())
	sections = append(sections, m.renderLactate())
	sections = append(sections, m.renderKinetics())
	sections = append(sections, m.renderSubstrate())

	if m.status != "" {
		sections = append(sections, m.status)
	} else {
		hint := "press x to export a text report"
		if m.cached {
			hint += "  (identical parameters were analyzed before)"
		}
		sections = append(sections, statusStyle.Render(hint))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ReportModel) renderSummary() string {
	r := m.report
	title := cardTitleStyle.Render("Summary")
	rows := []string{
		RenderMetric("VO2max", fmt.Sprintf("%.1f ml/kg/min", r.Input.Vo2Max)),
		RenderMetric("Steady-state VO2", fmt.Sprintf("%.1f ml/kg/min", r.Kinetics.SteadyState)),
		RenderMetric("Oxygen deficit", fmt.Sprintf("%.0f ml/kg", r.Kinetics.OxygenDeficit)),
		RenderMetric("Sprint power 5s", fmt.Sprintf("%.0f W", r.Input.SprintPower)),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func (m ReportModel) renderZones() string {
	r := m.report
	title := cardTitleStyle.Render("Heart Rate Zones")

	var rows []string
	for _, z := range r.Zones.Zones {
		// Rounded for display only; the engine keeps exact bounds
		bar := zoneBarStyle.Render(zoneBar(z.Low, z.High, r.Zones.HRMax, 30))
		rows = append(rows, fmt.Sprintf("%-24s %3.0f-%3.0f bpm  %s", z.Label, z.Low, z.High, bar))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

// zoneBar draws the zone's share of [0, hrMax] as a fixed-width bar
func zoneBar(low, high, hrMax float64, width int) string {
	start := int(low / hrMax * float64(width))
	end := int(high / hrMax * float64(width))
	if end <= start {
		end = start + 1
	}

	bar := make([]rune, width)
	for i := range bar {
		switch {
		case i >= start && i < end:
			bar[i] = '█'
		default:
			bar[i] = '·'
		}
	}
	return string(bar)
}

func (m ReportModel) renderLactate() string {
	r := m.report
	title := cardTitleStyle.Render("Lactate Profile")

	values := make([]float64, len(r.Lactate.Points))
	for i, pt := range r.Lactate.Points {
		values[i] = pt.Value
	}

	graph := asciigraph.Plot(values,
		asciigraph.Height(m.display.ChartHeight),
		asciigraph.Width(m.display.ChartWidth),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("mmol/L over %.0f-%.0f W  (LT1 %.0f W, LT2 %.0f W)",
			r.Lactate.Points[0].Intensity,
			r.Lactate.Points[len(r.Lactate.Points)-1].Intensity,
			r.Lactate.LT1Power, r.Lactate.LT2Power)),
	)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m ReportModel) renderKinetics() string {
	r := m.report
	title := cardTitleStyle.Render("VO2 Kinetics at Exercise Onset")

	demand := make([]float64, len(r.Kinetics.Points))
	response := make([]float64, len(r.Kinetics.Points))
	for i, pt := range r.Kinetics.Points {
		demand[i] = pt.Demand
		response[i] = pt.Response
	}

	last := r.Kinetics.Points[len(r.Kinetics.Points)-1]
	graph := asciigraph.PlotMany([][]float64{demand, response},
		asciigraph.Height(m.display.ChartHeight),
		asciigraph.Width(m.display.ChartWidth),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Gray, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("O2 demand vs uptake, ml/kg/min over %.0fs", last.TimeSeconds)),
	)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m ReportModel) renderSubstrate() string {
	r := m.report
	title := cardTitleStyle.Render("Energy Expenditure by Fuel Source")

	fat := make([]float64, len(r.Substrate.Points))
	carb := make([]float64, len(r.Substrate.Points))
	for i, pt := range r.Substrate.Points {
		fat[i] = pt.FatCalories
		carb[i] = pt.CarbCalories
	}

	first := r.Substrate.Points[0]
	last := r.Substrate.Points[len(r.Substrate.Points)-1]
	graph := asciigraph.PlotMany([][]float64{fat, carb},
		asciigraph.Height(m.display.ChartHeight),
		asciigraph.Width(m.display.ChartWidth),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Goldenrod),
		asciigraph.Caption(fmt.Sprintf("fat (green) vs carbohydrate (yellow), kcal/min over %.0f-%.0f%% intensity",
			first.Intensity, last.Intensity)),
	)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}
