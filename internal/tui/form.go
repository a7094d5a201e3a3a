package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"vo2lab/internal/config"
	"vo2lab/internal/engine"
	"vo2lab/internal/report"
	"vo2lab/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form field indexes
const (
	fieldVo2Max = iota
	fieldLT1
	fieldLT2
	fieldMaxHR
	fieldSprintPower
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"VO2max (ml/kg/min)",
	"LT1 heart rate (bpm)",
	"LT2 heart rate (bpm)",
	"Max heart rate (bpm)",
	"Sprint power 5s (W)",
	"Notes (optional)",
}

// FormModel is the measurement input screen model
type FormModel struct {
	db  *store.Store
	cfg *config.Config

	inputs    [fieldCount]textinput.Model
	focus     int
	computing bool
	errMsg    string
}

// NewFormModel creates the input form, prefilled from the athlete config
func NewFormModel(db *store.Store, cfg *config.Config) FormModel {
	m := FormModel{db: db, cfg: cfg}

	placeholders := [fieldCount]string{"55.0", "140", "165", "190", "850", ""}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 24
		m.inputs[i] = ti
	}
	m.inputs[fieldNotes].CharLimit = 500
	m.inputs[fieldNotes].Width = 48

	m.prefill(cfg.Athlete)
	m.inputs[0].Focus()
	return m
}

func (m *FormModel) prefill(a config.AthleteConfig) {
	if a.Vo2Max > 0 {
		m.inputs[fieldVo2Max].SetValue(strconv.FormatFloat(a.Vo2Max, 'f', 1, 64))
	}
	if a.LT1HeartRate > 0 {
		m.inputs[fieldLT1].SetValue(strconv.Itoa(a.LT1HeartRate))
	}
	if a.LT2HeartRate > 0 {
		m.inputs[fieldLT2].SetValue(strconv.Itoa(a.LT2HeartRate))
	}
	if a.MaxHeartRate > 0 {
		m.inputs[fieldMaxHR].SetValue(strconv.Itoa(a.MaxHeartRate))
	}
	if a.SprintPower > 0 {
		m.inputs[fieldSprintPower].SetValue(strconv.FormatFloat(a.SprintPower, 'f', 0, 64))
	}
}

// editing reports whether keystrokes currently belong to a text field
func (m FormModel) editing() bool {
	return m.focus >= 0 && m.focus < fieldCount
}

// Init initializes the form screen
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

type formErrorMsg struct{ err error }

// Update handles messages
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formErrorMsg:
		m.computing = false
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.computing {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "esc":
			m.setFocus(-1)
			return m, nil
		case "enter":
			if !m.editing() {
				m.setFocus(0)
				return m, nil
			}
			if m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m.submit()
		case "ctrl+s":
			return m.submit()
		}
	}

	if !m.editing() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) setFocus(idx int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = idx
	if m.editing() {
		m.inputs[idx].Focus()
	}
}

func (m FormModel) submit() (tea.Model, tea.Cmd) {
	spec, err := m.parseSpec()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if err := spec.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.computing = true
	opts := optionsFromConfig(m.cfg.Model)

	// Remember the measurements for the next session. Losing the prefill
	// is not fatal, the analysis still runs.
	m.cfg.Athlete.Vo2Max = spec.Vo2Max
	m.cfg.Athlete.LT1HeartRate = spec.LT1HeartRate
	m.cfg.Athlete.LT2HeartRate = spec.LT2HeartRate
	m.cfg.Athlete.MaxHeartRate = spec.MaxHeartRate
	m.cfg.Athlete.SprintPower = spec.SprintPower
	_ = config.Save(m.cfg)

	return m, computeCmd(m.db, m.cfg.Athlete.Name, spec, opts)
}

func (m FormModel) parseSpec() (engine.InputSpec, error) {
	var spec engine.InputSpec
	var err error

	raw := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	if spec.Vo2Max, err = strconv.ParseFloat(raw(fieldVo2Max), 64); err != nil {
		return spec, fmt.Errorf("VO2max must be a number, got %q", raw(fieldVo2Max))
	}
	if spec.LT1HeartRate, err = strconv.Atoi(raw(fieldLT1)); err != nil {
		return spec, fmt.Errorf("LT1 heart rate must be a whole number, got %q", raw(fieldLT1))
	}
	if spec.LT2HeartRate, err = strconv.Atoi(raw(fieldLT2)); err != nil {
		return spec, fmt.Errorf("LT2 heart rate must be a whole number, got %q", raw(fieldLT2))
	}
	if spec.MaxHeartRate, err = strconv.Atoi(raw(fieldMaxHR)); err != nil {
		return spec, fmt.Errorf("max heart rate must be a whole number, got %q", raw(fieldMaxHR))
	}
	if spec.SprintPower, err = strconv.ParseFloat(raw(fieldSprintPower), 64); err != nil {
		return spec, fmt.Errorf("sprint power must be a number, got %q", raw(fieldSprintPower))
	}
	spec.Notes = raw(fieldNotes)
	return spec, nil
}

// computeCmd runs the models off the update loop and stores the result
func computeCmd(db *store.Store, athleteName string, spec engine.InputSpec, opts report.Options) tea.Cmd {
	return func() tea.Msg {
		key := report.CacheKey(spec, opts)

		cached := false
		if _, err := db.GetAssessmentByCacheKey(key); err == nil {
			cached = true
		}

		r, err := report.Assemble(spec, opts)
		if err != nil {
			return formErrorMsg{err: err}
		}

		optsJSON, err := json.Marshal(opts)
		if err != nil {
			return formErrorMsg{err: fmt.Errorf("encoding options: %w", err)}
		}

		_, err = db.SaveAssessment(&store.Assessment{
			CreatedAt:     r.GeneratedAt,
			AthleteName:   athleteName,
			Vo2Max:        spec.Vo2Max,
			LT1HeartRate:  spec.LT1HeartRate,
			LT2HeartRate:  spec.LT2HeartRate,
			MaxHeartRate:  spec.MaxHeartRate,
			SprintPower:   spec.SprintPower,
			Notes:         spec.Notes,
			CacheKey:      key,
			OptionsJSON:   string(optsJSON),
			SteadyState:   r.Kinetics.SteadyState,
			OxygenDeficit: r.Kinetics.OxygenDeficit,
		})
		if err != nil {
			return formErrorMsg{err: fmt.Errorf("saving assessment: %w", err)}
		}

		return ReportReadyMsg{Report: r, Cached: cached}
	}
}

// optionsFromConfig maps the configured model parameters onto the report
// options. Config.Validate has already rejected out-of-domain values.
func optionsFromConfig(m config.ModelConfig) report.Options {
	return report.Options{
		Lactate: engine.LactateParams{
			LT1Fraction: m.LT1Fraction,
			LT2Fraction: m.LT2Fraction,
			SampleCount: m.LactateSamples,
		},
		Kinetics: engine.KineticsParams{
			SteadyStateFraction: m.SteadyStateFraction,
			TimeConstant:        m.TimeConstant,
			DurationSeconds:     m.DurationSeconds,
			StepSeconds:         m.StepSeconds,
		},
		Substrate: engine.SubstrateParams{
			BaseCalorieRate: m.BaseCalorieRate,
			IntensityMin:    m.IntensityMin,
			IntensityMax:    m.IntensityMax,
			SampleCount:     m.SubstrateSamples,
		},
	}
}

// View renders the form
func (m FormModel) View() string {
	var sections []string
	sections = append(sections, cardTitleStyle.Render("Test Measurements"))

	var rows []string
	for i := range m.inputs {
		label := fieldLabelStyle
		if i == m.focus {
			label = fieldFocusedStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Left,
			label.Render(fieldLabels[i]),
			m.inputs[i].View(),
		))
	}
	sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	if m.computing {
		sections = append(sections, statusStyle.Render("Analyzing..."))
	} else if m.errMsg != "" {
		sections = append(sections, errorStyle.Render("Error: "+m.errMsg))
	} else {
		sections = append(sections, statusStyle.Render("tab/enter to move, ctrl+s or enter on the last field to analyze"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
