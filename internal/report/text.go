package report

import (
	"fmt"
	"strings"
)

// RenderText formats a report as a plain-text document suitable for
// saving to disk or pasting into an email. Zone bounds are rounded to
// whole bpm here only; the Report keeps the exact values.
func RenderText(r *Report) string {
	var b strings.Builder

	b.WriteString("METABOLIC TEST REPORT\n")
	b.WriteString("=====================\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04"))

	b.WriteString("Test Measurements\n")
	b.WriteString("-----------------\n")
	fmt.Fprintf(&b, "VO2max:          %.1f ml/kg/min\n", r.Input.Vo2Max)
	fmt.Fprintf(&b, "LT1 HR:          %d bpm\n", r.Input.LT1HeartRate)
	fmt.Fprintf(&b, "LT2 HR:          %d bpm\n", r.Input.LT2HeartRate)
	fmt.Fprintf(&b, "Max HR:          %d bpm\n", r.Input.MaxHeartRate)
	fmt.Fprintf(&b, "Sprint Power 5s: %.0f W\n\n", r.Input.SprintPower)

	b.WriteString("Heart Rate Zones\n")
	b.WriteString("----------------\n")
	for _, z := range r.Zones.Zones {
		fmt.Fprintf(&b, "%-24s %3.0f-%3.0f bpm\n", z.Label+":", z.Low, z.High)
	}
	b.WriteString("\n")

	b.WriteString("Lactate Profile\n")
	b.WriteString("---------------\n")
	fmt.Fprintf(&b, "LT1 marker: %.0f W    LT2 marker: %.0f W\n", r.Lactate.LT1Power, r.Lactate.LT2Power)
	first := r.Lactate.Points[0]
	last := r.Lactate.Points[len(r.Lactate.Points)-1]
	fmt.Fprintf(&b, "Lactate %.1f mmol/L at %.0f W rising to %.1f mmol/L at %.0f W\n\n",
		first.Value, first.Intensity, last.Value, last.Intensity)

	b.WriteString("Oxygen Kinetics\n")
	b.WriteString("---------------\n")
	fmt.Fprintf(&b, "Steady-state VO2: %.1f ml/kg/min\n", r.Kinetics.SteadyState)
	fmt.Fprintf(&b, "Oxygen deficit:   %.0f ml/kg\n\n", r.Kinetics.OxygenDeficit)

	b.WriteString("Fuel Utilization\n")
	b.WriteString("----------------\n")
	for _, pt := range r.Substrate.Points {
		fmt.Fprintf(&b, "%3.0f%%  fat %4.1f kcal/min  carb %4.1f kcal/min  total %4.1f kcal/min\n",
			pt.Intensity, pt.FatCalories, pt.CarbCalories, pt.TotalCalories)
	}

	if r.Input.Notes != "" {
		b.WriteString("\nAthlete Notes\n")
		b.WriteString("-------------\n")
		b.WriteString(r.Input.Notes)
		b.WriteString("\n")
	}

	return b.String()
}
