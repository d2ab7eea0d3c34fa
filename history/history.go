// Package history renders the readings of patients for people and
// spreadsheets.
package history

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/tidepool-org/vitals/locale"
	"github.com/tidepool-org/vitals/patients"
)

type Renderer struct {
	printer *message.Printer
}

func NewRenderer(printer *message.Printer) *Renderer {
	return &Renderer{printer: printer}
}

// Render writes the title followed by the bmi, pressure and glucose readings of
// the patient in the order they were recorded.
func (r *Renderer) Render(w io.Writer, patient patients.Patient) error {
	p := r.printer
	lines := []string{
		p.Sprintf(locale.HistoryTitle, patient.Profile.Name),
		p.Sprintf(locale.HistoryBMI),
	}
	for _, reading := range patient.BMIHistory {
		lines = append(lines, p.Sprintf(locale.BMIEntry,
			reading.Time,
			Decimal(reading.Weight),
			Decimal(reading.Height),
			strconv.FormatFloat(reading.BMI, 'f', 2, 64),
			locale.Label(p, reading.Category),
		))
	}

	lines = append(lines, p.Sprintf(locale.HistoryPressure))
	for _, reading := range patient.PressureHistory {
		lines = append(lines, p.Sprintf(locale.PressureEntry,
			reading.Time,
			strconv.Itoa(reading.Systolic),
			strconv.Itoa(reading.Diastolic),
			locale.Label(p, reading.Category),
		)+comment(reading.Comment))
	}

	lines = append(lines, p.Sprintf(locale.HistoryGlucose))
	for _, reading := range patient.GlucoseHistory {
		lines = append(lines, p.Sprintf(locale.GlucoseEntry,
			reading.Time,
			Decimal(reading.Glucose),
			locale.Label(p, reading.Category),
		)+comment(reading.Comment))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// RenderAll renders every patient separated by a blank line.
func (r *Renderer) RenderAll(w io.Writer, list []patients.Patient) error {
	for i, patient := range list {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.Render(w, patient); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) Text(patient patients.Patient) string {
	var b strings.Builder
	_ = r.Render(&b, patient)
	return b.String()
}

// Decimal formats a measurement with as few digits as needed.
func Decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func comment(c string) string {
	if c == "" {
		return ""
	}
	return " | " + c
}
