package history

import (
	"io"

	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/vitals/patients"
)

const (
	SheetNamePatients = "Patients"
	SheetNameBMI      = "BMI"
	SheetNamePressure = "Pressure"
	SheetNameGlucose  = "Glucose"
)

// Export is a workbook with the profile of every patient and one row per
// reading, keyed by the patient name.
type Export struct {
	patients []patients.Patient
}

func NewExport(list []patients.Patient) Export {
	return Export{patients: list}
}

func (e Export) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		e.addPatientsSheet,
		e.addBMISheet,
		e.addPressureSheet,
		e.addGlucoseSheet,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (e Export) Write(w io.Writer) error {
	report, err := e.Generate()
	if err != nil {
		return err
	}
	return report.Write(w)
}

func (e Export) addPatientsSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNamePatients)
	if err != nil {
		return err
	}

	addHeader(sh, "Name", "Age", "Sex", "Ethnicity", "Residence", "Birthplace", "Occupation", "Notes")
	for _, patient := range e.patients {
		row := sh.AddRow()
		row.AddCell().SetValue(patient.Profile.Name)
		row.AddCell().SetInt(patient.Profile.Age)
		row.AddCell().SetValue(patient.Profile.Sex)
		row.AddCell().SetValue(patient.Profile.Ethnicity)
		row.AddCell().SetValue(patient.Profile.Residence)
		row.AddCell().SetValue(patient.Profile.Birthplace)
		row.AddCell().SetValue(patient.Profile.Occupation)
		row.AddCell().SetValue(patient.Profile.Notes)
	}

	return nil
}

func (e Export) addBMISheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameBMI)
	if err != nil {
		return err
	}

	addHeader(sh, "Name", "Time", "Weight (kg)", "Height (m)", "BMI", "Category")
	for _, patient := range e.patients {
		for _, reading := range patient.BMIHistory {
			row := sh.AddRow()
			row.AddCell().SetValue(patient.Profile.Name)
			row.AddCell().SetValue(reading.Time)
			row.AddCell().SetFloat(reading.Weight)
			row.AddCell().SetFloat(reading.Height)
			row.AddCell().SetFloatWithFormat(reading.BMI, "0.00")
			row.AddCell().SetValue(string(reading.Category))
		}
	}

	return nil
}

func (e Export) addPressureSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNamePressure)
	if err != nil {
		return err
	}

	addHeader(sh, "Name", "Time", "Systolic", "Diastolic", "Category", "Comment")
	for _, patient := range e.patients {
		for _, reading := range patient.PressureHistory {
			row := sh.AddRow()
			row.AddCell().SetValue(patient.Profile.Name)
			row.AddCell().SetValue(reading.Time)
			row.AddCell().SetInt(reading.Systolic)
			row.AddCell().SetInt(reading.Diastolic)
			row.AddCell().SetValue(string(reading.Category))
			row.AddCell().SetValue(reading.Comment)
		}
	}

	return nil
}

func (e Export) addGlucoseSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(SheetNameGlucose)
	if err != nil {
		return err
	}

	addHeader(sh, "Name", "Time", "Glucose (mg/dL)", "Category", "Comment")
	for _, patient := range e.patients {
		for _, reading := range patient.GlucoseHistory {
			row := sh.AddRow()
			row.AddCell().SetValue(patient.Profile.Name)
			row.AddCell().SetValue(reading.Time)
			row.AddCell().SetFloat(reading.Glucose)
			row.AddCell().SetValue(string(reading.Category))
			row.AddCell().SetValue(reading.Comment)
		}
	}

	return nil
}

func addHeader(sh *xlsx.Sheet, titles ...string) {
	row := sh.AddRow()
	for _, title := range titles {
		row.AddCell().SetValue(title)
	}
}
