package api

import (
	"github.com/tidepool-org/vitals/patients"
)

func NewProfile(dto CreatePatient) patients.Profile {
	return patients.Profile{
		Name:       dto.Name,
		Age:        dto.Age,
		Sex:        dto.Sex,
		Ethnicity:  dto.Ethnicity,
		Residence:  dto.Residence,
		Birthplace: dto.Birthplace,
		Occupation: dto.Occupation,
		Notes:      dto.Notes,
	}
}

func NewPatientDto(patient *patients.Patient) Patient {
	return Patient{
		Name:       patient.Profile.Name,
		Age:        patient.Profile.Age,
		Sex:        patient.Profile.Sex,
		Ethnicity:  patient.Profile.Ethnicity,
		Residence:  patient.Profile.Residence,
		Birthplace: patient.Profile.Birthplace,
		Occupation: patient.Profile.Occupation,
		Notes:      patient.Profile.Notes,
	}
}

func NewBMIReadingDto(reading patients.BMIReading) BMIReading {
	return BMIReading{
		Weight:   reading.Weight,
		Height:   reading.Height,
		Bmi:      reading.BMI,
		Category: string(reading.Category),
		Time:     reading.Time,
	}
}

func NewPressureReadingDto(reading patients.PressureReading) PressureReading {
	return PressureReading{
		Systolic:  reading.Systolic,
		Diastolic: reading.Diastolic,
		Category:  string(reading.Category),
		Comment:   reading.Comment,
		Time:      reading.Time,
	}
}

func NewGlucoseReadingDto(reading patients.GlucoseReading) GlucoseReading {
	return GlucoseReading{
		Glucose:  reading.Glucose,
		Category: string(reading.Category),
		Comment:  reading.Comment,
		Time:     reading.Time,
	}
}

func NewHistoryDto(patient *patients.Patient) History {
	dto := History{
		Patient:  NewPatientDto(patient),
		Bmi:      make([]BMIReading, 0, len(patient.BMIHistory)),
		Pressure: make([]PressureReading, 0, len(patient.PressureHistory)),
		Glucose:  make([]GlucoseReading, 0, len(patient.GlucoseHistory)),
	}
	for _, reading := range patient.BMIHistory {
		dto.Bmi = append(dto.Bmi, NewBMIReadingDto(reading))
	}
	for _, reading := range patient.PressureHistory {
		dto.Pressure = append(dto.Pressure, NewPressureReadingDto(reading))
	}
	for _, reading := range patient.GlucoseHistory {
		dto.Glucose = append(dto.Glucose, NewGlucoseReadingDto(reading))
	}
	return dto
}

func NewHistoriesDto(list []patients.Patient) []History {
	dtos := make([]History, 0, len(list))
	for i := range list {
		dtos = append(dtos, NewHistoryDto(&list[i]))
	}
	return dtos
}
