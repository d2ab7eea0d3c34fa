package test

import (
	"time"

	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"

	"github.com/tidepool-org/vitals/classify"
	"github.com/tidepool-org/vitals/patients"
	"github.com/tidepool-org/vitals/test"
)

func RandomProfile() patients.Profile {
	return patients.Profile{
		Name:       test.Faker.Person().Name(),
		Age:        test.Faker.IntBetween(0, 99),
		Sex:        test.Faker.RandomStringElement([]string{"F", "M"}),
		Ethnicity:  test.Faker.RandomStringElement([]string{"Parda", "Branca", "Preta", "Amarela", "Indígena"}),
		Residence:  test.Faker.Address().City(),
		Birthplace: test.Faker.Address().City(),
		Occupation: test.Faker.Company().JobTitle(),
		Notes:      test.Faker.Lorem().Sentence(6),
	}
}

func RandomPatient() patients.Patient {
	patient := patients.New(RandomProfile(), test.Faker.Internet().Password())
	for i := test.Faker.IntBetween(0, 3); i > 0; i-- {
		patient.BMIHistory = append(patient.BMIHistory, RandomBMIReading())
	}
	for i := test.Faker.IntBetween(0, 3); i > 0; i-- {
		patient.PressureHistory = append(patient.PressureHistory, RandomPressureReading())
	}
	for i := test.Faker.IntBetween(0, 3); i > 0; i-- {
		patient.GlucoseHistory = append(patient.GlucoseHistory, RandomGlucoseReading())
	}
	return patient
}

func RandomBMIReading() patients.BMIReading {
	weight := float64(test.Faker.IntBetween(4000, 15000)) / 100
	height := float64(test.Faker.IntBetween(140, 210)) / 100
	bmi, category, _ := classify.BMI(weight, height)
	return patients.BMIReading{
		Weight:   weight,
		Height:   height,
		BMI:      bmi,
		Category: category,
		Time:     RandomTime(),
	}
}

func RandomPressureReading() patients.PressureReading {
	systolic := test.Faker.IntBetween(90, 200)
	diastolic := test.Faker.IntBetween(50, 130)
	return patients.PressureReading{
		Systolic:  systolic,
		Diastolic: diastolic,
		Category:  classify.Pressure(systolic, diastolic),
		Comment:   test.Faker.Lorem().Sentence(3),
		Time:      RandomTime(),
	}
}

func RandomGlucoseReading() patients.GlucoseReading {
	glucose := float64(test.Faker.IntBetween(6000, 30000)) / 100
	return patients.GlucoseReading{
		Glucose:  glucose,
		Category: classify.Glucose(glucose),
		Comment:  test.Faker.Lorem().Sentence(3),
		Time:     RandomTime(),
	}
}

func RandomTime() string {
	return test.Faker.Time().TimeBetween(time.Now().AddDate(-1, 0, 0), time.Now()).Format(patients.TimeLayout)
}

// PatientFieldsMatcher matches every persisted field of the patient and
// ignores its position in the store.
func PatientFieldsMatcher(patient patients.Patient) types.GomegaMatcher {
	return MatchAllFields(Fields{
		"Index":           Ignore(),
		"Profile":         Equal(patient.Profile),
		"Password":        Equal(patient.Password),
		"BMIHistory":      Equal(patient.BMIHistory),
		"PressureHistory": Equal(patient.PressureHistory),
		"GlucoseHistory":  Equal(patient.GlucoseHistory),
	})
}
