package history_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/message"

	"github.com/tidepool-org/vitals/classify"
	"github.com/tidepool-org/vitals/config"
	"github.com/tidepool-org/vitals/history"
	"github.com/tidepool-org/vitals/locale"
	"github.com/tidepool-org/vitals/patients"
)

func newPrinter(tag string) *message.Printer {
	printer, err := locale.NewPrinter(&config.Config{Locale: tag})
	Expect(err).ToNot(HaveOccurred())
	return printer
}

func samplePatient() patients.Patient {
	patient := patients.New(patients.Profile{Name: "Maria", Age: 42}, "1234")
	patient.BMIHistory = append(patient.BMIHistory, patients.BMIReading{
		Weight:   70,
		Height:   1.75,
		BMI:      70 / (1.75 * 1.75),
		Category: classify.BMINormal,
		Time:     "07/03/2025 09:05",
	})
	patient.PressureHistory = append(patient.PressureHistory,
		patients.PressureReading{
			Systolic:  120,
			Diastolic: 80,
			Category:  classify.PressureStageI,
			Time:      "07/03/2025 09:06",
		},
		patients.PressureReading{
			Systolic:  118,
			Diastolic: 76,
			Category:  classify.PressureNormal,
			Comment:   "after walk",
			Time:      "08/03/2025 10:00",
		},
	)
	patient.GlucoseHistory = append(patient.GlucoseHistory, patients.GlucoseReading{
		Glucose:  99.5,
		Category: classify.GlucoseNormal,
		Comment:  "fasting",
		Time:     "07/03/2025 09:07",
	})
	return patient
}

var _ = Describe("Renderer", func() {
	It("renders every reading in recorded order", func() {
		renderer := history.NewRenderer(newPrinter("en"))

		Expect(renderer.Text(samplePatient())).To(Equal(`History of Maria
BMI:
07/03/2025 09:05 - 70kg, 1.75m, BMI: 22.86 (Normal)
Pressure:
07/03/2025 09:06 - 120/80 mmHg (Hypertension Stage I)
08/03/2025 10:00 - 118/76 mmHg (Normal) | after walk
Glucose:
07/03/2025 09:07 - 99.5 mg/dL (Normal) | fasting
`))
	})

	It("renders headings and labels in portuguese", func() {
		renderer := history.NewRenderer(newPrinter("pt-BR"))

		Expect(renderer.Text(samplePatient())).To(Equal(`Histórico de Maria
IMC:
07/03/2025 09:05 - 70kg, 1.75m, IMC: 22.86 (Eutrófico)
Pressão:
07/03/2025 09:06 - 120/80 mmHg (Hipertensão Grau I)
08/03/2025 10:00 - 118/76 mmHg (Pressão normal) | after walk
Glicemia:
07/03/2025 09:07 - 99.5 mg/dL (Normal) | fasting
`))
	})

	It("renders only the headings for a patient without readings", func() {
		renderer := history.NewRenderer(newPrinter("en"))
		patient := patients.New(patients.Profile{Name: "Ana"}, "x")

		Expect(renderer.Text(patient)).To(Equal("History of Ana\nBMI:\nPressure:\nGlucose:\n"))
	})

	It("separates patients with a blank line", func() {
		renderer := history.NewRenderer(newPrinter("en"))
		list := []patients.Patient{
			patients.New(patients.Profile{Name: "Ana"}, "x"),
			patients.New(patients.Profile{Name: "Bia"}, "y"),
		}

		var b strings.Builder
		Expect(renderer.RenderAll(&b, list)).To(Succeed())
		Expect(b.String()).To(Equal("History of Ana\nBMI:\nPressure:\nGlucose:\n\nHistory of Bia\nBMI:\nPressure:\nGlucose:\n"))
	})
})
