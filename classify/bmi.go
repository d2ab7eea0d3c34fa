package classify

import "math"

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObesityI    BMICategory = "Obesity I"
	BMIObesityII   BMICategory = "Obesity II"
	BMIObesityIII  BMICategory = "Obesity III"
)

// Upper bounds are exclusive, anything above the last band is BMIObesityIII.
var bmiBands = []struct {
	upper    float64
	category BMICategory
}{
	{18.5, BMIUnderweight},
	{25, BMINormal},
	{30, BMIOverweight},
	{35, BMIObesityI},
	{40, BMIObesityII},
}

var bmiPortuguese = map[BMICategory]string{
	BMIUnderweight: "Magreza",
	BMINormal:      "Eutrófico",
	BMIOverweight:  "Sobrepeso",
	BMIObesityI:    "Obesidade Grau I",
	BMIObesityII:   "Obesidade Grau II",
	BMIObesityIII:  "Obesidade Grau III",
}

func BMICategories() []BMICategory {
	return []BMICategory{BMIUnderweight, BMINormal, BMIOverweight, BMIObesityI, BMIObesityII, BMIObesityIII}
}

// BMI computes weight(kg) / height(m)² and its category.
func BMI(weight, height float64) (float64, BMICategory, error) {
	if !(weight > 0) || !(height > 0) || math.IsInf(weight, 1) || math.IsInf(height, 1) {
		return 0, "", ErrInvalidMeasurement
	}

	bmi := weight / (height * height)
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return 0, "", ErrInvalidMeasurement
	}
	return bmi, BMICategoryOf(bmi), nil
}

func BMICategoryOf(bmi float64) BMICategory {
	for _, band := range bmiBands {
		if bmi < band.upper {
			return band.category
		}
	}
	return BMIObesityIII
}

func (c BMICategory) Metric() string {
	return "bmi"
}

func (c BMICategory) Portuguese() string {
	return bmiPortuguese[c]
}

func (c *BMICategory) UnmarshalText(text []byte) error {
	*c = normalize(string(text), BMICategories())
	return nil
}
