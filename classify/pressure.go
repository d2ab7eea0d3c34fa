package classify

type PressureCategory string

const (
	PressureNormal   PressureCategory = "Normal"
	PressureElevated PressureCategory = "Elevated"
	PressureStageI   PressureCategory = "Hypertension Stage I"
	PressureStageII  PressureCategory = "Hypertension Stage II"
	PressureCrisis   PressureCategory = "Hypertensive Crisis"
)

var pressurePortuguese = map[PressureCategory]string{
	PressureNormal:   "Pressão normal",
	PressureElevated: "Elevada",
	PressureStageI:   "Hipertensão Grau I",
	PressureStageII:  "Hipertensão Grau II",
	PressureCrisis:   "Hipertensão Grave",
}

func PressureCategories() []PressureCategory {
	return []PressureCategory{PressureNormal, PressureElevated, PressureStageI, PressureStageII, PressureCrisis}
}

// Pressure classifies a systolic/diastolic pair (mmHg). The rules are
// evaluated in order and the first match wins, so the stage I and II rules
// take precedence over a diastolic value that alone would be normal.
func Pressure(systolic, diastolic int) PressureCategory {
	switch {
	case systolic < 120 && diastolic < 80:
		return PressureNormal
	case systolic >= 120 && systolic < 130 && diastolic < 80:
		return PressureElevated
	case (systolic >= 130 && systolic < 140) || (diastolic >= 80 && diastolic < 90):
		return PressureStageI
	case (systolic >= 140 && systolic < 180) || (diastolic >= 90 && diastolic < 120):
		return PressureStageII
	default:
		return PressureCrisis
	}
}

func (c PressureCategory) Metric() string {
	return "pressure"
}

func (c PressureCategory) Portuguese() string {
	return pressurePortuguese[c]
}

func (c *PressureCategory) UnmarshalText(text []byte) error {
	*c = normalize(string(text), PressureCategories())
	return nil
}
