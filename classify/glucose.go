package classify

type GlucoseCategory string

const (
	GlucoseNormal   GlucoseCategory = "Normal"
	GlucoseImpaired GlucoseCategory = "Impaired"
	GlucoseDiabetes GlucoseCategory = "Diabetes"
)

var glucosePortuguese = map[GlucoseCategory]string{
	GlucoseNormal:   "Normal",
	GlucoseImpaired: "Alterada",
	GlucoseDiabetes: "Diabetes",
}

func GlucoseCategories() []GlucoseCategory {
	return []GlucoseCategory{GlucoseNormal, GlucoseImpaired, GlucoseDiabetes}
}

// Glucose classifies a blood glucose value in mg/dL.
func Glucose(value float64) GlucoseCategory {
	switch {
	case value < 100:
		return GlucoseNormal
	case value < 126:
		return GlucoseImpaired
	default:
		return GlucoseDiabetes
	}
}

func (c GlucoseCategory) Metric() string {
	return "glucose"
}

func (c GlucoseCategory) Portuguese() string {
	return glucosePortuguese[c]
}

func (c *GlucoseCategory) UnmarshalText(text []byte) error {
	*c = normalize(string(text), GlucoseCategories())
	return nil
}
