package patients

import (
	"context"
	"fmt"

	"github.com/tidepool-org/vitals/classify"
	"github.com/tidepool-org/vitals/errors"
)

// TimeLayout is the layout of the timestamp stored with every reading.
const TimeLayout = "02/01/2006 15:04"

var ErrNotFound = fmt.Errorf("patient %w", errors.NotFound)

//go:generate go tool mockgen -source=./patients.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	Create(ctx context.Context, profile Profile, password string) (*Patient, error)
	Get(ctx context.Context, index int) (*Patient, error)
	List(ctx context.Context) ([]Patient, error)
	RecordBMI(ctx context.Context, index int, measurement BMIMeasurement) (*BMIReading, error)
	RecordPressure(ctx context.Context, index int, measurement PressureMeasurement) (*PressureReading, error)
	RecordGlucose(ctx context.Context, index int, measurement GlucoseMeasurement) (*GlucoseReading, error)
}

// Patient is a single record of the store. Records have no identifier, in
// process they are addressed by their position in store order.
type Patient struct {
	Index           int               `json:"-" bson:"-"`
	Profile         Profile           `json:"perfil" bson:"perfil"`
	Password        string            `json:"senha" bson:"senha"`
	BMIHistory      []BMIReading      `json:"historico_imc" bson:"historico_imc"`
	PressureHistory []PressureReading `json:"historico_pressao" bson:"historico_pressao"`
	GlucoseHistory  []GlucoseReading  `json:"historico_glicemia" bson:"historico_glicemia"`
}

type Profile struct {
	Name       string `json:"nome" bson:"nome"`
	Age        int    `json:"idade" bson:"idade"`
	Sex        string `json:"sexo" bson:"sexo"`
	Ethnicity  string `json:"raca" bson:"raca"`
	Residence  string `json:"residencia" bson:"residencia"`
	Birthplace string `json:"nascimento" bson:"nascimento"`
	Occupation string `json:"profissao" bson:"profissao"`
	Notes      string `json:"outros" bson:"outros"`
}

type BMIReading struct {
	Weight   float64              `json:"peso" bson:"peso"`
	Height   float64              `json:"altura" bson:"altura"`
	BMI      float64              `json:"IMC" bson:"IMC"`
	Category classify.BMICategory `json:"classificacao_imc" bson:"classificacao_imc"`
	Time     string               `json:"data_hora" bson:"data_hora"`
}

type PressureReading struct {
	Systolic  int                       `json:"sistolica" bson:"sistolica"`
	Diastolic int                       `json:"diastolica" bson:"diastolica"`
	Category  classify.PressureCategory `json:"classificacao_pa" bson:"classificacao_pa"`
	Comment   string                    `json:"comentario" bson:"comentario"`
	Time      string                    `json:"data_hora" bson:"data_hora"`
}

type GlucoseReading struct {
	Glucose  float64                  `json:"glicemia" bson:"glicemia"`
	Category classify.GlucoseCategory `json:"classificacao_glicemia" bson:"classificacao_glicemia"`
	Comment  string                   `json:"comentario" bson:"comentario"`
	Time     string                   `json:"data_hora" bson:"data_hora"`
}

type BMIMeasurement struct {
	Weight float64
	Height float64
}

type PressureMeasurement struct {
	Systolic  int
	Diastolic int
	Comment   string
}

type GlucoseMeasurement struct {
	Glucose float64
	Comment string
}

// New returns a patient with all three histories present and empty.
func New(profile Profile, password string) Patient {
	patient := Patient{
		Profile:  profile,
		Password: password,
	}
	patient.EnsureHistories()
	return patient
}

// EnsureHistories replaces missing histories with empty ones, so records read
// from incomplete files still encode every history as an array.
func (p *Patient) EnsureHistories() {
	if p.BMIHistory == nil {
		p.BMIHistory = []BMIReading{}
	}
	if p.PressureHistory == nil {
		p.PressureHistory = []PressureReading{}
	}
	if p.GlucoseHistory == nil {
		p.GlucoseHistory = []GlucoseReading{}
	}
}
