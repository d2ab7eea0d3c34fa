package api

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/tidepool-org/vitals/auth"
	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/history"
	"github.com/tidepool-org/vitals/patients"
)

const (
	ExportFilename    = "patients.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var _ ServerInterface = &Handler{}

type Handler struct {
	patients patients.Service
	renderer *history.Renderer
}

type Params struct {
	fx.In

	Patients patients.Service
	Renderer *history.Renderer
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients: p.Patients,
		renderer: p.Renderer,
	}
}

// CreatePatient
// (POST /v1/patients)
func (h *Handler) CreatePatient(ec echo.Context) error {
	dto := CreatePatientJSONRequestBody{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	patient, err := h.patients.Create(ec.Request().Context(), NewProfile(dto), dto.Password)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusCreated, NewPatientDto(patient))
}

// GetMyHistory returns the readings of the authenticated patient. The history
// is rendered as text when the format query parameter is "text".
// (GET /v1/patients/me/history)
func (h *Handler) GetMyHistory(ec echo.Context, params GetMyHistoryParams) error {
	index, err := authenticatedPatient(ec)
	if err != nil {
		return err
	}

	patient, err := h.patients.Get(ec.Request().Context(), index)
	if err != nil {
		return err
	}

	if params.Format != nil && *params.Format == GetMyHistoryParamsFormatText {
		return ec.String(http.StatusOK, h.renderer.Text(*patient))
	}
	return ec.JSON(http.StatusOK, NewHistoryDto(patient))
}

// RecordBMI
// (POST /v1/patients/me/bmi)
func (h *Handler) RecordBMI(ec echo.Context) error {
	index, err := authenticatedPatient(ec)
	if err != nil {
		return err
	}

	dto := RecordBMIJSONRequestBody{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	reading, err := h.patients.RecordBMI(ec.Request().Context(), index, patients.BMIMeasurement{
		Weight: dto.Weight,
		Height: dto.Height,
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusCreated, NewBMIReadingDto(*reading))
}

// RecordPressure
// (POST /v1/patients/me/pressure)
func (h *Handler) RecordPressure(ec echo.Context) error {
	index, err := authenticatedPatient(ec)
	if err != nil {
		return err
	}

	dto := RecordPressureJSONRequestBody{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	reading, err := h.patients.RecordPressure(ec.Request().Context(), index, patients.PressureMeasurement{
		Systolic:  dto.Systolic,
		Diastolic: dto.Diastolic,
		Comment:   dto.Comment,
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusCreated, NewPressureReadingDto(*reading))
}

// RecordGlucose
// (POST /v1/patients/me/glucose)
func (h *Handler) RecordGlucose(ec echo.Context) error {
	index, err := authenticatedPatient(ec)
	if err != nil {
		return err
	}

	dto := RecordGlucoseJSONRequestBody{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	reading, err := h.patients.RecordGlucose(ec.Request().Context(), index, patients.GlucoseMeasurement{
		Glucose: dto.Glucose,
		Comment: dto.Comment,
	})
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusCreated, NewGlucoseReadingDto(*reading))
}

// ListPatients returns the history of every patient in store order.
// (GET /v1/professional/patients)
func (h *Handler) ListPatients(ec echo.Context) error {
	list, err := h.patients.List(ec.Request().Context())
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewHistoriesDto(list))
}

// ExportPatients
// (GET /v1/professional/patients/export)
func (h *Handler) ExportPatients(ec echo.Context) error {
	list, err := h.patients.List(ec.Request().Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := history.NewExport(list).Write(&buf); err != nil {
		return err
	}

	ec.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+ExportFilename+`"`)
	return ec.Blob(http.StatusOK, ExportContentType, buf.Bytes())
}

func authenticatedPatient(ec echo.Context) (int, error) {
	authData := auth.GetAuthData(ec.Request().Context())
	if authData == nil || authData.Patient == nil {
		return 0, errors.Unauthorized
	}
	return authData.Patient.Index, nil
}
