// Package session implements the interactive menus used from a terminal.
package session

import (
	"context"
	stdErrors "errors"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/tidepool-org/vitals/auth"
	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/history"
	"github.com/tidepool-org/vitals/locale"
	"github.com/tidepool-org/vitals/patients"
)

type Session struct {
	terminal      *Terminal
	printer       *message.Printer
	renderer      *history.Renderer
	patients      patients.Service
	patientAuth   auth.PatientAuthenticator
	professionals auth.ProfessionalAuthenticator
	logger        *zap.SugaredLogger
}

type Params struct {
	fx.In

	Terminal      *Terminal
	Printer       *message.Printer
	Renderer      *history.Renderer
	Patients      patients.Service
	PatientAuth   auth.PatientAuthenticator
	Professionals auth.ProfessionalAuthenticator
	Logger        *zap.SugaredLogger
}

func NewSession(p Params) *Session {
	return &Session{
		terminal:      p.Terminal,
		printer:       p.Printer,
		renderer:      p.Renderer,
		patients:      p.Patients,
		patientAuth:   p.PatientAuth,
		professionals: p.Professionals,
		logger:        p.Logger,
	}
}

// Run shows the main menu until the user exits or the input ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.say(locale.MainMenu)
		choice, err := s.terminal.Prompt(s.printer.Sprintf(locale.Choice))
		if err != nil {
			return endOfInput(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.createPatient(ctx)
		case "2":
			err = s.patientLogin(ctx)
		case "3":
			err = s.professionalLogin(ctx)
		case "0":
			s.say(locale.Goodbye)
			return nil
		default:
			s.say(locale.InvalidChoice)
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Session) createPatient(ctx context.Context) error {
	s.say(locale.CreateTitle)

	var profile patients.Profile
	var err error
	if profile.Name, err = s.prompt(locale.PromptName); err != nil {
		return err
	}
	if profile.Age, err = s.promptInt(locale.PromptAge, 0); err != nil {
		return err
	}
	fields := []struct {
		key   string
		value *string
	}{
		{locale.PromptSex, &profile.Sex},
		{locale.PromptEthnicity, &profile.Ethnicity},
		{locale.PromptResidence, &profile.Residence},
		{locale.PromptBirthplace, &profile.Birthplace},
		{locale.PromptOccupation, &profile.Occupation},
		{locale.PromptNotes, &profile.Notes},
	}
	for _, field := range fields {
		if *field.value, err = s.prompt(field.key); err != nil {
			return err
		}
	}
	password, err := s.terminal.PromptPassword(s.printer.Sprintf(locale.PromptPassword))
	if err != nil {
		return err
	}

	patient, err := s.patients.Create(ctx, profile, password)
	if err != nil {
		s.fail(err)
		return nil
	}

	s.say(locale.PatientCreated, patient.Profile.Name)
	return nil
}

func (s *Session) patientLogin(ctx context.Context) error {
	name, err := s.prompt(locale.PromptName)
	if err != nil {
		return err
	}
	password, err := s.terminal.PromptPassword(s.printer.Sprintf(locale.PromptPassword))
	if err != nil {
		return err
	}

	patient, err := s.patientAuth.Authenticate(ctx, name, password)
	if stdErrors.Is(err, auth.ErrInvalidCredentials) {
		s.say(locale.LoginFailed)
		return nil
	} else if err != nil {
		s.fail(err)
		return nil
	}

	s.say(locale.Welcome, patient.Profile.Name)
	return s.patientMenu(ctx, patient.Index)
}

func (s *Session) patientMenu(ctx context.Context, index int) error {
	for {
		s.say(locale.PatientMenu)
		choice, err := s.terminal.Prompt(s.printer.Sprintf(locale.Choice))
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.recordBMI(ctx, index)
		case "2":
			err = s.recordPressure(ctx, index)
		case "3":
			err = s.recordGlucose(ctx, index)
		case "4":
			err = s.showHistory(ctx, index)
		case "0":
			return nil
		default:
			s.say(locale.InvalidChoice)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) recordBMI(ctx context.Context, index int) error {
	weight, err := s.promptFloat(locale.PromptWeight)
	if err != nil {
		return err
	}
	height, err := s.promptFloat(locale.PromptHeight)
	if err != nil {
		return err
	}

	reading, err := s.patients.RecordBMI(ctx, index, patients.BMIMeasurement{Weight: weight, Height: height})
	if err != nil {
		s.fail(err)
		return nil
	}

	s.say(locale.BMIRecorded, strconv.FormatFloat(reading.BMI, 'f', 2, 64), locale.Label(s.printer, reading.Category))
	return nil
}

func (s *Session) recordPressure(ctx context.Context, index int) error {
	systolic, err := s.promptInt(locale.PromptSystolic, math.MinInt)
	if err != nil {
		return err
	}
	diastolic, err := s.promptInt(locale.PromptDiastolic, math.MinInt)
	if err != nil {
		return err
	}
	comment, err := s.prompt(locale.PromptComment)
	if err != nil {
		return err
	}

	reading, err := s.patients.RecordPressure(ctx, index, patients.PressureMeasurement{
		Systolic:  systolic,
		Diastolic: diastolic,
		Comment:   comment,
	})
	if err != nil {
		s.fail(err)
		return nil
	}

	s.say(locale.PressureRecorded, strconv.Itoa(reading.Systolic), strconv.Itoa(reading.Diastolic), locale.Label(s.printer, reading.Category))
	return nil
}

func (s *Session) recordGlucose(ctx context.Context, index int) error {
	glucose, err := s.promptFloat(locale.PromptGlucose)
	if err != nil {
		return err
	}
	comment, err := s.prompt(locale.PromptComment)
	if err != nil {
		return err
	}

	reading, err := s.patients.RecordGlucose(ctx, index, patients.GlucoseMeasurement{Glucose: glucose, Comment: comment})
	if err != nil {
		s.fail(err)
		return nil
	}

	s.say(locale.GlucoseRecorded, history.Decimal(reading.Glucose), locale.Label(s.printer, reading.Category))
	return nil
}

func (s *Session) showHistory(ctx context.Context, index int) error {
	patient, err := s.patients.Get(ctx, index)
	if err != nil {
		s.fail(err)
		return nil
	}
	return s.renderer.Render(s.terminal.Writer(), *patient)
}

func (s *Session) professionalLogin(ctx context.Context) error {
	password, err := s.terminal.PromptPassword(s.printer.Sprintf(locale.PromptProfPass))
	if err != nil {
		return err
	}

	err = s.professionals.Authenticate(ctx, password)
	if stdErrors.Is(err, auth.ErrInvalidCredentials) {
		s.say(locale.ProfessionalFailed)
		return nil
	} else if err != nil {
		s.fail(err)
		return nil
	}

	s.say(locale.ProfessionalOK)
	list, err := s.patients.List(ctx)
	if err != nil {
		s.fail(err)
		return nil
	}
	if len(list) == 0 {
		s.say(locale.NoPatients)
		return nil
	}
	return s.renderer.RenderAll(s.terminal.Writer(), list)
}

func (s *Session) say(key string, a ...any) {
	s.terminal.Println(s.printer.Sprintf(key, a...))
}

// fail prints validation errors as invalid values and everything else as is.
func (s *Session) fail(err error) {
	if stdErrors.Is(err, errors.BadRequest) {
		s.say(locale.InvalidValues)
		return
	}

	s.logger.Errorw("session operation failed", "error", err)
	s.say(locale.Failure, err.Error())
}

func (s *Session) prompt(key string) (string, error) {
	return s.terminal.Prompt(s.printer.Sprintf(key))
}

// promptInt asks again until the answer is an integer of at least min.
func (s *Session) promptInt(key string, min int) (int, error) {
	for {
		answer, err := s.prompt(key)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && value >= min {
			return value, nil
		}
		s.say(locale.InvalidNumber)
	}
}

// promptFloat accepts a decimal comma as well as a decimal point.
func (s *Session) promptFloat(key string) (float64, error) {
	for {
		answer, err := s.prompt(key)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(answer), ",", "."), 64)
		if err == nil {
			return value, nil
		}
		s.say(locale.InvalidNumber)
	}
}

func endOfInput(err error) error {
	if stdErrors.Is(err, io.EOF) {
		return nil
	}
	return err
}
