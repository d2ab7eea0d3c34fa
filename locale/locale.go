// Package locale holds the message catalog used for everything printed to
// patients and professionals.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/tidepool-org/vitals/classify"
	"github.com/tidepool-org/vitals/config"
)

var (
	English    = language.English
	Portuguese = language.BrazilianPortuguese

	supported = []language.Tag{English, Portuguese}
)

// Message keys. Every key has an English and a Portuguese entry.
const (
	HistoryTitle    = "history.title"
	HistoryBMI      = "history.bmi"
	HistoryPressure = "history.pressure"
	HistoryGlucose  = "history.glucose"
	BMIEntry        = "history.bmi.entry"
	PressureEntry   = "history.pressure.entry"
	GlucoseEntry    = "history.glucose.entry"

	MainMenu         = "menu.main"
	PatientMenu      = "menu.patient"
	Choice           = "menu.choice"
	InvalidChoice    = "menu.invalid"
	Goodbye          = "menu.goodbye"
	CreateTitle      = "create.title"
	PromptName       = "prompt.name"
	PromptAge        = "prompt.age"
	PromptSex        = "prompt.sex"
	PromptEthnicity  = "prompt.ethnicity"
	PromptResidence  = "prompt.residence"
	PromptBirthplace = "prompt.birthplace"
	PromptOccupation = "prompt.occupation"
	PromptNotes      = "prompt.notes"
	PromptPassword   = "prompt.password"
	PromptWeight     = "prompt.weight"
	PromptHeight     = "prompt.height"
	PromptSystolic   = "prompt.systolic"
	PromptDiastolic  = "prompt.diastolic"
	PromptGlucose    = "prompt.glucose"
	PromptComment    = "prompt.comment"
	PromptProfPass   = "prompt.professional.password"
	InvalidNumber    = "prompt.invalid.number"

	PatientCreated     = "patient.created"
	Welcome            = "login.welcome"
	LoginFailed        = "login.failed"
	ProfessionalOK     = "login.professional.ok"
	ProfessionalFailed = "login.professional.failed"
	BMIRecorded        = "record.bmi"
	PressureRecorded   = "record.pressure"
	GlucoseRecorded    = "record.glucose"
	InvalidValues      = "record.invalid"
	Failure            = "failure"
	NoPatients         = "patients.none"
)

var messages = map[string][2]string{
	HistoryTitle:    {"History of %s", "Histórico de %s"},
	HistoryBMI:      {"BMI:", "IMC:"},
	HistoryPressure: {"Pressure:", "Pressão:"},
	HistoryGlucose:  {"Glucose:", "Glicemia:"},
	BMIEntry:        {"%s - %skg, %sm, BMI: %s (%s)", "%s - %skg, %sm, IMC: %s (%s)"},
	PressureEntry:   {"%s - %s/%s mmHg (%s)", "%s - %s/%s mmHg (%s)"},
	GlucoseEntry:    {"%s - %s mg/dL (%s)", "%s - %s mg/dL (%s)"},

	MainMenu: {
		"1) Create Patient\n2) Patient Login\n3) Professional Login\n0) Exit",
		"1) Criar Paciente\n2) Login Paciente\n3) Login Profissional\n0) Sair",
	},
	PatientMenu: {
		"1) Record BMI\n2) Record Pressure\n3) Record Glucose\n4) View History\n0) Logout",
		"1) Registrar IMC\n2) Registrar Pressão\n3) Registrar Glicemia\n4) Ver histórico\n0) Sair",
	},
	Choice:           {"Choose an option: ", "Escolha uma ação: "},
	InvalidChoice:    {"Invalid option.", "Opção inválida."},
	Goodbye:          {"Goodbye!", "Até logo!"},
	CreateTitle:      {"Patient Registration", "Cadastro de Paciente"},
	PromptName:       {"Name: ", "Nome: "},
	PromptAge:        {"Age: ", "Idade: "},
	PromptSex:        {"Sex: ", "Sexo: "},
	PromptEthnicity:  {"Ethnicity: ", "Raça: "},
	PromptResidence:  {"Place of residence: ", "Local de residência: "},
	PromptBirthplace: {"Place of birth: ", "Local de nascimento: "},
	PromptOccupation: {"Occupation: ", "Profissão: "},
	PromptNotes:      {"Other information (optional): ", "Outras informações (opcional): "},
	PromptPassword:   {"Password: ", "Senha: "},
	PromptWeight:     {"Weight (kg): ", "Peso (kg): "},
	PromptHeight:     {"Height (m): ", "Altura (m): "},
	PromptSystolic:   {"Systolic pressure: ", "Pressão sistólica: "},
	PromptDiastolic:  {"Diastolic pressure: ", "Pressão diastólica: "},
	PromptGlucose:    {"Glucose (mg/dL): ", "Glicemia (mg/dL): "},
	PromptComment:    {"Short comment (optional): ", "Comentário breve (opcional): "},
	PromptProfPass:   {"Professional password: ", "Senha do profissional: "},
	InvalidNumber:    {"Please enter a valid number.", "Informe um número válido."},

	PatientCreated:     {"Patient %s created successfully!", "Paciente %s criado com sucesso!"},
	Welcome:            {"Welcome, %s!", "Bem-vindo(a), %s!"},
	LoginFailed:        {"Incorrect name or password.", "Nome ou senha incorretos."},
	ProfessionalOK:     {"Professional login successful!", "Login profissional bem-sucedido!"},
	ProfessionalFailed: {"Incorrect password.", "Senha incorreta."},
	BMIRecorded:        {"BMI recorded: %s (%s)", "IMC registrado: %s (%s)"},
	PressureRecorded:   {"Pressure recorded: %s/%s mmHg (%s)", "Pressão registrada: %s/%s mmHg (%s)"},
	GlucoseRecorded:    {"Glucose recorded: %s mg/dL (%s)", "Glicemia registrada: %s mg/dL (%s)"},
	InvalidValues:      {"Invalid values.", "Valores inválidos."},
	Failure:            {"Error: %s", "Erro: %s"},
	NoPatients:         {"No patients registered.", "Nenhum paciente cadastrado."},
}

// NewCatalog returns the English and Brazilian Portuguese catalog, including
// the category labels of every metric.
func NewCatalog() (catalog.Catalog, error) {
	builder := catalog.NewBuilder(catalog.Fallback(English))
	for key, msg := range messages {
		if err := builder.SetString(English, key, msg[0]); err != nil {
			return nil, err
		}
		if err := builder.SetString(Portuguese, key, msg[1]); err != nil {
			return nil, err
		}
	}

	if err := setLabels(builder, classify.BMICategories()); err != nil {
		return nil, err
	}
	if err := setLabels(builder, classify.PressureCategories()); err != nil {
		return nil, err
	}
	if err := setLabels(builder, classify.GlucoseCategories()); err != nil {
		return nil, err
	}

	return builder, nil
}

func setLabels[C classify.Category](builder *catalog.Builder, categories []C) error {
	for _, c := range categories {
		if err := builder.SetString(English, classify.MessageKey(c), string(c)); err != nil {
			return err
		}
		if err := builder.SetString(Portuguese, classify.MessageKey(c), c.Portuguese()); err != nil {
			return err
		}
	}
	return nil
}

// NewPrinter returns a printer for the configured locale. Locales without a
// translation fall back to English.
func NewPrinter(cfg *config.Config) (*message.Printer, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}

	cat, err := NewCatalog()
	if err != nil {
		return nil, err
	}

	_, index, _ := language.NewMatcher(supported).Match(tag)
	return message.NewPrinter(supported[index], message.Catalog(cat)), nil
}

// Label returns the localised label of a category. Labels that are not part
// of the catalog are printed as stored.
func Label[C classify.Category](printer *message.Printer, c C) string {
	return printer.Sprintf(message.Key(classify.MessageKey(c), escape(string(c))))
}

func escape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' {
			out = append(out, '%')
		}
		out = append(out, r)
	}
	return string(out)
}
