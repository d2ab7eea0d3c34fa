package test

const ProfessionalPassword = "integration-secret"

const CreateMaria = `{
	"name": "Maria",
	"age": 42,
	"sex": "F",
	"ethnicity": "Parda",
	"residence": "Recife",
	"birthplace": "Olinda",
	"occupation": "Nurse",
	"password": "1234"
}`
