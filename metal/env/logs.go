package env

type LogsEnvironment struct {
	Level      string `validate:"required,min=1"`
	Dir        string `validate:"required,min=1"`
	DateFormat string `validate:"required,min=1"`
}
