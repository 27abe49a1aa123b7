package env

type SentryEnvironment struct {
	DSN string `validate:"required,min=1"`
	CSP string `validate:"omitempty"`
}
