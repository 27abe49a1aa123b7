package env

// EdgeEnvironment points at the hosted serverless-function gateway.
// Functions are invoked as POST {Endpoint}/{name}.
type EdgeEnvironment struct {
	Endpoint string `validate:"required,url"`
	APIKey   string `validate:"required,min=16"`
}
