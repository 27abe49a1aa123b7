package env

import "crypto/subtle"

type PingEnvironment struct {
	Username string `validate:"required,min=4"`
	Password string `validate:"required,min=8"`
}

func (e PingEnvironment) HasInvalidCreds(user, pass string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(user), []byte(e.Username)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(pass), []byte(e.Password)) == 1

	return !userOk || !passOk
}
