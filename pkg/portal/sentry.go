package portal

import (
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/Samuel-Loga/Personal-Website/metal/env"
)

type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}
