package middleware

import (
	baseHttp "net/http"
	"time"

	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/limiter"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// ThrottleMiddleware caps anonymous write traffic per client IP. Comments,
// replies, reactions and subscriptions all pass through it; reads never do.
type ThrottleMiddleware struct {
	limiter *limiter.MemoryLimiter
}

func MakeThrottleMiddleware(window time.Duration, maxHits int) ThrottleMiddleware {
	return ThrottleMiddleware{
		limiter: limiter.NewMemoryLimiter(window, maxHits),
	}
}

func (t ThrottleMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		key := portal.ParseClientIP(r)

		if t.limiter == nil {
			return next(w, r)
		}

		if t.limiter.TooMany(key) {
			return endpoint.TooManyRequests("Too many requests. Please slow down and try again.")
		}

		t.limiter.Hit(key)

		return next(w, r)
	}
}
