package endpoint

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"

	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// ScopeApiError enriches a Sentry scope with request metadata and the full
// unwrap chain of the captured error.
type ScopeApiError struct {
	scope   *sentry.Scope
	request *http.Request
	apiErr  *ApiError
}

func NewScopeApiError(scope *sentry.Scope, r *http.Request, apiErr *ApiError) *ScopeApiError {
	return &ScopeApiError{
		scope:   scope,
		request: r,
		apiErr:  apiErr,
	}
}

func (s *ScopeApiError) Enrich() {
	if s == nil || s.scope == nil {
		return
	}

	if s.request != nil {
		s.scope.SetTag("http.method", s.request.Method)
		s.scope.SetTag("http.path", s.request.URL.Path)

		if id := s.RequestID(); id != "" {
			s.scope.SetTag("request.id", id)
		}

		if account := s.accountName(); account != "" {
			s.scope.SetUser(sentry.User{Username: account})
		}
	}

	if s.apiErr == nil {
		return
	}

	s.scope.SetTag("http.status_code", strconv.Itoa(s.apiErr.Status))

	if chain := s.buildErrorChain(s.apiErr.Err); len(chain) > 0 {
		s.scope.SetContext("error_chain", map[string]any{"errors": chain})
	}
}

func (s *ScopeApiError) RequestID() string {
	if s.request == nil {
		return ""
	}

	if id, ok := s.request.Context().Value(portal.RequestIDKey).(string); ok && id != "" {
		return id
	}

	return s.request.Header.Get(portal.RequestIDHeader)
}

func (s *ScopeApiError) accountName() string {
	if s.request == nil {
		return ""
	}

	if account, ok := s.request.Context().Value(portal.AuthAccountNameKey).(string); ok && account != "" {
		return account
	}

	return ""
}

func (s *ScopeApiError) buildErrorChain(err error) []string {
	var chain []string

	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}

	return chain
}
