package portal

const DatesLayout = "2006-01-02 15:04:05"

const RequestIDHeader = "X-Request-ID"

type contextKey string

const RequestIDKey contextKey = "request.id"
const AuthAccountNameKey contextKey = "auth.account"
