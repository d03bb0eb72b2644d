package middleware

// ContextKey is a private key type so request-scoped values cannot collide
// with other packages.
type ContextKey string

// UserIDCtxKey holds the authenticated user's ID once JWTAuth has run.
const UserIDCtxKey = ContextKey("user_id")
