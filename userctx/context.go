package userctx

import "context"

// Context key type
type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated prosecutor behind a request
type Identity struct {
	FiscalID   int64
	Email      string
	Role       string
	FiscaliaID int64
}

// SetIdentity adds the authenticated prosecutor to the request context
func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity retrieves the authenticated prosecutor from the request context
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// GetUserEmail retrieves the prosecutor's email, or "anonymous" when unauthenticated
func GetUserEmail(ctx context.Context) string {
	id, ok := GetIdentity(ctx)
	if !ok || id.Email == "" {
		return "anonymous"
	}
	return id.Email
}

// GetFiscalID retrieves the prosecutor's ID, or 0 when unauthenticated
func GetFiscalID(ctx context.Context) int64 {
	id, _ := GetIdentity(ctx)
	return id.FiscalID
}
