package model

import "context"

// Scope identifies the caller of a use case.
type Scope struct {
	UserID string
}

// IsZero reports whether the scope carries no user.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}

type scopeCtxKey struct{}

func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok && !sc.IsZero()
}
