package purge

import (
	"context"
	"reflect"
)

type providerKey struct{}

// Resolver returns the Provider configured for the given context, or nil if
// no purge backend is configured. Resolvers must be safe for concurrent use.
type Resolver func(ctx context.Context) Provider

// NewContext returns a copy of parent carrying the given Provider. Passing a
// nil Provider explicitly disables purging for the returned context.
func NewContext(parent context.Context, p Provider) context.Context {
	return context.WithValue(parent, providerKey{}, p)
}

// FromContext returns the Provider stored in ctx by NewContext.
// It returns nil if ctx is nil or carries no Provider. A typed nil pointer
// (e.g. from a failed constructor) counts as no Provider.
func FromContext(ctx context.Context) Provider {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(providerKey{}).(Provider)
	if isNil(p) {
		return nil
	}
	return p
}

// isNil reports whether p is nil or wraps a nil pointer.
func isNil(p Provider) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
