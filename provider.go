package purge

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/provider.go -pkg mocks . Provider

// Provider defines the interface for a purge backend.
// Implementations include the REST provider (providers/api), the vercel CLI
// provider (providers/cli) and the Fastly edge provider (providers/edge).
//
// Identifiers are passed as slices; a single tag or source image is a
// one-element slice. Implementations own all validation of identifiers and
// options. The facade never inspects them.
//
// Every method blocks until the backend reports completion. A nil error means
// the backend accepted the operation; it does not mean a revalidation
// triggered by an invalidation has finished.
type Provider interface {
	// InvalidateByTag marks the given tags as stale. On the next access the
	// stale data is served and a background revalidation is triggered.
	InvalidateByTag(ctx context.Context, tags []string) error

	// InvalidateBySrcImage marks the given source images as stale.
	InvalidateBySrcImage(ctx context.Context, srcs []string) error

	// DangerouslyDeleteByTag deletes data associated with the given tags once
	// the revalidation deadline in opts elapses. A nil opts means the backend
	// default, which is a deadline of zero (immediate deletion).
	DangerouslyDeleteByTag(ctx context.Context, tags []string, opts *DeleteOptions) error

	// DangerouslyDeleteBySrcImage deletes data associated with the given
	// source images. See DangerouslyDeleteByTag for the meaning of opts.
	DangerouslyDeleteBySrcImage(ctx context.Context, srcs []string, opts *DeleteOptions) error
}

// DeleteOptions control the deletion strategy of the DangerouslyDelete
// operations.
type DeleteOptions struct {
	// RevalidationDeadlineSeconds is how long stale data may still be served
	// while new data is revalidated in the background. Zero deletes the data
	// immediately.
	RevalidationDeadlineSeconds int
}
