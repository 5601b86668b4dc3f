package purge

import "context"

var defaultClient = &Client{resolve: FromContext}

// InvalidateByTag marks the given tags as stale using the Provider attached
// to ctx. It is a no-op if ctx carries no Provider.
func InvalidateByTag(ctx context.Context, tags []string) error {
	return defaultClient.InvalidateByTag(ctx, tags)
}

// InvalidateBySrcImage marks the given source images as stale using the
// Provider attached to ctx. It is a no-op if ctx carries no Provider.
func InvalidateBySrcImage(ctx context.Context, srcs []string) error {
	return defaultClient.InvalidateBySrcImage(ctx, srcs)
}

// DangerouslyDeleteByTag deletes data associated with the given tags using
// the Provider attached to ctx. It is a no-op if ctx carries no Provider.
func DangerouslyDeleteByTag(ctx context.Context, tags []string, opts *DeleteOptions) error {
	return defaultClient.DangerouslyDeleteByTag(ctx, tags, opts)
}

// DangerouslyDeleteBySrcImage deletes data associated with the given source
// images using the Provider attached to ctx. It is a no-op if ctx carries no
// Provider.
func DangerouslyDeleteBySrcImage(ctx context.Context, srcs []string, opts *DeleteOptions) error {
	return defaultClient.DangerouslyDeleteBySrcImage(ctx, srcs, opts)
}
