// Package edge provides a purge provider that runs inside a Fastly Compute
// service and purges surrogate keys through the Compute host.
//
// Tags map directly to surrogate keys. Source images map to surrogate keys
// carrying a prefix (DefaultSrcImagePrefix unless configured otherwise), so
// image responses must be tagged with the same prefix when they are cached.
//
// Invalidation is a soft purge: objects are marked stale and served stale
// according to their stale-while-revalidate window. Deletion is a hard purge.
// The edge has no per-purge grace window, so deletes with a positive
// revalidation deadline are rejected with CodeNotImplemented.
package edge

import (
	"context"

	fastlypurge "github.com/fastly/compute-sdk-go/purge"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/purge"
)

// DefaultSrcImagePrefix is prepended to source images to form surrogate keys.
const DefaultSrcImagePrefix = "srcimg:"

var _ purge.Provider = (*Provider)(nil)

// purgeFunc purges one surrogate key.
type purgeFunc func(surrogateKey string, opts fastlypurge.PurgeOptions) error

// Provider implements purge.Provider with Fastly surrogate key purges.
type Provider struct {
	purge          purgeFunc
	srcImagePrefix string
}

// Option configures the edge provider.
type Option func(*Provider) error

// New creates an edge provider.
//
// Example:
//
//	provider, err := edge.New(edge.WithSrcImagePrefix("img:"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Provider, error) {
	p := &Provider{
		purge:          fastlypurge.PurgeSurrogateKey,
		srcImagePrefix: DefaultSrcImagePrefix,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// WithSrcImagePrefix sets the prefix that turns a source image into a
// surrogate key. An empty prefix uses the source image as is.
func WithSrcImagePrefix(prefix string) Option {
	return func(p *Provider) error {
		p.srcImagePrefix = prefix
		return nil
	}
}

// InvalidateByTag soft purges every tag.
func (p *Provider) InvalidateByTag(ctx context.Context, tags []string) error {
	return p.purgeKeys(ctx, "", tags, true)
}

// InvalidateBySrcImage soft purges every source image.
func (p *Provider) InvalidateBySrcImage(ctx context.Context, srcs []string) error {
	return p.purgeKeys(ctx, p.srcImagePrefix, srcs, true)
}

// DangerouslyDeleteByTag hard purges every tag.
func (p *Provider) DangerouslyDeleteByTag(ctx context.Context, tags []string, opts *purge.DeleteOptions) error {
	if err := checkDeadline(opts); err != nil {
		return err
	}
	return p.purgeKeys(ctx, "", tags, false)
}

// DangerouslyDeleteBySrcImage hard purges every source image.
func (p *Provider) DangerouslyDeleteBySrcImage(ctx context.Context, srcs []string, opts *purge.DeleteOptions) error {
	if err := checkDeadline(opts); err != nil {
		return err
	}
	return p.purgeKeys(ctx, p.srcImagePrefix, srcs, false)
}

func checkDeadline(opts *purge.DeleteOptions) error {
	if opts == nil || opts.RevalidationDeadlineSeconds == 0 {
		return nil
	}
	if opts.RevalidationDeadlineSeconds < 0 {
		err := errors.New(errors.CodeInvalidInput, "revalidation deadline cannot be negative")
		return errors.WithContext(err, "revalidation_deadline_seconds", opts.RevalidationDeadlineSeconds)
	}
	err := errors.New(errors.CodeNotImplemented, "revalidation deadline is not supported by edge purges")
	return errors.WithContext(err, "revalidation_deadline_seconds", opts.RevalidationDeadlineSeconds)
}

// purgeKeys purges keys in order and stops at the first failure.
func (p *Provider) purgeKeys(ctx context.Context, prefix string, ids []string, soft bool) error {
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			code := errors.CodeExecutionFailed
			if errors.Is(err, context.DeadlineExceeded) {
				code = errors.CodeTimeout
			}
			return errors.Wrap(err, code, "purge canceled")
		}

		key := prefix + id
		if err := p.purge(key, fastlypurge.PurgeOptions{Soft: soft}); err != nil {
			wrapped := errors.Wrap(err, errors.CodeExecutionFailed, "failed to purge surrogate key")
			wrapped = errors.WithContext(wrapped, "surrogate_key", key)
			return errors.WithContext(wrapped, "soft", soft)
		}
	}
	return nil
}
