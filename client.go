package purge

import (
	"context"

	"github.com/jmgilman/go/errors"
)

// Client forwards purge operations to the Provider resolved for each call.
// When no Provider is resolved, every operation succeeds without doing
// anything.
//
// A Client holds no state besides its resolver and is safe for concurrent use.
//
// Example usage:
//
//	provider, err := api.New(api.WithToken("..."), api.WithProjectID("prj_123"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := purge.NewClient(purge.WithProvider(provider))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = client.InvalidateByTag(ctx, []string{"products"})
type Client struct {
	resolve Resolver
}

// Option configures a Client.
type Option func(*Client) error

// NewClient creates a new Client. Without options the Client resolves the
// Provider from the context of each call (see FromContext).
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		resolve: FromContext,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// WithProvider fixes the Provider used by the Client regardless of context.
// A nil Provider, including a typed nil pointer, is allowed and turns every
// operation into a no-op.
func WithProvider(p Provider) Option {
	return func(c *Client) error {
		c.resolve = func(context.Context) Provider { return p }
		return nil
	}
}

// WithResolver sets a custom lookup for the Provider of each call.
func WithResolver(r Resolver) Option {
	return func(c *Client) error {
		if r == nil {
			err := errors.New(errors.CodeInvalidInput, "resolver cannot be nil")
			return errors.WithContext(err, "field", "resolver")
		}
		c.resolve = r
		return nil
	}
}

// Provider returns the Provider resolved for ctx, or nil if there is none.
// A resolved typed nil pointer is reported as nil.
// This is an escape hatch for operations not covered by the Client API.
func (c *Client) Provider(ctx context.Context) Provider {
	p := c.resolve(ctx)
	if isNil(p) {
		return nil
	}
	return p
}

// InvalidateByTag marks the given tags as stale.
// Returns nil without side effects if no Provider is configured.
func (c *Client) InvalidateByTag(ctx context.Context, tags []string) error {
	p := c.Provider(ctx)
	if p == nil {
		return nil
	}
	return p.InvalidateByTag(ctx, tags)
}

// InvalidateBySrcImage marks the given source images as stale.
// Returns nil without side effects if no Provider is configured.
func (c *Client) InvalidateBySrcImage(ctx context.Context, srcs []string) error {
	p := c.Provider(ctx)
	if p == nil {
		return nil
	}
	return p.InvalidateBySrcImage(ctx, srcs)
}

// DangerouslyDeleteByTag deletes data associated with the given tags.
// opts is forwarded as given; nil leaves the deadline to the Provider.
// Returns nil without side effects if no Provider is configured.
func (c *Client) DangerouslyDeleteByTag(ctx context.Context, tags []string, opts *DeleteOptions) error {
	p := c.Provider(ctx)
	if p == nil {
		return nil
	}
	return p.DangerouslyDeleteByTag(ctx, tags, opts)
}

// DangerouslyDeleteBySrcImage deletes data associated with the given source
// images. Returns nil without side effects if no Provider is configured.
func (c *Client) DangerouslyDeleteBySrcImage(ctx context.Context, srcs []string, opts *DeleteOptions) error {
	p := c.Provider(ctx)
	if p == nil {
		return nil
	}
	return p.DangerouslyDeleteBySrcImage(ctx, srcs, opts)
}
