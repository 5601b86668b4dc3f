//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
	"github.com/jmgilman/go/purge"
)

var _ purge.Provider = (*Provider)(nil)

// Option configures the CLI provider.
type Option func(*Provider) error

// Provider implements purge.Provider using the vercel CLI.
type Provider struct {
	wrapper *exec.CommandWrapper
	token   string
	scope   string
}

// New creates a provider using the vercel CLI.
// Inherits authentication from the vercel CLI configuration unless a token
// is given with WithToken.
//
// Example:
//
//	provider, err := cli.New(cli.WithScope("my-team"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Provider, error) {
	executor := exec.New(exec.WithInheritEnv(), exec.WithDisableColors())

	provider := &Provider{
		wrapper: exec.NewWrapper(executor, "vercel"),
	}

	// Apply options (can override the wrapper)
	for _, opt := range opts {
		if err := opt(provider); err != nil {
			return nil, err
		}
	}

	// Verify vercel is installed and authenticated
	result, err := provider.wrapper.Run(provider.args("whoami")...)
	if err != nil {
		return nil, wrapAuthError(err, result)
	}

	return provider, nil
}

// WithExecutor sets the executor used to run the vercel CLI.
func WithExecutor(executor exec.Executor) Option {
	return func(p *Provider) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		p.wrapper = exec.NewWrapper(executor, "vercel")
		return nil
	}
}

// WithToken passes an explicit token to every vercel invocation.
func WithToken(token string) Option {
	return func(p *Provider) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		p.token = token
		return nil
	}
}

// WithScope sets the team scope of every vercel invocation.
func WithScope(scope string) Option {
	return func(p *Provider) error {
		if scope == "" {
			err := errors.New(errors.CodeInvalidInput, "scope cannot be empty")
			return errors.WithContext(err, "field", "scope")
		}
		p.scope = scope
		return nil
	}
}

// InvalidateByTag marks the given tags as stale.
func (p *Provider) InvalidateByTag(ctx context.Context, tags []string) error {
	return p.run(ctx, "invalidate", "--tag", tags, nil, "failed to invalidate tags")
}

// InvalidateBySrcImage marks the given source images as stale.
func (p *Provider) InvalidateBySrcImage(ctx context.Context, srcs []string) error {
	return p.run(ctx, "invalidate", "--srcimg", srcs, nil, "failed to invalidate source images")
}

// DangerouslyDeleteByTag deletes data associated with the given tags.
func (p *Provider) DangerouslyDeleteByTag(ctx context.Context, tags []string, opts *purge.DeleteOptions) error {
	return p.run(ctx, "dangerously-delete", "--tag", tags, opts, "failed to delete tags")
}

// DangerouslyDeleteBySrcImage deletes data associated with the given source
// images.
func (p *Provider) DangerouslyDeleteBySrcImage(ctx context.Context, srcs []string, opts *purge.DeleteOptions) error {
	return p.run(ctx, "dangerously-delete", "--srcimg", srcs, opts, "failed to delete source images")
}

// run executes `vercel cache <subcommand> <flag> a,b,c`.
func (p *Provider) run(ctx context.Context, subcommand, flag string, ids []string, opts *purge.DeleteOptions, message string) error {
	value, err := joinIdentifiers(flag, ids)
	if err != nil {
		return err
	}

	args := []string{"cache", subcommand, flag, value}
	if opts != nil {
		if opts.RevalidationDeadlineSeconds < 0 {
			err := errors.New(errors.CodeInvalidInput, "revalidation deadline cannot be negative")
			return errors.WithContext(err, "revalidation_deadline_seconds", opts.RevalidationDeadlineSeconds)
		}
		args = append(args, "--revalidation-deadline-seconds", strconv.Itoa(opts.RevalidationDeadlineSeconds))
	}
	args = append(args, "--yes")

	result, err := p.wrapper.Clone().WithContext(ctx).Run(p.args(args...)...)
	if err != nil {
		return wrapCLIError(err, result, message)
	}

	return nil
}

// args appends the global flags to a vercel invocation.
func (p *Provider) args(args ...string) []string {
	if p.token != "" {
		args = append(args, "--token", p.token)
	}
	if p.scope != "" {
		args = append(args, "--scope", p.scope)
	}
	return args
}

// joinIdentifiers renders identifiers as the comma separated flag value the
// vercel CLI expects.
func joinIdentifiers(flag string, ids []string) (string, error) {
	if len(ids) == 0 {
		err := errors.New(errors.CodeInvalidInput, "at least one identifier is required")
		return "", errors.WithContext(err, "flag", flag)
	}

	for _, id := range ids {
		if id == "" || strings.Contains(id, ",") {
			err := errors.New(errors.CodeInvalidInput, "identifier cannot be empty or contain commas")
			err = errors.WithContext(err, "flag", flag)
			return "", errors.WithContext(err, "identifier", id)
		}
	}

	return strings.Join(ids, ","), nil
}
