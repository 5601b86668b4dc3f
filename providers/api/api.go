// Package api provides a purge provider backed by the remote purge REST API.
//
// Each operation is a single authenticated POST to one of the
// /v1/edge-cache endpoints. The provider does not retry; callers that want
// retries can check errors.IsRetryable on the returned error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/purge"
)

// DefaultBaseURL is the purge API used when no base URL is configured.
const DefaultBaseURL = "https://api.vercel.com"

const (
	endpointInvalidateByTags      = "/v1/edge-cache/invalidate-by-tags"
	endpointInvalidateBySrcImages = "/v1/edge-cache/invalidate-by-src-images"
	endpointDeleteByTags          = "/v1/edge-cache/dangerously-delete-by-tags"
	endpointDeleteBySrcImages     = "/v1/edge-cache/dangerously-delete-by-src-images"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody int64 = 64 << 10

var _ purge.Provider = (*Provider)(nil)

// Provider implements purge.Provider against the purge REST API.
type Provider struct {
	client    *http.Client
	baseURL   *url.URL
	token     string
	projectID string
	teamID    string
}

// config holds configuration for Provider.
type config struct {
	client    *http.Client
	baseURL   string
	token     string
	projectID string
	teamID    string
}

// Option configures the API provider.
type Option func(*config) error

// New creates a provider for the purge REST API.
// A token and a project ID are required.
//
// Example:
//
//	provider, err := api.New(
//	    api.WithToken("..."),
//	    api.WithProjectID("prj_123"),
//	)
//
// Example reading PURGE_API_TOKEN, PURGE_PROJECT_ID and friends:
//
//	provider, err := api.New(api.FromEnv())
func New(opts ...Option) (*Provider, error) {
	cfg := &config{
		baseURL: DefaultBaseURL,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.token == "" {
		err := errors.New(errors.CodeInvalidInput, "token must be provided")
		return nil, errors.WithContext(err, "field", "token")
	}
	if cfg.projectID == "" {
		err := errors.New(errors.CodeInvalidInput, "project ID must be provided")
		return nil, errors.WithContext(err, "field", "project_id")
	}

	base, err := url.Parse(cfg.baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		if err == nil {
			err = errors.New(errors.CodeInvalidInput, "base URL must be absolute")
		}
		wrapped := errors.Wrap(err, errors.CodeInvalidInput, "invalid base URL")
		return nil, errors.WithContext(wrapped, "base_url", cfg.baseURL)
	}

	if cfg.client == nil {
		cfg.client = cleanhttp.DefaultPooledClient()
	}

	return &Provider{
		client:    cfg.client,
		baseURL:   base,
		token:     cfg.token,
		projectID: cfg.projectID,
		teamID:    cfg.teamID,
	}, nil
}

// WithToken sets the bearer token used to authenticate requests.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			err := errors.New(errors.CodeInvalidInput, "base URL cannot be empty")
			return errors.WithContext(err, "field", "base_url")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithProjectID sets the project whose cache is purged.
func WithProjectID(projectID string) Option {
	return func(cfg *config) error {
		if projectID == "" {
			err := errors.New(errors.CodeInvalidInput, "project ID cannot be empty")
			return errors.WithContext(err, "field", "project_id")
		}
		cfg.projectID = projectID
		return nil
	}
}

// WithTeamID sets the team owning the project.
func WithTeamID(teamID string) Option {
	return func(cfg *config) error {
		cfg.teamID = teamID
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
// This allows full control over timeouts, proxies and transport settings.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "HTTP client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// envConfig is the environment form of the provider configuration.
type envConfig struct {
	Token     string `env:"PURGE_API_TOKEN"`
	BaseURL   string `env:"PURGE_API_URL"`
	ProjectID string `env:"PURGE_PROJECT_ID"`
	TeamID    string `env:"PURGE_TEAM_ID"`
}

// FromEnv loads configuration from the PURGE_API_TOKEN, PURGE_API_URL,
// PURGE_PROJECT_ID and PURGE_TEAM_ID environment variables. Unset variables
// leave the current value untouched, so later options still take precedence.
func FromEnv() Option {
	return func(cfg *config) error {
		var ec envConfig
		if err := env.Parse(&ec); err != nil {
			return errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse environment")
		}

		if ec.Token != "" {
			cfg.token = ec.Token
		}
		if ec.BaseURL != "" {
			cfg.baseURL = ec.BaseURL
		}
		if ec.ProjectID != "" {
			cfg.projectID = ec.ProjectID
		}
		if ec.TeamID != "" {
			cfg.teamID = ec.TeamID
		}
		return nil
	}
}

// request is the JSON body shared by all purge endpoints.
type request struct {
	Tags                        []string `json:"tags,omitempty"`
	SrcImages                   []string `json:"srcImages,omitempty"`
	RevalidationDeadlineSeconds *int     `json:"revalidationDeadlineSeconds,omitempty"`
}

func deadline(opts *purge.DeleteOptions) *int {
	if opts == nil {
		return nil
	}
	seconds := opts.RevalidationDeadlineSeconds
	return &seconds
}

// InvalidateByTag marks the given tags as stale.
func (p *Provider) InvalidateByTag(ctx context.Context, tags []string) error {
	return p.post(ctx, endpointInvalidateByTags, request{Tags: tags})
}

// InvalidateBySrcImage marks the given source images as stale.
func (p *Provider) InvalidateBySrcImage(ctx context.Context, srcs []string) error {
	return p.post(ctx, endpointInvalidateBySrcImages, request{SrcImages: srcs})
}

// DangerouslyDeleteByTag deletes data associated with the given tags.
// revalidationDeadlineSeconds is only sent when opts is non-nil.
func (p *Provider) DangerouslyDeleteByTag(ctx context.Context, tags []string, opts *purge.DeleteOptions) error {
	return p.post(ctx, endpointDeleteByTags, request{
		Tags:                        tags,
		RevalidationDeadlineSeconds: deadline(opts),
	})
}

// DangerouslyDeleteBySrcImage deletes data associated with the given source
// images.
func (p *Provider) DangerouslyDeleteBySrcImage(ctx context.Context, srcs []string, opts *purge.DeleteOptions) error {
	return p.post(ctx, endpointDeleteBySrcImages, request{
		SrcImages:                   srcs,
		RevalidationDeadlineSeconds: deadline(opts),
	})
}

func (p *Provider) post(ctx context.Context, endpoint string, body request) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidInput, "failed to marshal request")
	}

	u := *p.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + endpoint
	q := u.Query()
	q.Set("projectIdOrName", p.projectID)
	if p.teamID != "" {
		q.Set("teamId", p.teamID)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return wrapTransportError(err, endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return wrapHTTPError(resp.StatusCode, respBody, endpoint)
}
