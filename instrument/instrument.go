// Package instrument decorates a purge.Provider with tracing and logging.
//
// Every call produces one span named after the operation and one log entry.
// The wrapped Provider's error is recorded and returned unchanged.
package instrument

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/jmgilman/go/purge"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of spans created by this package.
const TracerName = "github.com/jmgilman/go/purge"

// Span attribute keys.
const (
	AttrIdentifiers = attribute.Key("purge.identifiers")
	AttrCount       = attribute.Key("purge.count")
	AttrDeadline    = attribute.Key("purge.revalidation_deadline_seconds")
)

var _ purge.Provider = (*Provider)(nil)

// Provider wraps another purge.Provider.
type Provider struct {
	next   purge.Provider
	tracer trace.Tracer
	logger log.Interface
}

// Option configures the instrumented provider.
type Option func(*Provider)

// WithTracer sets the tracer. Defaults to the global tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Provider) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// WithLogger sets the logger. Defaults to the apex/log package logger.
func WithLogger(logger log.Interface) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New wraps next. A nil next is returned as nil so the facade keeps treating
// it as "no provider configured".
//
// Example:
//
//	provider, err := api.New(api.FromEnv())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx = purge.NewContext(ctx, instrument.New(provider))
func New(next purge.Provider, opts ...Option) purge.Provider {
	if next == nil {
		return nil
	}

	p := &Provider{
		next:   next,
		tracer: otel.Tracer(TracerName),
		logger: log.Log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// InvalidateByTag traces and forwards to the wrapped provider.
func (p *Provider) InvalidateByTag(ctx context.Context, tags []string) error {
	return p.observe(ctx, "InvalidateByTag", tags, nil, func(ctx context.Context) error {
		return p.next.InvalidateByTag(ctx, tags)
	})
}

// InvalidateBySrcImage traces and forwards to the wrapped provider.
func (p *Provider) InvalidateBySrcImage(ctx context.Context, srcs []string) error {
	return p.observe(ctx, "InvalidateBySrcImage", srcs, nil, func(ctx context.Context) error {
		return p.next.InvalidateBySrcImage(ctx, srcs)
	})
}

// DangerouslyDeleteByTag traces and forwards to the wrapped provider.
func (p *Provider) DangerouslyDeleteByTag(ctx context.Context, tags []string, opts *purge.DeleteOptions) error {
	return p.observe(ctx, "DangerouslyDeleteByTag", tags, opts, func(ctx context.Context) error {
		return p.next.DangerouslyDeleteByTag(ctx, tags, opts)
	})
}

// DangerouslyDeleteBySrcImage traces and forwards to the wrapped provider.
func (p *Provider) DangerouslyDeleteBySrcImage(ctx context.Context, srcs []string, opts *purge.DeleteOptions) error {
	return p.observe(ctx, "DangerouslyDeleteBySrcImage", srcs, opts, func(ctx context.Context) error {
		return p.next.DangerouslyDeleteBySrcImage(ctx, srcs, opts)
	})
}

func (p *Provider) observe(ctx context.Context, op string, ids []string, opts *purge.DeleteOptions, call func(context.Context) error) error {
	attrs := []attribute.KeyValue{
		AttrIdentifiers.StringSlice(ids),
		AttrCount.Int(len(ids)),
	}
	fields := log.Fields{
		"operation":   op,
		"identifiers": ids,
	}
	if opts != nil {
		attrs = append(attrs, AttrDeadline.Int(opts.RevalidationDeadlineSeconds))
		fields["revalidation_deadline_seconds"] = opts.RevalidationDeadlineSeconds
	}

	ctx, span := p.tracer.Start(ctx, "purge."+op, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	err := call(ctx)
	fields["duration"] = time.Since(start)

	entry := p.logger.WithFields(fields)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry.WithError(err).Error("purge failed")
		return err
	}

	entry.Debug("purge completed")
	return nil
}
