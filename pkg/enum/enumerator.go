package enum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/l0lsec/datadogenumerator/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrKeyValidationFailed indicates the validation probe was rejected and
// no section was enumerated.
var ErrKeyValidationFailed = errors.New("API key validation failed, check your key and try again")

// Enumerator drives the probe catalog against one credential pair,
// strictly sequentially and in catalog order.
type Enumerator struct {
	cfg     config.Config
	prober  *Prober
	catalog []Section
	sink    Sink
	logger  *slog.Logger
	tracer  trace.Tracer

	stats Stats
}

// Option defines a functional configuration override.
type Option func(*Enumerator)

// New initializes an Enumerator.
func New(cfg config.Config, opts ...Option) *Enumerator {
	e := &Enumerator{
		cfg:     cfg,
		prober:  NewProber(cfg),
		catalog: Catalog(),
		sink:    discardSink{},
		logger:  slog.Default(),
		tracer:  otel.Tracer("ddenum/enum"),
	}
	if cfg.Logger != nil {
		e.logger = cfg.Logger
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithSink sets the output sink.
func WithSink(s Sink) Option {
	return func(e *Enumerator) {
		if s != nil {
			e.sink = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Enumerator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHTTPClient sets the HTTP client used by the prober.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Enumerator) {
		if c != nil {
			e.prober.Client = c
		}
	}
}

// WithCatalog replaces the probe catalog.
func WithCatalog(sections []Section) Option {
	return func(e *Enumerator) {
		e.catalog = sections
	}
}

// Run executes the validation gate and then every catalog section in
// order. Individual probe failures never halt the run; only a rejected
// validation probe does.
func (e *Enumerator) Run(ctx context.Context) (Stats, error) {
	ctx, span := e.tracer.Start(ctx, "Enumerator.Run")
	defer span.End()

	// Crash safety.
	defer e.recoverPanic(ctx)

	e.sink.Info(fmt.Sprintf("Using API endpoint: %s", e.prober.BaseURL))
	if e.cfg.AppKey == "" {
		e.sink.Warn("No Application Key provided - some endpoints may be inaccessible")
		e.sink.Warn("API keys can only submit data, Application keys are needed to read data")
	}

	e.logger.Info("Starting enumeration", "region", e.cfg.Region, "sections", len(e.catalog))

	if !e.validate(ctx) {
		span.SetStatus(codes.Error, "key validation failed")
		e.sink.Fatal(ErrKeyValidationFailed)
		return e.stats, ErrKeyValidationFailed
	}

	for _, section := range e.catalog {
		e.runSection(ctx, section)
	}

	e.sink.Complete(e.stats)
	e.logger.Info("Enumeration complete",
		"probes", e.stats.Total(),
		"accessible", e.stats.Accessible,
		"errors", e.stats.Errors,
	)
	span.SetAttributes(
		attribute.Int("enum.probes", e.stats.Total()),
		attribute.Int("enum.accessible", e.stats.Accessible),
	)
	return e.stats, nil
}

func (e *Enumerator) validate(ctx context.Context) bool {
	e.sink.Section("VALIDATING API KEY")
	res := e.runProbe(ctx, ValidateProbe())
	return res.Class == ClassAccessible
}

func (e *Enumerator) runSection(ctx context.Context, s Section) {
	e.sink.Section(s.Title)
	for _, spec := range s.Probes {
		e.runProbe(ctx, spec)
	}
}

func (e *Enumerator) runProbe(ctx context.Context, spec ProbeSpec) Result {
	ctx, span := e.tracer.Start(ctx, spec.ID, trace.WithAttributes(
		attribute.String("http.method", spec.Method),
		attribute.String("http.path", spec.Path),
	))
	defer span.End()

	e.logger.Debug("Starting probe", "probe", spec.ID, "path", spec.Path)
	res := e.prober.Do(ctx, spec)
	e.stats.observe(res.Class)

	span.SetAttributes(
		attribute.String("probe.classification", res.Class.String()),
		attribute.Int("http.status_code", res.StatusCode),
	)

	e.sink.Probe(res)

	switch res.Class {
	case ClassAccessible:
		e.summarize(res)
	case ClassTransportError:
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
		e.logger.Error("Probe failed", "probe", spec.ID, "error", res.Err)
	default:
		e.logger.Debug("Probe denied", "probe", spec.ID, "status", res.StatusCode)
	}
	return res
}

// summarize renders detail lines for an accessible probe. Bodies that are
// empty or do not match the expected shape are skipped, not failed.
func (e *Enumerator) summarize(res Result) {
	if res.Spec.Summarize == nil || !hasContent(res.Data) {
		return
	}
	lines, ok := res.Spec.Summarize(res.Data)
	if !ok {
		e.logger.Debug("Skipping summary, unexpected response shape", "probe", res.Spec.ID)
		return
	}
	if len(lines) > 0 {
		e.sink.Details(lines)
	}
}

// hasContent reports whether a parsed body holds anything worth summarizing.
func hasContent(data any) bool {
	switch v := data.(type) {
	case nil:
		return false
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

// recoverPanic converts a panic into a recorded failure.
func (e *Enumerator) recoverPanic(ctx context.Context) {
	if r := recover(); r != nil {
		tr := otel.Tracer("ddenum/enum")
		_, span := tr.Start(ctx, "CriticalPanic")

		stack := debug.Stack()
		span.RecordError(fmt.Errorf("%v", r), trace.WithStackTrace(true))
		span.SetStatus(codes.Error, "CRITICAL FAILURE")
		span.SetAttributes(
			attribute.String("crash.stack", string(stack)),
			attribute.String("crash.reason", fmt.Sprintf("%v", r)),
		)
		span.End()

		e.logger.Error("CRITICAL FAILURE", "error", r, "stack", string(stack))
	}
}
