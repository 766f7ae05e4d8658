// Package enum implements the probe catalog and the enumeration engine
// that drives it against the Datadog API.
package enum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/l0lsec/datadogenumerator/pkg/config"
)

// Classification buckets a probe outcome by HTTP status.
type Classification int

const (
	ClassAccessible Classification = iota
	ClassForbidden
	ClassUnauthorized
	ClassNotFound
	ClassOtherStatus
	ClassTransportError
)

// String returns the wire name of the classification.
func (c Classification) String() string {
	switch c {
	case ClassAccessible:
		return "accessible"
	case ClassForbidden:
		return "forbidden"
	case ClassUnauthorized:
		return "unauthorized"
	case ClassNotFound:
		return "not_found"
	case ClassOtherStatus:
		return "other_status"
	case ClassTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Window describes a relative time-range query appended to a probe path.
type Window struct {
	// Param carries the window start as a unix timestamp.
	Param string
	// Lookback is the distance behind now.
	Lookback time.Duration
	// EndParam, when set, is pinned to now.
	EndParam string
}

// ProbeSpec declares a single endpoint probe.
type ProbeSpec struct {
	// ID is the stable machine name used in traces and JSON output.
	ID string
	// Name is the human label printed on the status line.
	Name        string
	Method      string
	Path        string
	Description string

	// Window, when set, materializes time parameters at request time.
	Window *Window

	// Body is marshaled as JSON for POST probes.
	Body map[string]any

	// Summarize renders detail lines from an accessible response body.
	// ok is false when the body does not have the expected shape.
	Summarize func(data any) (lines []string, ok bool)
}

// RequestPath renders the probe path with any window parameters
// materialized against now.
func (p ProbeSpec) RequestPath(now time.Time) string {
	if p.Window == nil {
		return p.Path
	}
	start := now.Add(-p.Window.Lookback).Unix()
	path := fmt.Sprintf("%s?%s=%d", p.Path, p.Window.Param, start)
	if p.Window.EndParam != "" {
		path = fmt.Sprintf("%s&%s=%d", path, p.Window.EndParam, now.Unix())
	}
	return path
}

// Result is the classified outcome of one probe.
type Result struct {
	Spec       ProbeSpec
	Class      Classification
	StatusCode int

	// Data holds the parsed JSON body of an accessible response. An empty
	// body parses to an empty object.
	Data any

	// Err holds the failure when Class is ClassTransportError.
	Err error
}

// Prober issues single authenticated requests against the target API.
type Prober struct {
	BaseURL string
	APIKey  string
	AppKey  string
	Client  *http.Client
	Now     func() time.Time
}

// NewProber initializes a prober with the run's credential pair.
func NewProber(cfg config.Config) *Prober {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = config.DefaultTimeout
	}
	return &Prober{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		AppKey:  cfg.AppKey,
		Client:  &http.Client{Timeout: timeout},
		Now:     time.Now,
	}
}

// Do executes one probe. Transport failures come back as a classified
// Result, never as an error.
func (p *Prober) Do(ctx context.Context, spec ProbeSpec) Result {
	res := Result{Spec: spec}

	var body io.Reader
	if spec.Body != nil {
		payload, err := json.Marshal(spec.Body)
		if err != nil {
			res.Class = ClassTransportError
			res.Err = fmt.Errorf("failed to marshal request body: %w", err)
			return res
		}
		body = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, p.BaseURL+spec.RequestPath(p.Now()), body)
	if err != nil {
		res.Class = ClassTransportError
		res.Err = fmt.Errorf("failed to create request: %w", err)
		return res
	}
	req.Header.Set("DD-API-KEY", p.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if p.AppKey != "" {
		req.Header.Set("DD-APPLICATION-KEY", p.AppKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		res.Class = ClassTransportError
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	switch resp.StatusCode {
	case http.StatusOK:
		data, err := decodeBody(resp.Body)
		if err != nil {
			res.Class = ClassTransportError
			res.Err = fmt.Errorf("failed to decode response: %w", err)
			return res
		}
		res.Class = ClassAccessible
		res.Data = data
	case http.StatusForbidden:
		res.Class = ClassForbidden
	case http.StatusUnauthorized:
		res.Class = ClassUnauthorized
	case http.StatusNotFound:
		res.Class = ClassNotFound
	default:
		res.Class = ClassOtherStatus
	}
	return res
}

// decodeBody parses a response body as JSON. Empty bodies degrade to an
// empty object.
func decodeBody(r io.Reader) (any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}
