package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/l0lsec/datadogenumerator/pkg/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSinkEventStream(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONSink(&buf)

	sink.Info("Using API endpoint: https://api.datadoghq.com")
	sink.Section("USERS")
	sink.Probe(enum.Result{
		Spec:       enum.ProbeSpec{ID: "users", Name: "List Users", Path: "/api/v2/users"},
		Class:      enum.ClassAccessible,
		StatusCode: 200,
	})
	sink.Details([]string{"  Found 2 users", "    - a@example.com (Active)"})
	sink.Probe(enum.Result{
		Spec:  enum.ProbeSpec{ID: "monitors", Name: "List Monitors", Path: "/api/v1/monitor"},
		Class: enum.ClassTransportError,
		Err:   errors.New("connection refused"),
	})
	sink.Warn("No Application Key provided - some endpoints may be inaccessible")
	sink.Complete(enum.Stats{Accessible: 1, Errors: 1})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7, "one JSON object per event")

	events := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		var ev map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &ev), "line %q", l)
		events = append(events, ev)
	}

	assert.Equal(t, "info", events[0]["event"])
	assert.Equal(t, "Using API endpoint: https://api.datadoghq.com", events[0]["text"])

	assert.Equal(t, "section", events[1]["event"])
	assert.Equal(t, "USERS", events[1]["section"])

	assert.Equal(t, "probe", events[2]["event"])
	assert.Equal(t, "users", events[2]["probe"])
	assert.Equal(t, "/api/v2/users", events[2]["path"])
	assert.Equal(t, "accessible", events[2]["classification"])
	assert.Equal(t, float64(200), events[2]["status_code"])
	assert.NotContains(t, events[2], "error")

	assert.Equal(t, "details", events[3]["event"])
	assert.Equal(t, []any{"Found 2 users", "- a@example.com (Active)"}, events[3]["lines"],
		"display indentation is stripped from machine output")

	assert.Equal(t, "probe", events[4]["event"])
	assert.Equal(t, "transport_error", events[4]["classification"])
	assert.Equal(t, "connection refused", events[4]["error"])
	assert.NotContains(t, events[4], "status_code")

	assert.Equal(t, "warning", events[5]["event"])

	assert.Equal(t, "complete", events[6]["event"])
	stats, ok := events[6]["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), stats["accessible"])
	assert.Equal(t, float64(1), stats["errors"])
}

func TestJSONSinkFatalEvent(t *testing.T) {
	var buf bytes.Buffer
	NewJSONSink(&buf).Fatal(errors.New("API key validation failed"))

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "error", ev["event"])
	assert.Equal(t, "API key validation failed", ev["error"])
}
