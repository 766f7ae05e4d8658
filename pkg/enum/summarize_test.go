package enum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usersPayload(n int) map[string]any {
	users := make([]any, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, map[string]any{
			"attributes": map[string]any{
				"email":  fmt.Sprintf("user%d@example.com", i),
				"status": "Active",
			},
		})
	}
	return map[string]any{"data": users}
}

func TestSummarizeUsersTruncates(t *testing.T) {
	lines, ok := summarizeUsers(usersPayload(12))
	require.True(t, ok)
	require.Len(t, lines, 12, "header, ten users, truncation marker")
	assert.Equal(t, "  Found 12 users", lines[0])
	assert.Equal(t, "    - user0@example.com (Active)", lines[1])
	assert.Equal(t, "    ... and 2 more", lines[11])
}

func TestSummarizeUsersShortListHasNoMarker(t *testing.T) {
	lines, ok := summarizeUsers(usersPayload(3))
	require.True(t, ok)
	require.Len(t, lines, 4)
	assert.Equal(t, "  Found 3 users", lines[0])
	assert.Equal(t, "    - user2@example.com (Active)", lines[3])
}

func TestSummarizeUsersMissingAttributes(t *testing.T) {
	lines, ok := summarizeUsers(map[string]any{"data": []any{map[string]any{}}})
	require.True(t, ok)
	require.Len(t, lines, 2)
	assert.Equal(t, "    - N/A (N/A)", lines[1])
}

func TestSummarizeUsersWrongShape(t *testing.T) {
	_, ok := summarizeUsers(map[string]any{"data": "not a list"})
	assert.False(t, ok)
}

func TestSummarizeOrg(t *testing.T) {
	lines, ok := summarizeOrg(map[string]any{"org": map[string]any{
		"name":      "Acme Corp",
		"public_id": "abc123",
		"created":   "2020-01-15T10:00:00Z",
	}})
	require.True(t, ok)
	assert.Equal(t, []string{
		"  Name: Acme Corp",
		"  Public ID: abc123",
		"  Created: 2020-01-15T10:00:00Z",
	}, lines)
}

func TestSummarizeOrgMissingFields(t *testing.T) {
	lines, ok := summarizeOrg(map[string]any{"something_else": 1})
	require.True(t, ok)
	assert.Equal(t, []string{
		"  Name: N/A",
		"  Public ID: N/A",
		"  Created: N/A",
	}, lines)
}

func TestSummarizeValidation(t *testing.T) {
	lines, ok := summarizeValidation(map[string]any{"valid": true})
	require.True(t, ok)
	assert.Equal(t, []string{"  Valid: true"}, lines)

	lines, ok = summarizeValidation(map[string]any{"errors": []any{}})
	require.True(t, ok)
	assert.Equal(t, []string{"  Valid: Unknown"}, lines)
}

func TestSummarizeAPIKeysNeverTruncatesWithMarker(t *testing.T) {
	keys := make([]any, 0, 7)
	for i := 0; i < 7; i++ {
		keys = append(keys, map[string]any{
			"attributes": map[string]any{"name": fmt.Sprintf("key-%d", i), "last4": "beef"},
		})
	}

	lines, ok := summarizeAPIKeys(map[string]any{"data": keys})
	require.True(t, ok)
	require.Len(t, lines, 6, "header plus the first five, no marker line")
	assert.Equal(t, "  Found 7 API keys", lines[0])
	assert.Equal(t, "    - key-0 (Last 4: ...beef)", lines[1])
	assert.Equal(t, "    - key-4 (Last 4: ...beef)", lines[5])
}

func TestSummarizeRolesListsFirstFive(t *testing.T) {
	roles := make([]any, 0, 6)
	for i := 0; i < 6; i++ {
		roles = append(roles, map[string]any{
			"attributes": map[string]any{"name": fmt.Sprintf("role-%d", i)},
		})
	}

	lines, ok := summarizeRoles(map[string]any{"data": roles})
	require.True(t, ok)
	require.Len(t, lines, 6)
	assert.Equal(t, "  Found 6 roles", lines[0])
	assert.Equal(t, "    - role-4", lines[5])
}

func TestSummarizeHosts(t *testing.T) {
	hosts := make([]any, 0, 7)
	for i := 0; i < 7; i++ {
		hosts = append(hosts, map[string]any{
			"name": fmt.Sprintf("host-%d", i),
			"apps": []any{"agent", "cassandra", "ssh", "nginx"},
		})
	}
	data := map[string]any{"host_list": hosts, "total_matching": float64(42)}

	lines, ok := summarizeHosts(data)
	require.True(t, ok)
	require.Len(t, lines, 7, "total, five hosts, bare marker")
	assert.Equal(t, "  Total hosts: 42", lines[0], "total_matching wins over list length")
	assert.Equal(t, "    - host-0 (Apps: agent, cassandra, ssh)", lines[1], "apps capped at three")
	assert.Equal(t, "    ... and more", lines[6], "host marker carries no count")
}

func TestSummarizeHostsTotalFallsBackToListLength(t *testing.T) {
	lines, ok := summarizeHosts(map[string]any{"host_list": []any{
		map[string]any{"name": "solo"},
	}})
	require.True(t, ok)
	assert.Equal(t, "  Total hosts: 1", lines[0])
	assert.Equal(t, "    - solo (Apps: )", lines[1])
}

func TestSummarizeMetricsTruncates(t *testing.T) {
	metrics := make([]any, 0, 12)
	for i := 0; i < 12; i++ {
		metrics = append(metrics, fmt.Sprintf("system.cpu.%d", i))
	}

	lines, ok := summarizeMetrics(map[string]any{"metrics": metrics})
	require.True(t, ok)
	require.Len(t, lines, 12)
	assert.Equal(t, "  Found 12 active metrics", lines[0])
	assert.Equal(t, "    - system.cpu.0", lines[1])
	assert.Equal(t, "    ... and 2 more", lines[11])
}

func TestSummarizeDashboardsTruncates(t *testing.T) {
	dashboards := make([]any, 0, 7)
	for i := 0; i < 7; i++ {
		dashboards = append(dashboards, map[string]any{
			"title": fmt.Sprintf("dash-%d", i),
			"id":    fmt.Sprintf("id-%d", i),
		})
	}

	lines, ok := summarizeDashboards(map[string]any{"dashboards": dashboards})
	require.True(t, ok)
	require.Len(t, lines, 7)
	assert.Equal(t, "  Found 7 dashboards", lines[0])
	assert.Equal(t, "    - dash-0 (ID: id-0)", lines[1])
	assert.Equal(t, "    ... and 2 more", lines[6])
}

func TestSummarizeMonitorsTopLevelArray(t *testing.T) {
	monitors := make([]any, 0, 7)
	for i := 0; i < 7; i++ {
		monitors = append(monitors, map[string]any{
			"name": fmt.Sprintf("mon-%d", i),
			"type": "metric alert",
		})
	}

	lines, ok := summarizeMonitors(monitors)
	require.True(t, ok)
	require.Len(t, lines, 7)
	assert.Equal(t, "  Found 7 monitors", lines[0])
	assert.Equal(t, "    - mon-0 (Type: metric alert)", lines[1])
	assert.Equal(t, "    ... and 2 more", lines[6])

	_, ok = summarizeMonitors(map[string]any{"monitors": monitors})
	assert.False(t, ok, "object bodies are not the monitor list shape")
}

func TestSummarizeCountOnlySections(t *testing.T) {
	three := []any{1, 2, 3}

	cases := []struct {
		name string
		fn   func(any) ([]string, bool)
		data any
		want string
	}{
		{"app keys", summarizeAppKeys, map[string]any{"data": three}, "  Found 3 application keys"},
		{"events", summarizeEvents, map[string]any{"events": three}, "  Found 3 events in last 24h"},
		{"downtimes", summarizeDowntimes, three, "  Found 3 downtimes"},
		{"slos", summarizeSLOs, map[string]any{"data": three}, "  Found 3 SLOs"},
		{"notebooks", summarizeNotebooks, map[string]any{"data": three}, "  Found 3 notebooks"},
		{"synthetics", summarizeSynthetics, map[string]any{"tests": three}, "  Found 3 synthetic tests"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, ok := tc.fn(tc.data)
			require.True(t, ok)
			assert.Equal(t, []string{tc.want}, lines)
		})
	}
}
