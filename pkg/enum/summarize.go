package enum

import (
	"fmt"
	"strings"
)

// Summarizers turn accessible response bodies into indented detail lines.
// A missing or oddly typed field degrades to "N/A" or a zero count, never
// an abort.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// str fetches a field as display text, degrading to "N/A".
func str(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return "N/A"
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return fmt.Sprintf("%v", v)
}

// sliceField fetches a list-valued field, distinguishing an absent field
// (empty list) from one that is present with the wrong shape.
func sliceField(m map[string]any, key string) ([]any, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, true
	}
	s, ok := v.([]any)
	if !ok {
		return nil, false
	}
	return s, true
}

func limit(items []any, n int) []any {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func summarizeValidation(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	val, ok := m["valid"]
	if !ok || val == nil {
		val = "Unknown"
	}
	return []string{fmt.Sprintf("  Valid: %v", val)}, true
}

func summarizeOrg(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	org := asMap(m["org"])
	return []string{
		fmt.Sprintf("  Name: %s", str(org, "name")),
		fmt.Sprintf("  Public ID: %s", str(org, "public_id")),
		fmt.Sprintf("  Created: %s", str(org, "created")),
	}, true
}

func summarizeUsers(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	users, ok := sliceField(m, "data")
	if !ok {
		return nil, false
	}
	lines := []string{fmt.Sprintf("  Found %d users", len(users))}
	for _, u := range limit(users, 10) {
		attrs := asMap(asMap(u)["attributes"])
		lines = append(lines, fmt.Sprintf("    - %s (%s)", str(attrs, "email"), str(attrs, "status")))
	}
	if len(users) > 10 {
		lines = append(lines, fmt.Sprintf("    ... and %d more", len(users)-10))
	}
	return lines, true
}

func summarizeAPIKeys(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	keys, ok := sliceField(m, "data")
	if !ok {
		return nil, false
	}
	lines := []string{fmt.Sprintf("  Found %d API keys", len(keys))}
	for _, k := range limit(keys, 5) {
		attrs := asMap(asMap(k)["attributes"])
		lines = append(lines, fmt.Sprintf("    - %s (Last 4: ...%s)", str(attrs, "name"), str(attrs, "last4")))
	}
	return lines, true
}

func summarizeAppKeys(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	keys, ok := sliceField(m, "data")
	if !ok {
		return nil, false
	}
	return []string{fmt.Sprintf("  Found %d application keys", len(keys))}, true
}

func summarizeRoles(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	roles, ok := sliceField(m, "data")
	if !ok {
		return nil, false
	}
	lines := []string{fmt.Sprintf("  Found %d roles", len(roles))}
	for _, r := range limit(roles, 5) {
		attrs := asMap(asMap(r)["attributes"])
		lines = append(lines, fmt.Sprintf("    - %s", str(attrs, "name")))
	}
	return lines, true
}

func summarizeHosts(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	hosts, ok := sliceField(m, "host_list")
	if !ok {
		return nil, false
	}

	total := len(hosts)
	if v, ok := m["total_matching"].(float64); ok {
		total = int(v)
	}

	lines := []string{fmt.Sprintf("  Total hosts: %d", total)}
	for _, h := range limit(hosts, 5) {
		hm := asMap(h)
		apps := make([]string, 0, 3)
		for _, a := range limit(asSlice(hm["apps"]), 3) {
			if s, ok := a.(string); ok {
				apps = append(apps, s)
			}
		}
		lines = append(lines, fmt.Sprintf("    - %s (Apps: %s)", str(hm, "name"), strings.Join(apps, ", ")))
	}
	if len(hosts) > 5 {
		lines = append(lines, "    ... and more")
	}
	return lines, true
}

func summarizeMetrics(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	metrics, ok := sliceField(m, "metrics")
	if !ok {
		return nil, false
	}
	lines := []string{fmt.Sprintf("  Found %d active metrics", len(metrics))}
	for _, metric := range limit(metrics, 10) {
		lines = append(lines, fmt.Sprintf("    - %v", metric))
	}
	if len(metrics) > 10 {
		lines = append(lines, fmt.Sprintf("    ... and %d more", len(metrics)-10))
	}
	return lines, true
}

func summarizeDashboards(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	dashboards, ok := sliceField(m, "dashboards")
	if !ok {
		return nil, false
	}
	lines := []string{fmt.Sprintf("  Found %d dashboards", len(dashboards))}
	for _, d := range limit(dashboards, 5) {
		dm := asMap(d)
		lines = append(lines, fmt.Sprintf("    - %s (ID: %s)", str(dm, "title"), str(dm, "id")))
	}
	if len(dashboards) > 5 {
		lines = append(lines, fmt.Sprintf("    ... and %d more", len(dashboards)-5))
	}
	return lines, true
}

// summarizeMonitors expects a top-level JSON array, unlike most v1
// endpoints which wrap their payload in an object.
func summarizeMonitors(data any) ([]string, bool) {
	monitors := asSlice(data)
	if monitors == nil {
		return nil, false
	}
	lines := []string{fmt.Sprintf("  Found %d monitors", len(monitors))}
	for _, mon := range limit(monitors, 5) {
		mm := asMap(mon)
		lines = append(lines, fmt.Sprintf("    - %s (Type: %s)", str(mm, "name"), str(mm, "type")))
	}
	if len(monitors) > 5 {
		lines = append(lines, fmt.Sprintf("    ... and %d more", len(monitors)-5))
	}
	return lines, true
}

func summarizeEvents(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	events, ok := sliceField(m, "events")
	if !ok {
		return nil, false
	}
	return []string{fmt.Sprintf("  Found %d events in last 24h", len(events))}, true
}

// summarizeDowntimes expects a top-level JSON array.
func summarizeDowntimes(data any) ([]string, bool) {
	downtimes := asSlice(data)
	if downtimes == nil {
		return nil, false
	}
	return []string{fmt.Sprintf("  Found %d downtimes", len(downtimes))}, true
}

func summarizeSLOs(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	slos, ok := sliceField(m, "data")
	if !ok {
		return nil, false
	}
	return []string{fmt.Sprintf("  Found %d SLOs", len(slos))}, true
}

func summarizeNotebooks(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	notebooks, ok := sliceField(m, "data")
	if !ok {
		return nil, false
	}
	return []string{fmt.Sprintf("  Found %d notebooks", len(notebooks))}, true
}

func summarizeSynthetics(data any) ([]string, bool) {
	m := asMap(data)
	if m == nil {
		return nil, false
	}
	tests, ok := sliceField(m, "tests")
	if !ok {
		return nil, false
	}
	return []string{fmt.Sprintf("  Found %d synthetic tests", len(tests))}, true
}
