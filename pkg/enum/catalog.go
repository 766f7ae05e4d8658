package enum

import (
	"encoding/json"
	"net/http"
	"time"
)

// Section groups related probes under one report heading.
type Section struct {
	Title  string
	Probes []ProbeSpec
}

// ValidateProbe is the credential gate run before any section.
func ValidateProbe() ProbeSpec {
	return ProbeSpec{
		ID:          "validate",
		Name:        "API Key Validation",
		Method:      http.MethodGet,
		Path:        "/api/v1/validate",
		Description: "Confirms the API key is valid",
		Summarize:   summarizeValidation,
	}
}

// Catalog returns the fixed probe catalog in report order.
func Catalog() []Section {
	return []Section{
		{Title: "ORGANIZATION INFO", Probes: []ProbeSpec{
			{ID: "org", Name: "Organization Details", Method: http.MethodGet,
				Path:        "/api/v1/org",
				Description: "Organization settings and info",
				Summarize:   summarizeOrg},
		}},
		{Title: "USERS", Probes: []ProbeSpec{
			{ID: "users", Name: "List Users", Method: http.MethodGet,
				Path:        "/api/v2/users",
				Description: "All users in the organization",
				Summarize:   summarizeUsers},
		}},
		{Title: "API KEYS", Probes: []ProbeSpec{
			{ID: "api_keys", Name: "List API Keys", Method: http.MethodGet,
				Path:        "/api/v2/api_keys",
				Description: "All API keys in the organization",
				Summarize:   summarizeAPIKeys},
		}},
		{Title: "APPLICATION KEYS", Probes: []ProbeSpec{
			{ID: "app_keys", Name: "List Application Keys", Method: http.MethodGet,
				Path:        "/api/v2/application_keys",
				Description: "All application keys",
				Summarize:   summarizeAppKeys},
		}},
		{Title: "ROLES & PERMISSIONS", Probes: []ProbeSpec{
			{ID: "roles", Name: "List Roles", Method: http.MethodGet,
				Path:        "/api/v2/roles",
				Description: "RBAC roles",
				Summarize:   summarizeRoles},
		}},
		{Title: "SERVICE ACCOUNTS", Probes: []ProbeSpec{
			{ID: "service_accounts", Name: "Service Accounts", Method: http.MethodGet,
				Path:        "/api/v2/service_accounts",
				Description: "Service accounts"},
		}},
		{Title: "HOSTS", Probes: []ProbeSpec{
			{ID: "hosts", Name: "List Hosts", Method: http.MethodGet,
				Path:        "/api/v1/hosts",
				Description: "All monitored hosts",
				Summarize:   summarizeHosts},
		}},
		{Title: "METRICS", Probes: []ProbeSpec{
			{ID: "metrics", Name: "List Metrics", Method: http.MethodGet,
				Path:        "/api/v1/metrics",
				Description: "Active metrics in the last hour",
				Window:      &Window{Param: "from", Lookback: time.Hour},
				Summarize:   summarizeMetrics},
		}},
		{Title: "DASHBOARDS", Probes: []ProbeSpec{
			{ID: "dashboards", Name: "List Dashboards", Method: http.MethodGet,
				Path:        "/api/v1/dashboard",
				Description: "All dashboards",
				Summarize:   summarizeDashboards},
		}},
		{Title: "MONITORS", Probes: []ProbeSpec{
			{ID: "monitors", Name: "List Monitors", Method: http.MethodGet,
				Path:        "/api/v1/monitor",
				Description: "All configured monitors/alerts",
				Summarize:   summarizeMonitors},
		}},
		{Title: "EVENTS", Probes: []ProbeSpec{
			{ID: "events", Name: "Recent Events", Method: http.MethodGet,
				Path:        "/api/v1/events",
				Description: "Events from last 24 hours",
				Window:      &Window{Param: "start", Lookback: 24 * time.Hour, EndParam: "end"},
				Summarize:   summarizeEvents},
		}},
		{Title: "DOWNTIMES", Probes: []ProbeSpec{
			{ID: "downtimes", Name: "List Downtimes", Method: http.MethodGet,
				Path:        "/api/v1/downtime",
				Description: "Scheduled downtimes",
				Summarize:   summarizeDowntimes},
		}},
		{Title: "SERVICE LEVEL OBJECTIVES (SLOs)", Probes: []ProbeSpec{
			{ID: "slos", Name: "List SLOs", Method: http.MethodGet,
				Path:        "/api/v1/slo",
				Description: "All SLOs",
				Summarize:   summarizeSLOs},
		}},
		{Title: "NOTEBOOKS", Probes: []ProbeSpec{
			{ID: "notebooks", Name: "List Notebooks", Method: http.MethodGet,
				Path:        "/api/v1/notebooks",
				Description: "All notebooks",
				Summarize:   summarizeNotebooks},
		}},
		{Title: "LOGS", Probes: []ProbeSpec{
			{ID: "log_indexes", Name: "Log Indexes", Method: http.MethodGet,
				Path:        "/api/v1/logs/config/indexes",
				Description: "Log index configurations"},
			{ID: "log_pipelines", Name: "Log Pipelines", Method: http.MethodGet,
				Path:        "/api/v1/logs/config/pipelines",
				Description: "Log processing pipelines"},
		}},
		{Title: "APM / TRACING", Probes: []ProbeSpec{
			{ID: "apm_services", Name: "Services", Method: http.MethodGet,
				Path:        "/api/v1/services",
				Description: "APM services"},
		}},
		{Title: "SYNTHETICS", Probes: []ProbeSpec{
			{ID: "synthetic_tests", Name: "Synthetic Tests", Method: http.MethodGet,
				Path:        "/api/v1/synthetics/tests",
				Description: "Synthetic monitoring tests",
				Summarize:   summarizeSynthetics},
		}},
		{Title: "REAL USER MONITORING (RUM)", Probes: []ProbeSpec{
			{ID: "rum_applications", Name: "RUM Applications", Method: http.MethodGet,
				Path:        "/api/v2/rum/applications",
				Description: "RUM application configurations"},
		}},
		{Title: "INTEGRATIONS", Probes: []ProbeSpec{
			{ID: "integration_aws", Name: "AWS Integration", Method: http.MethodGet,
				Path: "/api/v1/integration/aws"},
			{ID: "integration_azure", Name: "Azure Integration", Method: http.MethodGet,
				Path: "/api/v1/integration/azure"},
			{ID: "integration_gcp", Name: "GCP Integration", Method: http.MethodGet,
				Path: "/api/v1/integration/gcp"},
			{ID: "integration_slack", Name: "Slack Integration", Method: http.MethodGet,
				Path: "/api/v1/integration/slack"},
			{ID: "integration_pagerduty", Name: "PagerDuty Integration", Method: http.MethodGet,
				Path: "/api/v1/integration/pagerduty"},
			{ID: "integration_webhooks", Name: "Webhooks Integration", Method: http.MethodGet,
				Path: "/api/v1/integration/webhooks/configuration/webhooks"},
		}},
		{Title: "SECURITY", Probes: []ProbeSpec{
			{ID: "security_rules", Name: "Security Monitoring Rules", Method: http.MethodGet,
				Path:        "/api/v2/security_monitoring/rules",
				Description: "Security detection rules"},
			{ID: "security_signals", Name: "Security Signals", Method: http.MethodGet,
				Path:        "/api/v2/security_monitoring/signals",
				Description: "Security signals/alerts"},
		}},
	}
}

// CatalogJSON renders the full probe catalog, validation probe included,
// for the endpoints subcommand.
func CatalogJSON() ([]byte, error) {
	type entry struct {
		Section     string `json:"section"`
		Probe       string `json:"probe"`
		Method      string `json:"method"`
		Path        string `json:"path"`
		Description string `json:"description,omitempty"`
	}

	v := ValidateProbe()
	entries := []entry{{
		Section:     "VALIDATING API KEY",
		Probe:       v.ID,
		Method:      v.Method,
		Path:        v.Path,
		Description: v.Description,
	}}
	for _, s := range Catalog() {
		for _, p := range s.Probes {
			entries = append(entries, entry{
				Section:     s.Title,
				Probe:       p.ID,
				Method:      p.Method,
				Path:        p.Path,
				Description: p.Description,
			})
		}
	}
	return json.MarshalIndent(entries, "", "  ")
}
