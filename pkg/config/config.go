// Package config defines run configuration, region routing, and defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Defaults.
const (
	DefaultRegion  = "us1"
	DefaultTimeout = 10 * time.Second
)

// regionOrder lists the supported regions in documentation order.
var regionOrder = []string{"us1", "us3", "us5", "eu", "ap1"}

// regionBaseURLs maps each region to its API host.
var regionBaseURLs = map[string]string{
	"us1": "https://api.datadoghq.com",
	"us3": "https://api.us3.datadoghq.com",
	"us5": "https://api.us5.datadoghq.com",
	"eu":  "https://api.datadoghq.eu",
	"ap1": "https://api.ap1.datadoghq.com",
}

// Config holds the settings for one enumeration run. It is built once by
// the command layer and treated as immutable afterwards.
type Config struct {
	// Credential pair. APIKey is required, AppKey is optional.
	APIKey string
	AppKey string

	Region  string
	BaseURL string
	Timeout time.Duration

	// Output switches.
	JSONOutput bool
	NoColor    bool

	// Logging switches.
	Verbose  bool
	JsonLogs bool

	// Dependencies.
	Logger *slog.Logger
}

// DefaultConfig returns a run configuration with default region and timeout.
func DefaultConfig() Config {
	return Config{
		Region:  DefaultRegion,
		BaseURL: regionBaseURLs[DefaultRegion],
		Timeout: DefaultTimeout,
	}
}

// BaseURLFor resolves a region name to its API base URL.
func BaseURLFor(region string) (string, error) {
	url, ok := regionBaseURLs[region]
	if !ok {
		return "", fmt.Errorf("unknown region %q (choose from %s)", region, strings.Join(regionOrder, ", "))
	}
	return url, nil
}

// Regions returns the supported region names in documentation order.
func Regions() []string {
	out := make([]string, len(regionOrder))
	copy(out, regionOrder)
	return out
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("API key is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("no base URL resolved for region %q", c.Region)
	}
	return nil
}
