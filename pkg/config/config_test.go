package config

import (
	"testing"
	"time"
)

func TestBaseURLFor(t *testing.T) {
	expected := map[string]string{
		"us1": "https://api.datadoghq.com",
		"us3": "https://api.us3.datadoghq.com",
		"us5": "https://api.us5.datadoghq.com",
		"eu":  "https://api.datadoghq.eu",
		"ap1": "https://api.ap1.datadoghq.com",
	}

	for region, want := range expected {
		got, err := BaseURLFor(region)
		if err != nil {
			t.Fatalf("BaseURLFor(%q) returned error: %v", region, err)
		}
		if got != want {
			t.Errorf("BaseURLFor(%q) = %q, want %q", region, got, want)
		}
	}
}

func TestBaseURLForUnknownRegion(t *testing.T) {
	_, err := BaseURLFor("us-east-1")
	if err == nil {
		t.Fatal("Expected an error for an unknown region")
	}
}

func TestRegionsOrder(t *testing.T) {
	regions := Regions()
	want := []string{"us1", "us3", "us5", "eu", "ap1"}

	if len(regions) != len(want) {
		t.Fatalf("Expected %d regions, got %d", len(want), len(regions))
	}
	for i, r := range want {
		if regions[i] != r {
			t.Errorf("Region at %d = %q, want %q", i, regions[i], r)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Region != DefaultRegion {
		t.Errorf("Expected region %q, got %q", DefaultRegion, cfg.Region)
	}
	if cfg.BaseURL != "https://api.datadoghq.com" {
		t.Errorf("Default base URL = %q, want the us1 host", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", cfg.Timeout)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation to fail without an API key")
	}

	cfg.APIKey = "abc123"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected validation to pass with an API key, got: %v", err)
	}
}
