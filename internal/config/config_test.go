package config

import (
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration must validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input folder", func(c *Config) { c.InputFolder = "" }},
		{"empty output folder", func(c *Config) { c.OutputFolder = "" }},
		{"empty export file", func(c *Config) { c.ExportFile = "" }},
		{"empty bucket name", func(c *Config) { c.Bucket.Name = "" }},
		{"unknown backend", func(c *Config) { c.Detection.Backend = "bard" }},
		{"empty model", func(c *Config) { c.Detection.Model = "" }},
		{"empty prompt", func(c *Config) { c.Detection.Prompt = "" }},
		{"negative delay", func(c *Config) { c.Detection.RequestDelay = -1 }},
		{"quality too high", func(c *Config) { c.Detection.SendQuality = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := APIKey(); err == nil {
		t.Error("expected an error when neither variable is set")
	}

	t.Setenv("GEMINI_API_KEY", "alt-key")
	if key, err := APIKey(); err != nil || key != "alt-key" {
		t.Errorf("APIKey() = %q, %v; want the GEMINI_API_KEY fallback", key, err)
	}

	t.Setenv("GOOGLE_API_KEY", "primary-key")
	if key, err := APIKey(); err != nil || key != "primary-key" {
		t.Errorf("APIKey() = %q, %v; want GOOGLE_API_KEY to win", key, err)
	}
}
