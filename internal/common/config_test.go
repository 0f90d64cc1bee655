package common

import (
	"errors"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ANNEXURE_BRAND_KEYWORDS", "")
	t.Setenv("LOG_LEVEL", "")
	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Annexure.FilePrefix != "invoice_Annexure_" {
		t.Errorf("prefix = %q", cfg.Annexure.FilePrefix)
	}
	if len(cfg.Annexure.BrandKeywords) != 2 {
		t.Errorf("brand keywords = %v", cfg.Annexure.BrandKeywords)
	}
	if cfg.PDF.Method != "native" || !cfg.PDF.Validate {
		t.Errorf("pdf config = %+v", cfg.PDF)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ANNEXURE_CITY_KEYWORDS", " Pune , ,Mumbai")
	t.Setenv("PDF_VALIDATE", "false")
	t.Setenv("PDF_TEXT_METHOD", "PDFTOTEXT")
	cfg := LoadConfig()
	if got := cfg.Annexure.CityKeywords; len(got) != 2 || got[0] != "Pune" || got[1] != "Mumbai" {
		t.Errorf("city keywords = %v", got)
	}
	if cfg.PDF.Validate {
		t.Error("PDF_VALIDATE=false ignored")
	}
	if cfg.PDF.Method != "pdftotext" {
		t.Errorf("method = %q", cfg.PDF.Method)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad method", func(c *Config) { c.PDF.Method = "ocr" }},
		{"no prefix", func(c *Config) { c.Annexure.FilePrefix = "" }},
		{"empty keyword", func(c *Config) { c.Annexure.CityKeywords = []string{""} }},
		{"tax rate not numeric", func(c *Config) { c.Invoice.TaxRate = "eighteen" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() = %v, want ErrInvalidInput", err)
			}
		})
	}
}
