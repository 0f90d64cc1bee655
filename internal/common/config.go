package common

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration
type Config struct {
	Log      LogConfig
	Annexure AnnexureConfig
	PDF      PDFConfig
	Invoice  InvoiceConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json text"`
}

// AnnexureConfig holds the annexure pipeline settings
type AnnexureConfig struct {
	Dir              string   `validate:"required"`
	OutputDir        string   `validate:"required"`
	FilePrefix       string   `validate:"required"`
	BrandKeywords    []string `validate:"min=1,dive,required"`
	LocationKeywords []string `validate:"min=1,dive,required"`
	CityKeywords     []string `validate:"min=1,dive,required"`
}

// PDFConfig holds first-page text extraction settings
type PDFConfig struct {
	Method    string `validate:"oneof=native pdftotext"`
	Pdftotext string `validate:"required"`
	Validate  bool
}

// InvoiceConfig holds the invoice register pipeline settings
type InvoiceConfig struct {
	Dir          string `validate:"required"`
	ProfilePath  string
	TemplatePath string
	OutputFile   string
	PayoutPeriod string
	TaxRate      string `validate:"omitempty,numeric"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Annexure: AnnexureConfig{
			Dir:              getEnv("ANNEXURE_DIR", "."),
			OutputDir:        getEnv("ANNEXURE_OUTPUT_DIR", "."),
			FilePrefix:       getEnv("ANNEXURE_FILE_PREFIX", "invoice_Annexure_"),
			BrandKeywords:    getEnvAsList("ANNEXURE_BRAND_KEYWORDS", []string{"Biryani", "Restaurant"}),
			LocationKeywords: getEnvAsList("ANNEXURE_LOCATION_KEYWORDS", []string{"Whitefield"}),
			CityKeywords:     getEnvAsList("ANNEXURE_CITY_KEYWORDS", []string{"Bangalore"}),
		},
		PDF: PDFConfig{
			Method:    strings.ToLower(getEnv("PDF_TEXT_METHOD", "native")),
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Validate:  getEnvAsBool("PDF_VALIDATE", true),
		},
		Invoice: InvoiceConfig{
			Dir:          getEnv("INVOICE_DIR", "."),
			ProfilePath:  getEnv("INVOICE_PROFILE", ""),
			TemplatePath: getEnv("INVOICE_TEMPLATE", ""),
			OutputFile:   getEnv("INVOICE_OUTPUT", ""),
			PayoutPeriod: getEnv("INVOICE_PAYOUT_PERIOD", ""),
			TaxRate:      getEnv("INVOICE_TAX_RATE", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

var validate = validator.New()

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return NewAppError(CodeConfig, err.Error(), ErrInvalidInput)
	}
	return nil
}
