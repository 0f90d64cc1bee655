package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/payout-recon/constants"
)

// RegisterProfile carries the per-filing constants written into every register row.
// They belong to one filing period and are expected to change between runs.
type RegisterProfile struct {
	PayoutPeriod   string          `json:"payout_period"`
	FiscalYear     string          `json:"fiscal_year"`
	Year           string          `json:"year"`
	Month          string          `json:"month"`
	SupplierGSTIN  string          `json:"supplier_gstin"`
	RecipientGSTIN string          `json:"recipient_gstin"`
	RecipientPAN   string          `json:"recipient_pan"`
	SACCode        string          `json:"sac_code"`
	InvoiceDate    string          `json:"invoice_date"`
	Description    string          `json:"description"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TemplatePath   string          `json:"template_path"`
	SheetName      string          `json:"sheet_name"`
	OutputFile     string          `json:"output_file"`
}

// DefaultRegisterProfile returns the April 2025 filing constants.
func DefaultRegisterProfile() RegisterProfile {
	return RegisterProfile{
		PayoutPeriod:   "01/04/2025 to 05/04/2025",
		FiscalYear:     "FY_2024-2025",
		Year:           "2025",
		Month:          "April",
		SupplierGSTIN:  "29ABNFM9601R1Z9",
		RecipientGSTIN: "29AAFCB7707D1ZQ",
		RecipientPAN:   "AAFCB7707D",
		SACCode:        "996211",
		InvoiceDate:    "2025-04-09",
		Description:    "Service Fee",
		TaxRate:        decimal.RequireFromString("0.18"),
		TemplatePath:   constants.RegisterTemplateFile,
		SheetName:      constants.SheetCommissionInvoice,
		OutputFile:     constants.RegisterOutputFile,
	}
}

// HalfRatePercent is the CGST (and SGST) rate in percent: half the total tax rate.
func (p RegisterProfile) HalfRatePercent() decimal.Decimal {
	return p.TaxRate.Mul(decimal.NewFromInt(50))
}

// BuildRegisterProfileSchema returns the JSON-Schema a profile file must satisfy.
func BuildRegisterProfileSchema() map[string]any {
	str := func() map[string]any { return map[string]any{"type": "string", "minLength": 1} }
	props := map[string]any{
		"payout_period":   str(),
		"fiscal_year":     str(),
		"year":            map[string]any{"type": "string", "pattern": `^\d{4}$`},
		"month":           str(),
		"supplier_gstin":  gstinProp(),
		"recipient_gstin": gstinProp(),
		"recipient_pan":   map[string]any{"type": "string", "pattern": `^[A-Z]{5}\d{4}[A-Z]$`},
		"sac_code":        map[string]any{"type": "string", "pattern": `^\d{4,8}$`},
		"invoice_date":    map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"description":     str(),
		"tax_rate":        map[string]any{"type": "number", "exclusiveMinimum": 0, "maximum": 1},
		"template_path":   map[string]any{"type": "string"},
		"sheet_name":      map[string]any{"type": "string", "minLength": 1, "maxLength": 31},
		"output_file":     map[string]any{"type": "string", "pattern": `\.xlsx$`},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func gstinProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{2}[A-Z0-9]{13}$`,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// LoadRegisterProfile starts from the defaults, overlays the JSON file at path (if any)
// and then the non-empty overrides from cfg.
func LoadRegisterProfile(path string, cfg InvoiceConfig) (RegisterProfile, error) {
	p := DefaultRegisterProfile()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return p, NewAppError(CodeConfig, "read profile "+path, err)
		}
		if err := ValidateJSONAgainstSchema(BuildRegisterProfileSchema(), data); err != nil {
			return p, NewAppError(CodeConfig, "profile "+path, err)
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return p, NewAppError(CodeConfig, "decode profile "+path, err)
		}
	}
	if cfg.PayoutPeriod != "" {
		p.PayoutPeriod = cfg.PayoutPeriod
	}
	if cfg.TemplatePath != "" {
		p.TemplatePath = cfg.TemplatePath
	}
	if cfg.OutputFile != "" {
		p.OutputFile = cfg.OutputFile
	}
	if cfg.TaxRate != "" {
		rate, err := decimal.NewFromString(cfg.TaxRate)
		if err != nil || !rate.IsPositive() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return p, NewAppError(CodeConfig, "tax rate must be in (0, 1]: "+cfg.TaxRate, ErrInvalidInput)
		}
		p.TaxRate = rate
	}
	return p, nil
}
