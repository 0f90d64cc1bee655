package constants

import "strings"

// File name patterns for the two input folders.
const (
	AnnexurePrefix = "invoice_Annexure_"
	XLSXExt        = "xlsx"
	PDFExt         = "pdf"
)

// Output artifacts.
const (
	ConsolidatedPrefix     = "Consolidated_Annexure_Data_"
	ConsolidatedTimeLayout = "20060102_150405"
	RegisterOutputFile     = "Output_Commission_Invoice.xlsx"
	RegisterTemplateFile   = "Swiggy_Tax_Sample_file.xlsx"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
