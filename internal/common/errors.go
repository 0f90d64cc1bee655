package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes attached to document- and run-level failures.
const (
	CodeWorkbookOpen      = "WORKBOOK_OPEN"
	CodeSheetUnreadable   = "SHEET_UNREADABLE"
	CodePDFInvalid        = "PDF_INVALID"
	CodePDFNoText         = "PDF_NO_TEXT"
	CodeGrandTotalMissing = "GRAND_TOTAL_MISSING"
	CodeConfig            = "CONFIG_ERROR"
	CodeOutput            = "OUTPUT_ERROR"
)

// Common application errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrSheetMissing       = errors.New("sheet not found")
	ErrNoText             = errors.New("no text extracted")
	ErrGrandTotalNotFound = errors.New("grand total not found")
	ErrSummaryUnavailable = errors.New("summary unavailable")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ErrorCode returns the code of the first AppError in err's chain, or "".
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
