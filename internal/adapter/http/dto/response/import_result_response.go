package response

import (
	"funilaria_xpto/internal/diff"
	"funilaria_xpto/internal/parser"
)

type ValidationReportResponse struct {
	Valid      bool                     `json:"valid"`
	Confidence float64                  `json:"confidence"`
	Warnings   []parser.ValidationIssue `json:"warnings"`
	Errors     []parser.ValidationIssue `json:"errors"`
}

func FromValidationReport(r parser.ValidationReport) ValidationReportResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []parser.ValidationIssue{}
	}
	errs := r.Errors
	if errs == nil {
		errs = []parser.ValidationIssue{}
	}
	return ValidationReportResponse{
		Valid:      r.Valid(),
		Confidence: r.Confidence,
		Warnings:   warnings,
		Errors:     errs,
	}
}

// ImportResultResponse is the success body of an estimate import. Diff is nil
// on the first version of a claim.
type ImportResultResponse struct {
	Version    EstimateVersionResponse  `json:"version"`
	Diff       *diff.EstimateDiff       `json:"diff,omitempty"`
	Validation ValidationReportResponse `json:"validation"`
}

func FromImportResult(version EstimateVersionResponse, d *diff.EstimateDiff, report parser.ValidationReport) ImportResultResponse {
	return ImportResultResponse{
		Version:    version,
		Diff:       d,
		Validation: FromValidationReport(report),
	}
}

// ImportRejectedResponse is returned when validation errors block the import.
// The report tells the shop exactly which fields to fix before re-exporting.
type ImportRejectedResponse struct {
	Code       string                   `json:"code"`
	Message    string                   `json:"message"`
	Validation ValidationReportResponse `json:"validation"`
}
