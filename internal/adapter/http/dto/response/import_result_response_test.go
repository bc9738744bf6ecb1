package response

import (
	"testing"

	"funilaria_xpto/internal/diff"
	"funilaria_xpto/internal/parser"
)

func TestFromValidationReport(t *testing.T) {
	t.Run("nil slices become empty", func(t *testing.T) {
		got := FromValidationReport(parser.ValidationReport{Confidence: 1.0})
		if !got.Valid || got.Warnings == nil || got.Errors == nil {
			t.Fatalf("unexpected report: %+v", got)
		}
	})

	t.Run("errors flip valid", func(t *testing.T) {
		got := FromValidationReport(parser.ValidationReport{
			Errors:     []parser.ValidationIssue{{Field: "parts", Message: "no lines"}},
			Confidence: 0.7,
		})
		if got.Valid || len(got.Errors) != 1 || got.Confidence != 0.7 {
			t.Fatalf("unexpected report: %+v", got)
		}
	})
}

func TestFromImportResult(t *testing.T) {
	d := &diff.EstimateDiff{}
	got := FromImportResult(EstimateVersionResponse{VersionID: "ver-2"}, d, parser.ValidationReport{Confidence: 0.9})
	if got.Version.VersionID != "ver-2" || got.Diff != d {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.Validation.Confidence != 0.9 {
		t.Fatalf("unexpected validation: %+v", got.Validation)
	}
}
