package parser

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"funilaria_xpto/internal/domain/entities"
)

func completeEstimate() entities.CanonicalEstimate {
	return entities.CanonicalEstimate{
		Customer: entities.Customer{FirstName: "Maria", LastName: "Souza"},
		Vehicle:  entities.Vehicle{Year: 2021, Make: "Toyota", Model: "Corolla"},
		Claim:    entities.ClaimInfo{ClaimNumber: "CLM-1"},
		Parts: []entities.PartLine{
			{LineNumber: 1, Description: "Bumper", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100), ExtendedPrice: decimal.NewFromInt(100)},
		},
		Labor: []entities.LaborLine{
			{LineNumber: 1, Operation: "Replace", Hours: decimal.NewFromInt(2), Rate: decimal.NewFromInt(50), ExtendedPrice: decimal.NewFromInt(100)},
		},
		Financial: entities.FinancialSummary{GrandTotal: decimal.NewFromInt(200)},
	}
}

func confidenceEq(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("confidence = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	t.Run("complete estimate is fully trusted", func(t *testing.T) {
		r := Validate(completeEstimate())
		if !r.Valid() {
			t.Fatalf("expected valid, got errors: %v", r.Errors)
		}
		if len(r.Warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", r.Warnings)
		}
		confidenceEq(t, r.Confidence, 1.0)
	})

	t.Run("each missing identity field warns", func(t *testing.T) {
		est := completeEstimate()
		est.Customer = entities.Customer{}
		est.Vehicle.Year = 0
		r := Validate(est)
		if !r.Valid() {
			t.Fatalf("warnings must not invalidate: %v", r.Errors)
		}
		if len(r.Warnings) != 2 {
			t.Fatalf("expected 2 warnings, got %v", r.Warnings)
		}
		confidenceEq(t, r.Confidence, 0.8)
	})

	t.Run("no lines at all is an error", func(t *testing.T) {
		est := completeEstimate()
		est.Parts = nil
		est.Labor = nil
		r := Validate(est)
		if r.Valid() {
			t.Fatalf("expected invalid")
		}
		if len(r.Errors) != 1 || r.Errors[0].Field != "parts" {
			t.Fatalf("unexpected errors: %v", r.Errors)
		}
		confidenceEq(t, r.Confidence, 0.7)
	})

	t.Run("single empty category only warns", func(t *testing.T) {
		est := completeEstimate()
		est.Labor = nil
		r := Validate(est)
		if !r.Valid() {
			t.Fatalf("expected valid, got errors: %v", r.Errors)
		}
		if len(r.Warnings) != 1 || r.Warnings[0].Field != "labor" {
			t.Fatalf("unexpected warnings: %v", r.Warnings)
		}
	})

	t.Run("non positive grand total is an error", func(t *testing.T) {
		est := completeEstimate()
		est.Financial.GrandTotal = decimal.Zero
		r := Validate(est)
		if r.Valid() {
			t.Fatalf("expected invalid")
		}
		confidenceEq(t, r.Confidence, 0.7)
	})

	t.Run("confidence floors at zero", func(t *testing.T) {
		r := Validate(entities.CanonicalEstimate{})
		if r.Valid() {
			t.Fatalf("expected invalid")
		}
		confidenceEq(t, r.Confidence, 0.0)
	})
}
