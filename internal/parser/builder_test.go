package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"funilaria_xpto/internal/domain/entities"
)

const sampleEMS = `EST|CCC ONE|2026-03-14
CUS|Maria|Souza|11-98877-1122|maria@example.com
INS|Porto Seguro|POL-889123
CLM|CLM-2026-0042|2026-03-01|Carlos Lima|11-3311-9000
VEH|2021|Toyota|Corolla|9BRBL3HE1M0123456|ABC1D23|45210|Silver
PRT|1|Front Bumper Cover|OEM-52119-02980|1|450.00
PRT|2|Headlamp Assembly RH|OEM-81110-02E60|1|380.50|380.50
LAB|1|Replace bumper cover||3.5|60.00|BDY
LAB|2|Refinish bumper||2.0|55.00|PNT
TTL|parts|830.50|labor|320.00|materials|48.20|tax|95.90
DED|500.00|collision
RMK|Customer prefers OEM parts
`

func decEq(t *testing.T, got decimal.Decimal, want string, field string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", field, got, want)
	}
}

func TestParser_Parse(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		est, err := New(nil).Parse(sampleEMS)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if est.Metadata.SourceFormat != entities.SourceFormatEMS {
			t.Fatalf("unexpected source format: %s", est.Metadata.SourceFormat)
		}
		if est.Metadata.SourceSystem != "CCC ONE" || est.Metadata.EstimateDate != "2026-03-14" {
			t.Fatalf("unexpected header metadata: %+v", est.Metadata)
		}
		if est.Metadata.RawLineCount != 12 {
			t.Fatalf("raw line count = %d, want 12", est.Metadata.RawLineCount)
		}
		if est.Metadata.ParsedAt.IsZero() {
			t.Fatalf("expected parsed_at to be set")
		}

		if est.Customer.FirstName != "Maria" || est.Customer.LastName != "Souza" {
			t.Fatalf("unexpected customer: %+v", est.Customer)
		}
		if est.Customer.InsuranceCarrier != "Porto Seguro" || est.Claim.PolicyNumber != "POL-889123" {
			t.Fatalf("unexpected insurance data: %+v %+v", est.Customer, est.Claim)
		}
		if est.Claim.ClaimNumber != "CLM-2026-0042" || est.Claim.LossDate != "2026-03-01" {
			t.Fatalf("unexpected claim: %+v", est.Claim)
		}
		if est.Claim.AdjusterName != "Carlos Lima" {
			t.Fatalf("unexpected adjuster: %+v", est.Claim)
		}

		if est.Vehicle.Year != 2021 || est.Vehicle.Make != "Toyota" || est.Vehicle.Model != "Corolla" {
			t.Fatalf("unexpected vehicle: %+v", est.Vehicle)
		}
		if est.Vehicle.Mileage != 45210 || est.Vehicle.Color != "Silver" {
			t.Fatalf("unexpected vehicle: %+v", est.Vehicle)
		}

		if len(est.Parts) != 2 {
			t.Fatalf("expected 2 part lines, got %d", len(est.Parts))
		}
		first := est.Parts[0]
		if first.LineNumber != 1 || first.Description != "Front Bumper Cover" || first.PartNumber != "OEM-52119-02980" {
			t.Fatalf("unexpected part line: %+v", first)
		}
		decEq(t, first.Quantity, "1", "quantity")
		decEq(t, first.UnitPrice, "450.00", "unit price")
		decEq(t, first.ExtendedPrice, "450.00", "derived extended price")
		decEq(t, est.Parts[1].ExtendedPrice, "380.50", "explicit extended price")

		if len(est.Labor) != 2 {
			t.Fatalf("expected 2 labor lines, got %d", len(est.Labor))
		}
		lab := est.Labor[0]
		if lab.Operation != "Replace bumper cover" || lab.LaborType != entities.LaborTypeBody {
			t.Fatalf("unexpected labor line: %+v", lab)
		}
		decEq(t, lab.Hours, "3.5", "hours")
		decEq(t, lab.Rate, "60.00", "rate")
		decEq(t, lab.ExtendedPrice, "210.00", "labor extended")
		if est.Labor[1].LaborType != entities.LaborTypePaint {
			t.Fatalf("unexpected labor type: %s", est.Labor[1].LaborType)
		}

		decEq(t, est.Financial.PartsTotal, "830.50", "parts total")
		decEq(t, est.Financial.LaborTotal, "320.00", "labor total")
		decEq(t, est.Financial.MaterialsTotal, "48.20", "materials total")
		decEq(t, est.Financial.TaxTotal, "95.90", "tax total")
		decEq(t, est.Financial.Deductible, "500.00", "deductible")
		decEq(t, est.Claim.DeductibleAmount, "500.00", "claim deductible")
		if est.Claim.DeductibleType != "collision" {
			t.Fatalf("unexpected deductible type: %s", est.Claim.DeductibleType)
		}

		// Grand total absent from TTL, derived from the categories.
		decEq(t, est.Financial.GrandTotal, "1294.60", "grand total")

		if len(est.Notes) != 1 || est.Notes[0] != "Customer prefers OEM parts" {
			t.Fatalf("unexpected notes: %v", est.Notes)
		}
		if est.Metadata.UnknownRecords != 0 {
			t.Fatalf("unexpected unknown records: %d", est.Metadata.UnknownRecords)
		}
	})

	t.Run("explicit grand total wins over derivation", func(t *testing.T) {
		est, err := New(nil).Parse("PRT|1|Clip||4|2.00\nTTL|parts|8.00|total|9.50")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		decEq(t, est.Financial.GrandTotal, "9.50", "grand total")
	})

	t.Run("unknown record types are counted and skipped", func(t *testing.T) {
		est, err := New(nil).Parse("EST|Mitchell|2026-01-02\nXYZ|whatever|1\nZZZ|2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Metadata.UnknownRecords != 2 {
			t.Fatalf("unknown records = %d, want 2", est.Metadata.UnknownRecords)
		}
		if est.Metadata.RawLineCount != 3 {
			t.Fatalf("raw line count = %d, want 3", est.Metadata.RawLineCount)
		}
	})

	t.Run("generic LIN records route by category", func(t *testing.T) {
		content := "LIN|1|PART|Molding|2|15.00\nLIN|2|LABOR|Remove trim|1.5|48.00"
		est, err := New(nil).Parse(content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(est.Parts) != 1 || len(est.Labor) != 1 {
			t.Fatalf("expected 1 part and 1 labor, got %d/%d", len(est.Parts), len(est.Labor))
		}
		decEq(t, est.Parts[0].ExtendedPrice, "30.00", "part extended")
		decEq(t, est.Labor[0].ExtendedPrice, "72.00", "labor extended")
		if est.Labor[0].LaborType != entities.LaborTypeOther {
			t.Fatalf("unexpected labor type: %s", est.Labor[0].LaborType)
		}
	})

	t.Run("short records populate what they can", func(t *testing.T) {
		est, err := New(nil).Parse("VEH|2019\nPRT|3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Vehicle.Year != 2019 || est.Vehicle.Make != "" {
			t.Fatalf("unexpected vehicle: %+v", est.Vehicle)
		}
		if len(est.Parts) != 1 || est.Parts[0].LineNumber != 3 {
			t.Fatalf("unexpected parts: %+v", est.Parts)
		}
	})

	t.Run("crlf line endings", func(t *testing.T) {
		est, err := New(nil).Parse("EST|Audatex|2026-02-02\r\nPRT|1|Grille||1|99.00\r\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.Metadata.SourceSystem != "Audatex" || len(est.Parts) != 1 {
			t.Fatalf("crlf content parsed wrong: %+v", est.Metadata)
		}
	})

	t.Run("empty content is a parse error", func(t *testing.T) {
		_, err := New(nil).Parse("   \n \t ")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
		if !strings.Contains(parseErr.Error(), "estimate parse failed") {
			t.Fatalf("unexpected message: %s", parseErr.Error())
		}
	})
}
