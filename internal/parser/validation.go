package parser

import (
	"funilaria_xpto/internal/domain/entities"
)

// ValidationIssue is one advisory finding from post-parse validation.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationReport accumulates post-parse findings. Warnings are degraded but
// importable data; errors mark the import invalid, though callers still get
// the parsed estimate for inspection. Confidence starts at 1.0 and drops per
// finding (0.1 per warning, 0.3 per error), floored at zero.
type ValidationReport struct {
	Warnings   []ValidationIssue `json:"warnings,omitempty"`
	Errors     []ValidationIssue `json:"errors,omitempty"`
	Confidence float64           `json:"confidence"`
}

// Valid reports whether the estimate may be persisted as a version.
func (r ValidationReport) Valid() bool { return len(r.Errors) == 0 }

const (
	warningPenalty = 0.1
	errorPenalty   = 0.3
)

// Validate inspects a parsed estimate for the fields the shop actually needs
// downstream. It never rejects outright — the report is advisory and the
// caller decides what to do with a low-confidence import.
func Validate(est entities.CanonicalEstimate) ValidationReport {
	var r ValidationReport

	if est.Customer.FirstName == "" && est.Customer.LastName == "" {
		r.warn("customer.name", "customer name is missing")
	}
	if est.Vehicle.Year == 0 {
		r.warn("vehicle.year", "vehicle year is missing")
	}
	if est.Vehicle.Make == "" {
		r.warn("vehicle.make", "vehicle make is missing")
	}
	if est.Vehicle.Model == "" {
		r.warn("vehicle.model", "vehicle model is missing")
	}
	if est.Claim.ClaimNumber == "" {
		r.warn("claim.claim_number", "claim number is missing")
	}

	if len(est.Parts) == 0 && len(est.Labor) == 0 {
		r.fail("parts", "estimate contains no part or labor lines")
	} else {
		if len(est.Parts) == 0 {
			r.warn("parts", "estimate contains no part lines")
		}
		if len(est.Labor) == 0 {
			r.warn("labor", "estimate contains no labor lines")
		}
	}

	if !est.Financial.GrandTotal.IsPositive() {
		r.fail("financial.grand_total", "estimate total is zero or negative")
	}

	r.Confidence = 1.0 - warningPenalty*float64(len(r.Warnings)) - errorPenalty*float64(len(r.Errors))
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	return r
}

func (r *ValidationReport) warn(field, message string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Field: field, Message: message})
}

func (r *ValidationReport) fail(field, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Message: message})
}
