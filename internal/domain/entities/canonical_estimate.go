package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceFormat identifies which interchange format an estimate was parsed from.
//
// EMS is the pipe-delimited tabular export; BMS is the XML export. Both
// parsers must produce the same CanonicalEstimate shape — that struct is the
// contract boundary between them.

type SourceFormat string

const (
	SourceFormatEMS SourceFormat = "EMS"
	SourceFormatBMS SourceFormat = "BMS"
)

// LaborType classifies a labor line by repair discipline.

type LaborType string

const (
	LaborTypeBody       LaborType = "BODY"
	LaborTypePaint      LaborType = "PAINT"
	LaborTypeFrame      LaborType = "FRAME"
	LaborTypeMechanical LaborType = "MECHANICAL"
	LaborTypeGlass      LaborType = "GLASS"
	LaborTypeElectrical LaborType = "ELECTRICAL"
	LaborTypeOther      LaborType = "OTHER"
)

// Customer holds the vehicle owner as reported by the estimating system.
// Every field is optional; estimating systems routinely omit contact data.
type Customer struct {
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	InsuranceCarrier string `json:"insurance_carrier,omitempty"`
}

// Vehicle holds the damaged vehicle identification fields.
type Vehicle struct {
	Year         int    `json:"year,omitempty"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	VIN          string `json:"vin,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
	Mileage      int    `json:"mileage,omitempty"`
	Color        string `json:"color,omitempty"`
}

// ClaimInfo holds the insurance claim attributes carried inside the estimate
// file. Dates stay as raw vendor strings: formats vary per estimating system
// and nothing downstream does date arithmetic on them.
type ClaimInfo struct {
	ClaimNumber      string          `json:"claim_number,omitempty"`
	PolicyNumber     string          `json:"policy_number,omitempty"`
	LossDate         string          `json:"loss_date,omitempty"`
	AdjusterName     string          `json:"adjuster_name,omitempty"`
	AdjusterPhone    string          `json:"adjuster_phone,omitempty"`
	DeductibleAmount decimal.Decimal `json:"deductible_amount"`
	DeductibleType   string          `json:"deductible_type,omitempty"`
}

// PartLine is one replacement-part line item.
type PartLine struct {
	LineNumber    int             `json:"line_number"`
	Description   string          `json:"description"`
	PartNumber    string          `json:"part_number,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ExtendedPrice decimal.Decimal `json:"extended_price"`
}

// LaborLine is one labor operation line item.
type LaborLine struct {
	LineNumber    int             `json:"line_number"`
	Operation     string          `json:"operation"`
	Description   string          `json:"description,omitempty"`
	Hours         decimal.Decimal `json:"hours"`
	Rate          decimal.Decimal `json:"rate"`
	ExtendedPrice decimal.Decimal `json:"extended_price"`
	LaborType     LaborType       `json:"labor_type"`
}

// FinancialSummary carries the estimate totals by category.
//
// Monetary representation:
//   - Every amount is a decimal.Decimal. Binary floating point is forbidden
//     on money paths so that diffs between versions are stable and snapshots
//     round-trip exactly.
type FinancialSummary struct {
	PartsTotal     decimal.Decimal `json:"parts_total"`
	LaborTotal     decimal.Decimal `json:"labor_total"`
	MaterialsTotal decimal.Decimal `json:"materials_total"`
	TaxTotal       decimal.Decimal `json:"tax_total"`
	Deductible     decimal.Decimal `json:"deductible"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

// EstimateMetadata records parse provenance.
type EstimateMetadata struct {
	SourceFormat   SourceFormat `json:"source_format"`
	SourceSystem   string       `json:"source_system,omitempty"`
	EstimateDate   string       `json:"estimate_date,omitempty"`
	ParsedAt       time.Time    `json:"parsed_at"`
	RawLineCount   int          `json:"raw_line_count"`
	UnknownRecords int          `json:"unknown_records"`
}

// CanonicalEstimate is the format-agnostic, normalized representation of one
// imported estimate. It is immutable once returned by a parser: the import
// pipeline treats it as a value and the version store persists it verbatim as
// an audit snapshot.
type CanonicalEstimate struct {
	Customer  Customer         `json:"customer"`
	Vehicle   Vehicle          `json:"vehicle"`
	Claim     ClaimInfo        `json:"claim"`
	Parts     []PartLine       `json:"parts"`
	Labor     []LaborLine      `json:"labor"`
	Financial FinancialSummary `json:"financial"`
	Notes     []string         `json:"notes,omitempty"`
	Metadata  EstimateMetadata `json:"metadata"`
}

// ParseLaborType maps a vendor labor-type code to the canonical enum.
// Unrecognized codes fall back to OTHER rather than failing the line.
func ParseLaborType(code string) LaborType {
	switch LaborType(code) {
	case LaborTypeBody, LaborTypePaint, LaborTypeFrame, LaborTypeMechanical, LaborTypeGlass, LaborTypeElectrical:
		return LaborType(code)
	}
	switch code {
	case "BDY":
		return LaborTypeBody
	case "PNT", "REFINISH":
		return LaborTypePaint
	case "FRM":
		return LaborTypeFrame
	case "MECH":
		return LaborTypeMechanical
	case "GLS":
		return LaborTypeGlass
	case "ELE", "ELEC":
		return LaborTypeElectrical
	}
	return LaborTypeOther
}
