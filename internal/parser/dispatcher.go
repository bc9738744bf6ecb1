package parser

import (
	"strings"

	"go.uber.org/zap"

	"funilaria_xpto/internal/domain/entities"
)

// recordHandler applies one tokenized record (minus its type code) to the
// in-progress estimate. Handlers use positional access guarded by length
// checks: a record shorter than expected populates fewer attributes and
// never indexes out of bounds.
type recordHandler func(b *estimateBuilder, fields []string)

// recordHandlers maps EMS record-type codes to their handlers. Codes are
// matched case-insensitively. Anything not in this table is warned about and
// skipped — parsing is total over well-formed-but-unrecognized input.
var recordHandlers = map[string]recordHandler{
	"EST": (*estimateBuilder).applyHeader,
	"VEH": (*estimateBuilder).applyVehicle,
	"CUS": (*estimateBuilder).applyCustomer,
	"INS": (*estimateBuilder).applyInsurance,
	"CLM": (*estimateBuilder).applyClaim,
	"LIN": (*estimateBuilder).applyGenericLine,
	"PRT": (*estimateBuilder).applyPartLine,
	"LAB": (*estimateBuilder).applyLaborLine,
	"TTL": (*estimateBuilder).applyTotals,
	"TAX": (*estimateBuilder).applyTax,
	"DED": (*estimateBuilder).applyDeductible,
	"RMK": (*estimateBuilder).applyNote,
}

func (p *Parser) dispatch(b *estimateBuilder, fields []string) {
	code := strings.ToUpper(strings.TrimSpace(fields[0]))
	handler, ok := recordHandlers[code]
	if !ok {
		b.est.Metadata.UnknownRecords++
		p.logger.Warn("skipping unrecognized estimate record type",
			zap.String("record_type", code),
			zap.Int("field_count", len(fields)))
		return
	}
	handler(b, fields[1:])
}

// EST|<source system>|<estimate date>
func (b *estimateBuilder) applyHeader(fields []string) {
	if len(fields) > 0 {
		b.est.Metadata.SourceSystem = fields[0]
	}
	if len(fields) > 1 {
		b.est.Metadata.EstimateDate = fields[1]
	}
}

// VEH|<year>|<make>|<model>|<vin>|<license>|<mileage>|<color>
func (b *estimateBuilder) applyVehicle(fields []string) {
	if len(fields) > 0 {
		b.est.Vehicle.Year = parseInt(fields[0])
	}
	if len(fields) > 1 {
		b.est.Vehicle.Make = fields[1]
	}
	if len(fields) > 2 {
		b.est.Vehicle.Model = fields[2]
	}
	if len(fields) > 3 {
		b.est.Vehicle.VIN = fields[3]
	}
	if len(fields) > 4 {
		b.est.Vehicle.LicensePlate = fields[4]
	}
	if len(fields) > 5 {
		b.est.Vehicle.Mileage = parseInt(fields[5])
	}
	if len(fields) > 6 {
		b.est.Vehicle.Color = fields[6]
	}
}

// CUS|<first name>|<last name>|<phone>|<email>
func (b *estimateBuilder) applyCustomer(fields []string) {
	if len(fields) > 0 {
		b.est.Customer.FirstName = fields[0]
	}
	if len(fields) > 1 {
		b.est.Customer.LastName = fields[1]
	}
	if len(fields) > 2 {
		b.est.Customer.Phone = fields[2]
	}
	if len(fields) > 3 {
		b.est.Customer.Email = fields[3]
	}
}

// INS|<carrier>|<policy number>
func (b *estimateBuilder) applyInsurance(fields []string) {
	if len(fields) > 0 {
		b.est.Customer.InsuranceCarrier = fields[0]
	}
	if len(fields) > 1 {
		b.est.Claim.PolicyNumber = fields[1]
	}
}

// CLM|<claim number>|<loss date>|<adjuster name>|<adjuster phone>
func (b *estimateBuilder) applyClaim(fields []string) {
	if len(fields) > 0 {
		b.est.Claim.ClaimNumber = fields[0]
	}
	if len(fields) > 1 {
		b.est.Claim.LossDate = fields[1]
	}
	if len(fields) > 2 {
		b.est.Claim.AdjusterName = fields[2]
	}
	if len(fields) > 3 {
		b.est.Claim.AdjusterPhone = fields[3]
	}
}

// LIN|<line>|<PART or LABOR>|<description>|<qty or hours>|<unit price or rate>
//
// Generic line items show up in exports from older estimating systems that
// don't distinguish PRT/LAB records. The category field decides which
// collection the line lands in; anything unrecognized is treated as a part.
func (b *estimateBuilder) applyGenericLine(fields []string) {
	category := ""
	if len(fields) > 1 {
		category = strings.ToUpper(strings.TrimSpace(fields[1]))
	}

	if category == "LABOR" {
		line := entities.LaborLine{LaborType: entities.LaborTypeOther}
		if len(fields) > 0 {
			line.LineNumber = parseInt(fields[0])
		}
		if len(fields) > 2 {
			line.Operation = fields[2]
		}
		if len(fields) > 3 {
			line.Hours = parseDecimal(fields[3])
		}
		if len(fields) > 4 {
			line.Rate = parseDecimal(fields[4])
		}
		line.ExtendedPrice = line.Hours.Mul(line.Rate)
		b.est.Labor = append(b.est.Labor, line)
		return
	}

	line := entities.PartLine{}
	if len(fields) > 0 {
		line.LineNumber = parseInt(fields[0])
	}
	if len(fields) > 2 {
		line.Description = fields[2]
	}
	if len(fields) > 3 {
		line.Quantity = parseDecimal(fields[3])
	}
	if len(fields) > 4 {
		line.UnitPrice = parseDecimal(fields[4])
	}
	line.ExtendedPrice = line.Quantity.Mul(line.UnitPrice)
	b.est.Parts = append(b.est.Parts, line)
}

// PRT|<line>|<description>|<part number>|<qty>|<unit price>|[extended]
func (b *estimateBuilder) applyPartLine(fields []string) {
	var line entities.PartLine
	if len(fields) > 0 {
		line.LineNumber = parseInt(fields[0])
	}
	if len(fields) > 1 {
		line.Description = fields[1]
	}
	if len(fields) > 2 {
		line.PartNumber = fields[2]
	}
	if len(fields) > 3 {
		line.Quantity = parseDecimal(fields[3])
	}
	if len(fields) > 4 {
		line.UnitPrice = parseDecimal(fields[4])
	}
	if len(fields) > 5 && strings.TrimSpace(fields[5]) != "" {
		line.ExtendedPrice = parseDecimal(fields[5])
	} else {
		line.ExtendedPrice = line.Quantity.Mul(line.UnitPrice)
	}
	b.est.Parts = append(b.est.Parts, line)
}

// LAB|<line>|<operation>|<description>|<hours>|<rate>|[labor type]
func (b *estimateBuilder) applyLaborLine(fields []string) {
	line := entities.LaborLine{LaborType: entities.LaborTypeOther}
	if len(fields) > 0 {
		line.LineNumber = parseInt(fields[0])
	}
	if len(fields) > 1 {
		line.Operation = fields[1]
	}
	if len(fields) > 2 {
		line.Description = fields[2]
	}
	if len(fields) > 3 {
		line.Hours = parseDecimal(fields[3])
	}
	if len(fields) > 4 {
		line.Rate = parseDecimal(fields[4])
	}
	if len(fields) > 5 {
		line.LaborType = entities.ParseLaborType(strings.ToUpper(strings.TrimSpace(fields[5])))
	}
	line.ExtendedPrice = line.Hours.Mul(line.Rate)
	b.est.Labor = append(b.est.Labor, line)
}

// TTL|<label>|<amount>|<label>|<amount>|...
//
// Totals are label/value pairs so vendors may emit categories in any order,
// repeat none or all of them, and add categories we don't track. Labels are
// matched case-insensitively; unrecognized labels are ignored.
func (b *estimateBuilder) applyTotals(fields []string) {
	for i := 0; i+1 < len(fields); i += 2 {
		amount := parseDecimal(fields[i+1])
		switch strings.ToLower(strings.TrimSpace(fields[i])) {
		case "parts":
			b.est.Financial.PartsTotal = amount
		case "labor":
			b.est.Financial.LaborTotal = amount
		case "materials":
			b.est.Financial.MaterialsTotal = amount
		case "tax":
			b.est.Financial.TaxTotal = amount
		case "total":
			b.est.Financial.GrandTotal = amount
		}
	}
}

// TAX|<amount>
func (b *estimateBuilder) applyTax(fields []string) {
	if len(fields) > 0 {
		b.est.Financial.TaxTotal = parseDecimal(fields[0])
	}
}

// DED|<amount>|<deductible type>
func (b *estimateBuilder) applyDeductible(fields []string) {
	if len(fields) > 0 {
		amount := parseDecimal(fields[0])
		b.est.Financial.Deductible = amount
		b.est.Claim.DeductibleAmount = amount
	}
	if len(fields) > 1 {
		b.est.Claim.DeductibleType = fields[1]
	}
}

// RMK|<note>|<note>|...
func (b *estimateBuilder) applyNote(fields []string) {
	for _, f := range fields {
		if f != "" {
			b.est.Notes = append(b.est.Notes, f)
		}
	}
}
