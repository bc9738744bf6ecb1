package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// DeductiblePayment records the customer paying the insurance deductible for
// a claim. The amount always comes from the latest estimate version's
// financial snapshot, never from the caller.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (claim_id-index): claim_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original provider body (JSON) for audit.
//   - MPPayload is an optional parsed representation for querying/debugging.
type DeductiblePayment struct {
	ID      string          `json:"id"`
	ClaimID string          `json:"claim_id"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Status  PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
