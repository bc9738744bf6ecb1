package response

import (
	"time"

	"github.com/shopspring/decimal"

	"funilaria_xpto/internal/domain/entities"
)

type DeductiblePaymentResponse struct {
	PaymentID   string          `json:"payment_id"`
	ID          string          `json:"id"`
	ClaimID     string          `json:"claim_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDeductiblePayment(p entities.DeductiblePayment) DeductiblePaymentResponse {
	return DeductiblePaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		ClaimID:      p.ClaimID,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
