package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"funilaria_xpto/internal/domain/entities"
)

func TestFromDeductiblePayment(t *testing.T) {
	now := time.Now().UTC()
	got := FromDeductiblePayment(entities.DeductiblePayment{
		ID:           "pay-1",
		ClaimID:      "claim-1",
		Amount:       decimal.RequireFromString("500.00"),
		Date:         now,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: json.RawMessage(`{"id":"mp-1"}`),
		MPPayload:    map[string]interface{}{"id": "mp-1"},
	})

	if got.PaymentID != "pay-1" || got.ID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", got)
	}
	if got.ClaimID != "claim-1" || got.Status != "aprovado" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("500.00")) {
		t.Fatalf("unexpected amount: %s", got.Amount)
	}
	if !got.PaymentDate.Equal(now) || !got.Date.Equal(now) {
		t.Fatalf("unexpected dates: %+v", got)
	}
	if got.MPPayloadRaw != `{"id":"mp-1"}` {
		t.Fatalf("unexpected raw payload: %s", got.MPPayloadRaw)
	}
}
