package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"funilaria_xpto/internal/adapter/http/handlers/mocks"
	"funilaria_xpto/internal/domain/entities"
	"funilaria_xpto/internal/usecase"
)

func TestDeductiblePaymentHandler_CreatePaymentByClaimID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json body", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeductiblePaymentUseCase(ctrl)
		h := NewDeductiblePaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims/:claim_id/deductible-payments", h.CreatePaymentByClaimID)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/deductible-payments", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body becomes empty payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeductiblePaymentUseCase(ctrl)
		h := NewDeductiblePaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims/:claim_id/deductible-payments", h.CreatePaymentByClaimID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "claim-1", json.RawMessage("{}")).
			Return(entities.DeductiblePayment{ID: "pay-1", ClaimID: "claim-1", Status: entities.PaymentStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/deductible-payments", bytes.NewBufferString(""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mp_payload envelope is unwrapped", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeductiblePaymentUseCase(ctrl)
		h := NewDeductiblePaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims/:claim_id/deductible-payments", h.CreatePaymentByClaimID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "claim-1", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.DeductiblePayment{ID: "pay-1", Status: entities.PaymentStatusAprovado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/deductible-payments",
			bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase errors map to status codes", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		cases := []struct {
			name string
			err  error
			want int
		}{
			{name: "no version", err: usecase.ErrVersionNotFound, want: http.StatusNotFound},
			{name: "no deductible", err: usecase.ErrNoDeductibleDue, want: http.StatusConflict},
			{name: "unauthorized", err: usecase.ErrPaymentGatewayUnauthorized, want: http.StatusUnauthorized},
			{name: "not configured", err: usecase.ErrPaymentGatewayNotConfigured, want: http.StatusServiceUnavailable},
			{name: "internal", err: errors.New("boom"), want: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIDeductiblePaymentUseCase(ctrl)
				h := NewDeductiblePaymentHandler(uc, nil)

				r := gin.New()
				r.POST("/v1/claims/:claim_id/deductible-payments", h.CreatePaymentByClaimID)

				uc.EXPECT().CreateAndApprove(gomock.Any(), "claim-1", gomock.Any()).
					Return(entities.DeductiblePayment{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/deductible-payments", bytes.NewBufferString(`{}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
			})
		}
	})

	t.Run("success body", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeductiblePaymentUseCase(ctrl)
		h := NewDeductiblePaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims/:claim_id/deductible-payments", h.CreatePaymentByClaimID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "claim-1", gomock.Any()).Return(entities.DeductiblePayment{
			ID:      "pay-1",
			ClaimID: "claim-1",
			Amount:  decimal.RequireFromString("500.00"),
			Date:    time.Now().UTC(),
			Status:  entities.PaymentStatusAprovado,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/claim-1/deductible-payments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["claim_id"] != "claim-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["amount"] != "500" {
			t.Fatalf("expected exact decimal amount, got %v", body["amount"])
		}
	})
}

func TestDeductiblePaymentHandler_GetPaymentByClaimID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeductiblePaymentUseCase(ctrl)
		h := NewDeductiblePaymentHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims/:claim_id/deductible-payments", h.GetPaymentByClaimID)

		uc.EXPECT().ListByClaimID(gomock.Any(), "claim-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/claim-1/deductible-payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the most recent payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeductiblePaymentUseCase(ctrl)
		h := NewDeductiblePaymentHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims/:claim_id/deductible-payments", h.GetPaymentByClaimID)

		older := time.Now().UTC().Add(-time.Hour)
		newer := time.Now().UTC()
		uc.EXPECT().ListByClaimID(gomock.Any(), "claim-1").Return([]entities.DeductiblePayment{
			{ID: "pay-1", Date: older},
			{ID: "pay-2", Date: newer},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/claim-1/deductible-payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-2" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
