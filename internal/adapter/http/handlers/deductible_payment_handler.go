package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "funilaria_xpto/internal/adapter/http/dto/response"
	"funilaria_xpto/internal/usecase"
	"funilaria_xpto/pkg"
)

// DeductiblePaymentHandler handles HTTP requests for deductible payments.

type DeductiblePaymentHandler struct {
	usecase usecase.IDeductiblePaymentUseCase
	logger  *zap.Logger
}

func NewDeductiblePaymentHandler(uc usecase.IDeductiblePaymentUseCase, logger *zap.Logger) *DeductiblePaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeductiblePaymentHandler{usecase: uc, logger: logger}
}

// CreatePaymentByClaimID charges the claim's deductible using claim_id in path.
// The amount always comes from the latest estimate version, never the payload.
func (h *DeductiblePaymentHandler) CreatePaymentByClaimID(c *gin.Context) {
	claimID := c.Param("claim_id")
	mockMode := isPaymentGatewayMockEnabled()

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			h.logger.Warn("payload invalid in mock mode, falling back to empty payload",
				zap.String("claim_id", claimID), zap.Error(err))
			mpPayload = json.RawMessage("{}")
		} else {
			h.logger.Warn("invalid payment payload", zap.String("claim_id", claimID), zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), claimID, mpPayload)
	if err != nil {
		h.logger.Warn("deductible payment failed", zap.String("claim_id", claimID), zap.Error(err))
		appErr := mapDeductiblePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("deductible payment created",
		zap.String("claim_id", claimID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromDeductiblePayment(created))
}

// GetPaymentByClaimID returns the latest deductible payment for a claim.
func (h *DeductiblePaymentHandler) GetPaymentByClaimID(c *gin.Context) {
	claimID := c.Param("claim_id")

	payments, err := h.usecase.ListByClaimID(c.Request.Context(), claimID)
	if err != nil {
		appErr := mapDeductiblePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromDeductiblePayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDeductiblePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrVersionNotFound):
		return pkg.NewDomainErrorSimple("VERSION_NOT_FOUND", "No estimate version found for this claim", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoDeductibleDue):
		return pkg.NewDomainErrorSimple("NO_DEDUCTIBLE_DUE", "Latest estimate carries no deductible", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeductiblePaymentNotFound), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
