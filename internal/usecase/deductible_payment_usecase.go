package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"funilaria_xpto/internal/domain/entities"
	"funilaria_xpto/internal/usecase/interfaces"
)

var (
	ErrDeductiblePaymentNotFound   = errors.New("deductible payment not found")
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrInvalidMPPayload            = errors.New("invalid mercado pago payload")
	ErrNoDeductibleDue             = errors.New("no deductible due for claim")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

//go:generate mockgen -source=deductible_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_deductible_payment_usecase.go -package=mocks

// IDeductiblePaymentUseCase charges the customer's insurance deductible for a
// claim and records the provider outcome.
//
// The amount is never taken from the caller: it always comes from the latest
// estimate version's financial snapshot, which is the source of truth for
// what the shop may collect.
type IDeductiblePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, claimID string, mpPayload json.RawMessage) (entities.DeductiblePayment, error)
	GetByID(ctx context.Context, id string) (entities.DeductiblePayment, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.DeductiblePayment, error)
}

type DeductiblePaymentUseCase struct {
	repo        interfaces.IDeductiblePaymentRepository
	versionRepo interfaces.IEstimateVersionRepository
	gateway     interfaces.IPaymentGateway
	logger      *zap.Logger
}

var _ IDeductiblePaymentUseCase = (*DeductiblePaymentUseCase)(nil)

func NewDeductiblePaymentUseCase(
	repo interfaces.IDeductiblePaymentRepository,
	versionRepo interfaces.IEstimateVersionRepository,
	gateway interfaces.IPaymentGateway,
	logger *zap.Logger,
) *DeductiblePaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeductiblePaymentUseCase{repo: repo, versionRepo: versionRepo, gateway: gateway, logger: logger}
}

func (u *DeductiblePaymentUseCase) CreateAndApprove(ctx context.Context, claimID string, mpPayload json.RawMessage) (entities.DeductiblePayment, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.DeductiblePayment{}, ErrInvalidClaimID
	}

	mockMode := isPaymentGatewayMockEnabled()
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			return entities.DeductiblePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DeductiblePayment{}, ErrPaymentGatewayNotConfigured
	}

	latest, err := u.versionRepo.GetLatestVersion(ctx, claimID)
	if err != nil {
		return entities.DeductiblePayment{}, err
	}
	if latest.ID == "" {
		return entities.DeductiblePayment{}, ErrVersionNotFound
	}

	amount := latest.Snapshot.Financial.Deductible
	if !amount.IsPositive() {
		return entities.DeductiblePayment{}, ErrNoDeductibleDue
	}

	// Mercado Pago uses external_reference to reconcile events; the charged
	// amount is always the deductible from the stored snapshot.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = claimID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Franquia sinistro %s", claimID)
		}
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)
	if mockMode {
		u.logger.Info("payment mock mode enabled, skipping gateway", zap.String("claim_id", claimID))
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		mockResp := map[string]any{
			"id":                 providerPaymentID,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": claimID,
			"transaction_amount": amount.InexactFloat64(),
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DeductiblePayment{}, mErr
		}
		providerResp = b
	} else {
		var providerStatus string
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			u.logger.Warn("payment gateway failed",
				zap.String("claim_id", claimID),
				zap.Error(err))
			switch {
			case isGatewayUnauthorized(err):
				return entities.DeductiblePayment{}, ErrPaymentGatewayUnauthorized
			case isGatewayBadRequest(err):
				return entities.DeductiblePayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DeductiblePayment{}, err
		}
		u.logger.Info("payment gateway success",
			zap.String("claim_id", claimID),
			zap.String("provider_payment_id", providerPaymentID),
			zap.String("provider_status", providerStatus))
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("provider response unmarshal failed", zap.String("claim_id", claimID), zap.Error(err))
	}

	p := entities.DeductiblePayment{
		ID:           providerPaymentID,
		ClaimID:      claimID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *DeductiblePaymentUseCase) GetByID(ctx context.Context, id string) (entities.DeductiblePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeductiblePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DeductiblePayment{}, err
	}
	if p.ID == "" {
		return entities.DeductiblePayment{}, ErrDeductiblePaymentNotFound
	}
	return p, nil
}

func (u *DeductiblePaymentUseCase) ListByClaimID(ctx context.Context, claimID string) ([]entities.DeductiblePayment, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return nil, ErrInvalidClaimID
	}
	return u.repo.ListByClaimID(ctx, claimID)
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

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
