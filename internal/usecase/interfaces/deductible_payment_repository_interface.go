package interfaces

import (
	"context"

	"funilaria_xpto/internal/domain/entities"
)

//go:generate mockgen -source=deductible_payment_repository_interface.go -destination=mocks/mock_deductible_payment_repository.go -package=mocks

// IDeductiblePaymentRepository abstracts DynamoDB persistence for
// DeductiblePayment.
type IDeductiblePaymentRepository interface {
	Create(ctx context.Context, p entities.DeductiblePayment) (entities.DeductiblePayment, error)
	GetByID(ctx context.Context, id string) (entities.DeductiblePayment, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.DeductiblePayment, error)
}
