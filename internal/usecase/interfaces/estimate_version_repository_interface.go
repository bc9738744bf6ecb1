package interfaces

import (
	"context"
	"errors"

	"funilaria_xpto/internal/domain/entities"
)

// ErrVersionConflict is returned by CreateVersion when another import won the
// race for the same (claim_id, version_number). The caller must re-read the
// latest version, recompute its diff and retry — never overwrite.
var ErrVersionConflict = errors.New("estimate version number conflict")

//go:generate mockgen -source=estimate_version_repository_interface.go -destination=mocks/mock_estimate_version_repository.go -package=mocks

// IEstimateVersionRepository abstracts DynamoDB persistence for a claim's
// append-only estimate version chain.
//
// Contract:
//   - No two versions of one claim may ever share a version number; the
//     implementation enforces this with a conditional write and surfaces a
//     collision as ErrVersionConflict.
//   - CreateVersion persists the version row and its line item change rows
//     in the same logical transaction.
//   - GetLatestVersion must be a consistent read: diffs are computed against
//     the highest version number existing at import time, not a stale one.
type IEstimateVersionRepository interface {
	GetLatestVersion(ctx context.Context, claimID string) (entities.EstimateVersion, error)
	CreateVersion(ctx context.Context, v entities.EstimateVersion, changes []entities.LineItemChange) (entities.EstimateVersion, error)
	GetHistory(ctx context.Context, claimID string) ([]entities.EstimateVersion, error)
	GetChanges(ctx context.Context, versionID string) ([]entities.LineItemChange, error)
}
