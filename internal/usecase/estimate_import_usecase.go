package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"funilaria_xpto/internal/diff"
	"funilaria_xpto/internal/domain/entities"
	"funilaria_xpto/internal/parser"
	"funilaria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidClaimID          = errors.New("invalid claim_id")
	ErrInvalidJobID            = errors.New("invalid job_id")
	ErrInvalidVersionID        = errors.New("invalid version id")
	ErrEstimateInvalid         = errors.New("estimate failed validation")
	ErrVersionNotFound         = errors.New("estimate version not found")
	ErrVersionRetriesExhausted = errors.New("estimate version conflict retries exhausted")
)

// maxVersionRetries bounds how often an import re-reads the chain head after
// losing a version-number race to a concurrent import of the same claim.
const maxVersionRetries = 3

// ImportResult is what the caller gets back from one import: the persisted
// version, the parsed estimate, the diff against the previous version (nil on
// version 1) and the validation report — the report is always populated, even
// when the import was rejected.
type ImportResult struct {
	Version    entities.EstimateVersion
	Estimate   entities.CanonicalEstimate
	Diff       *diff.EstimateDiff
	Validation parser.ValidationReport
}

//go:generate mockgen -source=estimate_import_usecase.go -destination=../adapter/http/handlers/mocks/mock_estimate_import_usecase.go -package=mocks

// IEstimateImportUseCase exposes the estimate import pipeline and the version
// chain queries.
//
// Operations:
//   - "import estimate file" (initial or supplement) => ImportEstimate()
//   - version chain inspection => GetLatest() / GetHistory() / GetChanges()
type IEstimateImportUseCase interface {
	ImportEstimate(ctx context.Context, claimID, jobID, content string) (ImportResult, error)
	GetLatest(ctx context.Context, claimID string) (entities.EstimateVersion, error)
	GetHistory(ctx context.Context, claimID string) ([]entities.EstimateVersion, error)
	GetChanges(ctx context.Context, versionID string) ([]entities.LineItemChange, error)
}

type EstimateImportUseCase struct {
	repo   interfaces.IEstimateVersionRepository
	parser *parser.Parser
	engine *diff.Engine
	logger *zap.Logger
}

var _ IEstimateImportUseCase = (*EstimateImportUseCase)(nil)

func NewEstimateImportUseCase(repo interfaces.IEstimateVersionRepository, logger *zap.Logger) *EstimateImportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateImportUseCase{
		repo:   repo,
		parser: parser.New(logger),
		engine: diff.NewEngine(),
		logger: logger,
	}
}

// ImportEstimate parses one EMS export and appends it to the claim's version
// chain.
//
// The first version of a claim persists with reason "initial" and no diff;
// every later one is a "supplement" diffed against the chain head read just
// before the write. A lost version-number race re-reads the head and
// recomputes the diff, so concurrent supplements serialize cleanly.
//
// Validation errors (not warnings) reject the import: nothing is persisted,
// but the parsed estimate and the report are still returned alongside
// ErrEstimateInvalid so the caller can show the shop what was wrong.
func (u *EstimateImportUseCase) ImportEstimate(ctx context.Context, claimID, jobID, content string) (ImportResult, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return ImportResult{}, ErrInvalidClaimID
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ImportResult{}, ErrInvalidJobID
	}

	est, err := u.parser.Parse(content)
	if err != nil {
		u.logger.Warn("estimate parse failed", zap.String("claim_id", claimID), zap.Error(err))
		return ImportResult{}, err
	}

	report := parser.Validate(est)
	if !report.Valid() {
		u.logger.Warn("estimate rejected by validation",
			zap.String("claim_id", claimID),
			zap.Int("errors", len(report.Errors)),
			zap.Float64("confidence", report.Confidence))
		return ImportResult{Estimate: est, Validation: report}, ErrEstimateInvalid
	}

	for attempt := 1; attempt <= maxVersionRetries; attempt++ {
		latest, err := u.repo.GetLatestVersion(ctx, claimID)
		if err != nil {
			return ImportResult{}, err
		}

		reason := entities.RevisionReasonInitial
		var d *diff.EstimateDiff
		var summary *entities.DiffSummary
		if latest.ID != "" {
			reason = entities.RevisionReasonSupplement
			computed := u.engine.Diff(latest.Snapshot, est)
			d = &computed
			summary = &entities.DiffSummary{
				HasChanges:        computed.Summary.HasChanges,
				TotalChange:       computed.Summary.TotalChange,
				PercentChange:     computed.Summary.PercentChange,
				LineItemsAdded:    computed.Summary.LineItemsAdded,
				LineItemsRemoved:  computed.Summary.LineItemsRemoved,
				LineItemsModified: computed.Summary.LineItemsModified,
			}
		}

		v := entities.EstimateVersion{
			ID:             uuid.NewString(),
			ClaimID:        claimID,
			JobID:          jobID,
			VersionNumber:  latest.VersionNumber + 1,
			RevisionReason: reason,
			Snapshot:       est,
			DiffSummary:    summary,
			CreatedAt:      time.Now().UTC(),
		}

		var changes []entities.LineItemChange
		if d != nil {
			changes = lineItemChanges(v.ID, *d)
		}

		created, err := u.repo.CreateVersion(ctx, v, changes)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.logger.Warn("lost version number race, retrying import",
				zap.String("claim_id", claimID),
				zap.Int("contended_version", v.VersionNumber),
				zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return ImportResult{}, err
		}

		u.logger.Info("estimate version persisted",
			zap.String("claim_id", claimID),
			zap.String("version_id", created.ID),
			zap.Int("version_number", created.VersionNumber),
			zap.String("revision_reason", string(created.RevisionReason)),
			zap.Int("line_item_changes", len(changes)))
		return ImportResult{Version: created, Estimate: est, Diff: d, Validation: report}, nil
	}

	return ImportResult{Estimate: est, Validation: report}, ErrVersionRetriesExhausted
}

func (u *EstimateImportUseCase) GetLatest(ctx context.Context, claimID string) (entities.EstimateVersion, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.EstimateVersion{}, ErrInvalidClaimID
	}

	latest, err := u.repo.GetLatestVersion(ctx, claimID)
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	if latest.ID == "" {
		return entities.EstimateVersion{}, ErrVersionNotFound
	}
	return latest, nil
}

func (u *EstimateImportUseCase) GetHistory(ctx context.Context, claimID string) ([]entities.EstimateVersion, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return nil, ErrInvalidClaimID
	}
	return u.repo.GetHistory(ctx, claimID)
}

func (u *EstimateImportUseCase) GetChanges(ctx context.Context, versionID string) ([]entities.LineItemChange, error) {
	versionID = strings.TrimSpace(versionID)
	if versionID == "" {
		return nil, ErrInvalidVersionID
	}
	return u.repo.GetChanges(ctx, versionID)
}

// lineItemChanges flattens a diff into the persisted per-line change rows.
// Rows exist only for added/removed/modified lines; unchanged lines are not
// stored.
func lineItemChanges(versionID string, d diff.EstimateDiff) []entities.LineItemChange {
	changes := make([]entities.LineItemChange, 0,
		len(d.Parts.Added)+len(d.Parts.Removed)+len(d.Parts.Modified)+
			len(d.Labor.Added)+len(d.Labor.Removed)+len(d.Labor.Modified))

	for _, p := range d.Parts.Added {
		changes = append(changes, entities.LineItemChange{
			ID:              uuid.NewString(),
			VersionID:       versionID,
			LineNumber:      p.LineNumber,
			ItemType:        entities.ItemTypePart,
			ChangeType:      entities.ChangeTypeAdded,
			Description:     p.Description,
			CurrentQuantity: decPtr(p.Quantity),
			CurrentPrice:    decPtr(p.UnitPrice),
			CurrentExtended: decPtr(p.ExtendedPrice),
		})
	}
	for _, p := range d.Parts.Removed {
		changes = append(changes, entities.LineItemChange{
			ID:               uuid.NewString(),
			VersionID:        versionID,
			LineNumber:       p.LineNumber,
			ItemType:         entities.ItemTypePart,
			ChangeType:       entities.ChangeTypeRemoved,
			Description:      p.Description,
			PreviousQuantity: decPtr(p.Quantity),
			PreviousPrice:    decPtr(p.UnitPrice),
			PreviousExtended: decPtr(p.ExtendedPrice),
		})
	}
	for _, m := range d.Parts.Modified {
		changes = append(changes, entities.LineItemChange{
			ID:               uuid.NewString(),
			VersionID:        versionID,
			LineNumber:       m.Current.LineNumber,
			ItemType:         entities.ItemTypePart,
			ChangeType:       entities.ChangeTypeModified,
			Description:      m.Current.Description,
			PreviousQuantity: decPtr(m.Previous.Quantity),
			CurrentQuantity:  decPtr(m.Current.Quantity),
			QuantityChange:   decPtr(m.Current.Quantity.Sub(m.Previous.Quantity)),
			PreviousPrice:    decPtr(m.Previous.UnitPrice),
			CurrentPrice:     decPtr(m.Current.UnitPrice),
			PriceChange:      decPtr(m.Current.UnitPrice.Sub(m.Previous.UnitPrice)),
			PreviousExtended: decPtr(m.Previous.ExtendedPrice),
			CurrentExtended:  decPtr(m.Current.ExtendedPrice),
			ExtendedChange:   decPtr(m.Current.ExtendedPrice.Sub(m.Previous.ExtendedPrice)),
		})
	}

	for _, l := range d.Labor.Added {
		changes = append(changes, entities.LineItemChange{
			ID:              uuid.NewString(),
			VersionID:       versionID,
			LineNumber:      l.LineNumber,
			ItemType:        entities.ItemTypeLabor,
			ChangeType:      entities.ChangeTypeAdded,
			Description:     l.Operation,
			CurrentHours:    decPtr(l.Hours),
			CurrentPrice:    decPtr(l.Rate),
			CurrentExtended: decPtr(l.ExtendedPrice),
		})
	}
	for _, l := range d.Labor.Removed {
		changes = append(changes, entities.LineItemChange{
			ID:               uuid.NewString(),
			VersionID:        versionID,
			LineNumber:       l.LineNumber,
			ItemType:         entities.ItemTypeLabor,
			ChangeType:       entities.ChangeTypeRemoved,
			Description:      l.Operation,
			PreviousHours:    decPtr(l.Hours),
			PreviousPrice:    decPtr(l.Rate),
			PreviousExtended: decPtr(l.ExtendedPrice),
		})
	}
	for _, m := range d.Labor.Modified {
		changes = append(changes, entities.LineItemChange{
			ID:               uuid.NewString(),
			VersionID:        versionID,
			LineNumber:       m.Current.LineNumber,
			ItemType:         entities.ItemTypeLabor,
			ChangeType:       entities.ChangeTypeModified,
			Description:      m.Current.Operation,
			PreviousHours:    decPtr(m.Previous.Hours),
			CurrentHours:     decPtr(m.Current.Hours),
			HoursChange:      decPtr(m.Current.Hours.Sub(m.Previous.Hours)),
			PreviousPrice:    decPtr(m.Previous.Rate),
			CurrentPrice:     decPtr(m.Current.Rate),
			PriceChange:      decPtr(m.Current.Rate.Sub(m.Previous.Rate)),
			PreviousExtended: decPtr(m.Previous.ExtendedPrice),
			CurrentExtended:  decPtr(m.Current.ExtendedPrice),
			ExtendedChange:   decPtr(m.Current.ExtendedPrice.Sub(m.Previous.ExtendedPrice)),
		})
	}

	return changes
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
