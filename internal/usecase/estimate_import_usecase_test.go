package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"funilaria_xpto/internal/domain/entities"
	"funilaria_xpto/internal/parser"
	"funilaria_xpto/internal/usecase/interfaces"
	mock_interfaces "funilaria_xpto/internal/usecase/interfaces/mocks"
)

const validEMSContent = `EST|CCC ONE|2026-03-14
CUS|Maria|Souza
VEH|2021|Toyota|Corolla
CLM|CLM-2026-0042
PRT|1|Front Bumper Cover|OEM-1|1|100.00
LAB|1|Replace bumper||2|50.00
TTL|parts|100.00|labor|100.00|total|200.00
DED|500.00|collision
`

const supplementEMSContent = `EST|CCC ONE|2026-03-20
CUS|Maria|Souza
VEH|2021|Toyota|Corolla
CLM|CLM-2026-0042
PRT|1|Front Bumper Cover|OEM-1|1|100.00
PRT|2|Grille|OEM-2|1|50.00
LAB|1|Replace bumper||2|50.00
TTL|parts|150.00|labor|100.00|total|250.00
DED|500.00|collision
`

func parsedSnapshot(t *testing.T, content string) entities.CanonicalEstimate {
	t.Helper()
	est, err := parser.New(nil).Parse(content)
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return est
}

func TestEstimateImportUseCase_ImportEstimate(t *testing.T) {
	t.Run("invalid claim id", func(t *testing.T) {
		uc := NewEstimateImportUseCase(nil, nil)
		_, err := uc.ImportEstimate(context.Background(), "   ", "job-1", validEMSContent)
		if !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("invalid job id", func(t *testing.T) {
		uc := NewEstimateImportUseCase(nil, nil)
		_, err := uc.ImportEstimate(context.Background(), "claim-1", "", validEMSContent)
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("unparseable content", func(t *testing.T) {
		uc := NewEstimateImportUseCase(nil, nil)
		_, err := uc.ImportEstimate(context.Background(), "claim-1", "job-1", "   ")
		var parseErr *parser.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
	})

	t.Run("validation errors reject without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		// Header only: no lines, no total. Repo must never be touched.
		result, err := uc.ImportEstimate(context.Background(), "claim-1", "job-1", "EST|CCC ONE|2026-03-14")
		if !errors.Is(err, ErrEstimateInvalid) {
			t.Fatalf("expected ErrEstimateInvalid, got %v", err)
		}
		if result.Validation.Valid() {
			t.Fatalf("expected validation errors")
		}
		if result.Estimate.Metadata.SourceSystem != "CCC ONE" {
			t.Fatalf("rejected import must still return the parsed estimate: %+v", result.Estimate.Metadata)
		}
	})

	t.Run("first import creates version 1 without diff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		repo.EXPECT().GetLatestVersion(gomock.Any(), "claim-1").Return(entities.EstimateVersion{}, nil)
		repo.EXPECT().CreateVersion(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.EstimateVersion, changes []entities.LineItemChange) (entities.EstimateVersion, error) {
				if v.ID == "" {
					t.Fatalf("expected generated version id")
				}
				if v.VersionNumber != 1 || v.RevisionReason != entities.RevisionReasonInitial {
					t.Fatalf("unexpected version: %+v", v)
				}
				if v.DiffSummary != nil {
					t.Fatalf("version 1 must not carry a diff summary")
				}
				if len(changes) != 0 {
					t.Fatalf("version 1 must not carry change rows, got %d", len(changes))
				}
				if v.ClaimID != "claim-1" || v.JobID != "job-1" {
					t.Fatalf("unexpected ids: %+v", v)
				}
				return v, nil
			},
		)

		result, err := uc.ImportEstimate(context.Background(), " claim-1 ", "job-1", validEMSContent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Diff != nil {
			t.Fatalf("expected nil diff on version 1")
		}
		if !result.Validation.Valid() {
			t.Fatalf("expected valid report: %+v", result.Validation)
		}
	})

	t.Run("supplement diffs against the chain head", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		head := entities.EstimateVersion{
			ID:            "ver-1",
			ClaimID:       "claim-1",
			VersionNumber: 1,
			Snapshot:      parsedSnapshot(t, validEMSContent),
		}
		repo.EXPECT().GetLatestVersion(gomock.Any(), "claim-1").Return(head, nil)
		repo.EXPECT().CreateVersion(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.EstimateVersion, changes []entities.LineItemChange) (entities.EstimateVersion, error) {
				if v.VersionNumber != 2 || v.RevisionReason != entities.RevisionReasonSupplement {
					t.Fatalf("unexpected version: %+v", v)
				}
				if v.DiffSummary == nil || !v.DiffSummary.HasChanges {
					t.Fatalf("expected diff summary with changes: %+v", v.DiffSummary)
				}
				if !v.DiffSummary.TotalChange.Equal(decimal.RequireFromString("50.00")) {
					t.Fatalf("total change = %s, want 50", v.DiffSummary.TotalChange)
				}
				if len(changes) != 1 {
					t.Fatalf("expected 1 change row, got %d", len(changes))
				}
				c := changes[0]
				if c.ChangeType != entities.ChangeTypeAdded || c.ItemType != entities.ItemTypePart {
					t.Fatalf("unexpected change row: %+v", c)
				}
				if c.VersionID != v.ID || c.Description != "Grille" {
					t.Fatalf("unexpected change row: %+v", c)
				}
				return v, nil
			},
		)

		result, err := uc.ImportEstimate(context.Background(), "claim-1", "job-2", supplementEMSContent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Diff == nil || len(result.Diff.Parts.Added) != 1 {
			t.Fatalf("expected diff with 1 added part")
		}
	})

	t.Run("version conflict retries with recomputed head", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		headV1 := entities.EstimateVersion{ID: "ver-1", VersionNumber: 1, Snapshot: parsedSnapshot(t, validEMSContent)}
		headV2 := entities.EstimateVersion{ID: "ver-2", VersionNumber: 2, Snapshot: parsedSnapshot(t, validEMSContent)}

		gomock.InOrder(
			repo.EXPECT().GetLatestVersion(gomock.Any(), "claim-1").Return(headV1, nil),
			repo.EXPECT().CreateVersion(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.EstimateVersion{}, interfaces.ErrVersionConflict),
			repo.EXPECT().GetLatestVersion(gomock.Any(), "claim-1").Return(headV2, nil),
			repo.EXPECT().CreateVersion(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, v entities.EstimateVersion, _ []entities.LineItemChange) (entities.EstimateVersion, error) {
					if v.VersionNumber != 3 {
						t.Fatalf("expected recomputed version 3, got %d", v.VersionNumber)
					}
					return v, nil
				},
			),
		)

		result, err := uc.ImportEstimate(context.Background(), "claim-1", "job-3", supplementEMSContent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Version.VersionNumber != 3 {
			t.Fatalf("expected version 3, got %d", result.Version.VersionNumber)
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		repo.EXPECT().GetLatestVersion(gomock.Any(), "claim-1").Return(entities.EstimateVersion{}, nil).Times(3)
		repo.EXPECT().CreateVersion(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.EstimateVersion{}, interfaces.ErrVersionConflict).Times(3)

		_, err := uc.ImportEstimate(context.Background(), "claim-1", "job-1", validEMSContent)
		if !errors.Is(err, ErrVersionRetriesExhausted) {
			t.Fatalf("expected ErrVersionRetriesExhausted, got %v", err)
		}
	})

	t.Run("repo read error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		repo.EXPECT().GetLatestVersion(gomock.Any(), "claim-1").Return(entities.EstimateVersion{}, errors.New("db"))

		_, err := uc.ImportEstimate(context.Background(), "claim-1", "job-1", validEMSContent)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateImportUseCase_GetLatest(t *testing.T) {
	t.Run("invalid claim id", func(t *testing.T) {
		uc := NewEstimateImportUseCase(nil, nil)
		_, err := uc.GetLatest(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("empty chain is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		repo.EXPECT().GetLatestVersion(gomock.Any(), "claim-1").Return(entities.EstimateVersion{}, nil)

		_, err := uc.GetLatest(context.Background(), "claim-1")
		if !errors.Is(err, ErrVersionNotFound) {
			t.Fatalf("expected ErrVersionNotFound, got %v", err)
		}
	})

	t.Run("returns the head", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		repo.EXPECT().GetLatestVersion(gomock.Any(), "claim-1").
			Return(entities.EstimateVersion{ID: "ver-9", VersionNumber: 9}, nil)

		got, err := uc.GetLatest(context.Background(), "claim-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ver-9" {
			t.Fatalf("unexpected version: %+v", got)
		}
	})
}

func TestEstimateImportUseCase_GetHistoryAndChanges(t *testing.T) {
	t.Run("history invalid claim id", func(t *testing.T) {
		uc := NewEstimateImportUseCase(nil, nil)
		if _, err := uc.GetHistory(context.Background(), ""); !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("changes invalid version id", func(t *testing.T) {
		uc := NewEstimateImportUseCase(nil, nil)
		if _, err := uc.GetChanges(context.Background(), " "); !errors.Is(err, ErrInvalidVersionID) {
			t.Fatalf("expected ErrInvalidVersionID, got %v", err)
		}
	})

	t.Run("history and changes delegate to the repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateVersionRepository(ctrl)
		uc := NewEstimateImportUseCase(repo, nil)

		repo.EXPECT().GetHistory(gomock.Any(), "claim-1").
			Return([]entities.EstimateVersion{{ID: "ver-1"}, {ID: "ver-2"}}, nil)
		repo.EXPECT().GetChanges(gomock.Any(), "ver-2").
			Return([]entities.LineItemChange{{ID: "chg-1"}}, nil)

		history, err := uc.GetHistory(context.Background(), "claim-1")
		if err != nil || len(history) != 2 {
			t.Fatalf("unexpected history: %v %v", history, err)
		}
		changes, err := uc.GetChanges(context.Background(), "ver-2")
		if err != nil || len(changes) != 1 {
			t.Fatalf("unexpected changes: %v %v", changes, err)
		}
	})
}
