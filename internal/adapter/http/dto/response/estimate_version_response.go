package response

import (
	"time"

	"github.com/shopspring/decimal"

	"funilaria_xpto/internal/domain/entities"
)

type DiffSummaryResponse struct {
	HasChanges        bool            `json:"has_changes"`
	TotalChange       decimal.Decimal `json:"total_change"`
	PercentChange     decimal.Decimal `json:"percent_change"`
	LineItemsAdded    int             `json:"line_items_added"`
	LineItemsRemoved  int             `json:"line_items_removed"`
	LineItemsModified int             `json:"line_items_modified"`
}

type EstimateVersionResponse struct {
	VersionID      string                     `json:"version_id"`
	ID             string                     `json:"id"`
	ClaimID        string                     `json:"claim_id"`
	JobID          string                     `json:"job_id"`
	VersionNumber  int                        `json:"version_number"`
	RevisionReason string                     `json:"revision_reason"`
	DiffSummary    *DiffSummaryResponse       `json:"diff_summary,omitempty"`
	Estimate       entities.CanonicalEstimate `json:"estimate"`
	CreatedAt      time.Time                  `json:"created_at"`
}

func FromEstimateVersion(v entities.EstimateVersion) EstimateVersionResponse {
	resp := EstimateVersionResponse{
		VersionID:      v.ID,
		ID:             v.ID,
		ClaimID:        v.ClaimID,
		JobID:          v.JobID,
		VersionNumber:  v.VersionNumber,
		RevisionReason: string(v.RevisionReason),
		Estimate:       v.Snapshot,
		CreatedAt:      v.CreatedAt,
	}
	if v.DiffSummary != nil {
		resp.DiffSummary = &DiffSummaryResponse{
			HasChanges:        v.DiffSummary.HasChanges,
			TotalChange:       v.DiffSummary.TotalChange,
			PercentChange:     v.DiffSummary.PercentChange,
			LineItemsAdded:    v.DiffSummary.LineItemsAdded,
			LineItemsRemoved:  v.DiffSummary.LineItemsRemoved,
			LineItemsModified: v.DiffSummary.LineItemsModified,
		}
	}
	return resp
}

type VersionHistoryResponse struct {
	ClaimID  string                    `json:"claim_id"`
	Versions []EstimateVersionResponse `json:"versions"`
	Count    int                       `json:"count"`
}

func FromEstimateVersions(claimID string, versions []entities.EstimateVersion) VersionHistoryResponse {
	out := make([]EstimateVersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, FromEstimateVersion(v))
	}
	return VersionHistoryResponse{ClaimID: claimID, Versions: out, Count: len(out)}
}

type VersionChangesResponse struct {
	VersionID string                    `json:"version_id"`
	Changes   []entities.LineItemChange `json:"changes"`
	Count     int                       `json:"count"`
}

func FromLineItemChanges(versionID string, changes []entities.LineItemChange) VersionChangesResponse {
	if changes == nil {
		changes = []entities.LineItemChange{}
	}
	return VersionChangesResponse{VersionID: versionID, Changes: changes, Count: len(changes)}
}
