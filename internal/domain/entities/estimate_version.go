package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevisionReason says why a version entered the chain.

type RevisionReason string

const (
	RevisionReasonInitial    RevisionReason = "initial"
	RevisionReasonSupplement RevisionReason = "supplement"
)

// DiffSummary is the aggregate outcome of diffing a version against its
// predecessor. Nil on version 1 (there is nothing to diff against).
type DiffSummary struct {
	HasChanges        bool            `json:"has_changes"`
	TotalChange       decimal.Decimal `json:"total_change"`
	PercentChange     decimal.Decimal `json:"percent_change"`
	LineItemsAdded    int             `json:"line_items_added"`
	LineItemsRemoved  int             `json:"line_items_removed"`
	LineItemsModified int             `json:"line_items_modified"`
}

// EstimateVersion is one link in a claim's version chain.
//
// Domain notes:
//   - Append-only: created once at import time, never mutated or deleted.
//   - VersionNumber is strictly increasing per claim, starting at 1,
//     assigned exactly once, never reused. The persistence layer enforces
//     uniqueness of (claim_id, version_number); assignment races resolve by
//     retry, never by overwrite.
//   - Snapshot stores the parsed estimate verbatim for audit/replay.
//
// Storage model (DynamoDB, single table):
//   - PK: CLAIM#<claim_id>
//   - SK: VERSION#<version_number, zero padded>
type EstimateVersion struct {
	ID             string            `json:"id"`
	ClaimID        string            `json:"claim_id"`
	JobID          string            `json:"job_id"`
	VersionNumber  int               `json:"version_number"`
	RevisionReason RevisionReason    `json:"revision_reason"`
	Snapshot       CanonicalEstimate `json:"snapshot"`
	DiffSummary    *DiffSummary      `json:"diff_summary,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
