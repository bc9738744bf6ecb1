package entities

import "github.com/shopspring/decimal"

// ItemType distinguishes part rows from labor rows in a change set.

type ItemType string

const (
	ItemTypePart  ItemType = "part"
	ItemTypeLabor ItemType = "labor"
)

// ChangeType classifies what happened to a line between two versions.

type ChangeType string

const (
	ChangeTypeAdded    ChangeType = "added"
	ChangeTypeRemoved  ChangeType = "removed"
	ChangeTypeModified ChangeType = "modified"
)

// LineItemChange is one persisted row of a supplement's change set: a single
// part or labor line that was added, removed or modified relative to the
// previous version.
//
// Previous*/Current* pairs are nil when not applicable (an added line has no
// previous values, a removed line no current ones). The *Change fields carry
// current minus previous for each tracked numeric.
//
// Rows are written only alongside a version whose revision reason is
// "supplement" and are never updated afterwards.
type LineItemChange struct {
	ID          string     `json:"id"`
	VersionID   string     `json:"version_id"`
	LineNumber  int        `json:"line_number"`
	ItemType    ItemType   `json:"item_type"`
	ChangeType  ChangeType `json:"change_type"`
	Description string     `json:"description,omitempty"`

	PreviousQuantity *decimal.Decimal `json:"previous_quantity,omitempty"`
	CurrentQuantity  *decimal.Decimal `json:"current_quantity,omitempty"`
	QuantityChange   *decimal.Decimal `json:"quantity_change,omitempty"`

	PreviousPrice *decimal.Decimal `json:"previous_price,omitempty"`
	CurrentPrice  *decimal.Decimal `json:"current_price,omitempty"`
	PriceChange   *decimal.Decimal `json:"price_change,omitempty"`

	PreviousHours *decimal.Decimal `json:"previous_hours,omitempty"`
	CurrentHours  *decimal.Decimal `json:"current_hours,omitempty"`
	HoursChange   *decimal.Decimal `json:"hours_change,omitempty"`

	PreviousExtended *decimal.Decimal `json:"previous_extended,omitempty"`
	CurrentExtended  *decimal.Decimal `json:"current_extended,omitempty"`
	ExtendedChange   *decimal.Decimal `json:"extended_change,omitempty"`
}
