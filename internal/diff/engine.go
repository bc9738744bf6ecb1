package diff

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"funilaria_xpto/internal/domain/entities"
)

// epsilon is the comparison tolerance for monetary fields. Deltas at or
// below one cent are treated as conversion noise, not as changes.
var epsilon = decimal.New(1, -2)

// FieldDelta describes one numeric field that moved between versions.
type FieldDelta struct {
	From   decimal.Decimal `json:"from"`
	To     decimal.Decimal `json:"to"`
	Change decimal.Decimal `json:"change"`
}

// PartChange is a part line present in both versions with at least one
// tracked field changed. Fields carries only the fields that actually moved,
// keyed "quantity", "unit_price", "extended".
type PartChange struct {
	Previous entities.PartLine     `json:"previous"`
	Current  entities.PartLine     `json:"current"`
	Fields   map[string]FieldDelta `json:"fields"`
}

// LaborChange is the labor counterpart of PartChange. Fields keys are
// "hours", "rate", "extended".
type LaborChange struct {
	Previous entities.LaborLine    `json:"previous"`
	Current  entities.LaborLine    `json:"current"`
	Fields   map[string]FieldDelta `json:"fields"`
}

// PartsDiff buckets the part lines of two versions by what happened to them.
type PartsDiff struct {
	Added     []entities.PartLine `json:"added"`
	Removed   []entities.PartLine `json:"removed"`
	Modified  []PartChange        `json:"modified"`
	Unchanged []entities.PartLine `json:"unchanged"`
}

// LaborDiff buckets the labor lines of two versions by what happened to them.
type LaborDiff struct {
	Added     []entities.LaborLine `json:"added"`
	Removed   []entities.LaborLine `json:"removed"`
	Modified  []LaborChange        `json:"modified"`
	Unchanged []entities.LaborLine `json:"unchanged"`
}

// CategoryTotals is one side of the financial comparison.
type CategoryTotals struct {
	Parts     decimal.Decimal `json:"parts"`
	Labor     decimal.Decimal `json:"labor"`
	Materials decimal.Decimal `json:"materials"`
	Tax       decimal.Decimal `json:"tax"`
	Grand     decimal.Decimal `json:"grand"`
}

// TotalsDiff carries previous/current totals and their per-category deltas.
type TotalsDiff struct {
	Previous CategoryTotals `json:"previous"`
	Current  CategoryTotals `json:"current"`
	Change   CategoryTotals `json:"change"`
}

// Summary aggregates the diff for the version chain's diff_summary column.
type Summary struct {
	HasChanges        bool            `json:"has_changes"`
	TotalChange       decimal.Decimal `json:"total_change"`
	PercentChange     decimal.Decimal `json:"percent_change"`
	LineItemsAdded    int             `json:"line_items_added"`
	LineItemsRemoved  int             `json:"line_items_removed"`
	LineItemsModified int             `json:"line_items_modified"`
}

// EstimateDiff is the structured comparison of two canonical estimates. It is
// transient: the version store decomposes it into a DiffSummary plus
// LineItemChange rows rather than persisting it whole.
type EstimateDiff struct {
	Summary Summary    `json:"summary"`
	Parts   PartsDiff  `json:"parts"`
	Labor   LaborDiff  `json:"labor"`
	Totals  TotalsDiff `json:"totals"`
}

// Engine computes estimate diffs. Pure computation, no I/O, safe for
// concurrent use.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Diff compares the previous and current versions of a claim's estimate.
//
// Line identity is a composite key: parts match on
// (line number, part number, description) — part numbers alone are too often
// blank or reused — and labor on (line number, operation). A line that kept
// its part number and description but moved to a different line number is
// therefore reported as an added+removed pair, not as a move; callers should
// surface that as "items may have been renumbered". When two lines inside
// one estimate collide on the same key, the last one wins while building the
// previous-side lookup; that resolution is deliberate and pinned by tests.
func (e *Engine) Diff(previous, current entities.CanonicalEstimate) EstimateDiff {
	var d EstimateDiff

	d.Totals = diffTotals(previous.Financial, current.Financial)
	d.Parts = diffParts(previous.Parts, current.Parts)
	d.Labor = diffLabor(previous.Labor, current.Labor)

	d.Summary.LineItemsAdded = len(d.Parts.Added) + len(d.Labor.Added)
	d.Summary.LineItemsRemoved = len(d.Parts.Removed) + len(d.Labor.Removed)
	d.Summary.LineItemsModified = len(d.Parts.Modified) + len(d.Labor.Modified)
	d.Summary.TotalChange = d.Totals.Change.Grand
	d.Summary.PercentChange = percentChange(previous.Financial.GrandTotal, d.Totals.Change.Grand)
	d.Summary.HasChanges = d.Summary.LineItemsAdded > 0 ||
		d.Summary.LineItemsRemoved > 0 ||
		d.Summary.LineItemsModified > 0 ||
		d.Summary.TotalChange.Abs().GreaterThan(epsilon)

	return d
}

func diffTotals(prev, cur entities.FinancialSummary) TotalsDiff {
	return TotalsDiff{
		Previous: CategoryTotals{
			Parts:     prev.PartsTotal,
			Labor:     prev.LaborTotal,
			Materials: prev.MaterialsTotal,
			Tax:       prev.TaxTotal,
			Grand:     prev.GrandTotal,
		},
		Current: CategoryTotals{
			Parts:     cur.PartsTotal,
			Labor:     cur.LaborTotal,
			Materials: cur.MaterialsTotal,
			Tax:       cur.TaxTotal,
			Grand:     cur.GrandTotal,
		},
		Change: CategoryTotals{
			Parts:     cur.PartsTotal.Sub(prev.PartsTotal),
			Labor:     cur.LaborTotal.Sub(prev.LaborTotal),
			Materials: cur.MaterialsTotal.Sub(prev.MaterialsTotal),
			Tax:       cur.TaxTotal.Sub(prev.TaxTotal),
			Grand:     cur.GrandTotal.Sub(prev.GrandTotal),
		},
	}
}

// percentChange guards against a zero or negative previous grand total:
// percent change is 0 when there is nothing meaningful to divide by.
func percentChange(previousGrand, grandChange decimal.Decimal) decimal.Decimal {
	if !previousGrand.IsPositive() {
		return decimal.Zero
	}
	return grandChange.Div(previousGrand).Mul(decimal.NewFromInt(100)).Round(2)
}

func partKey(l entities.PartLine) string {
	return fmt.Sprintf("%d|%s|%s", l.LineNumber, l.PartNumber, l.Description)
}

func laborKey(l entities.LaborLine) string {
	return fmt.Sprintf("%d|%s", l.LineNumber, l.Operation)
}

func diffParts(previous, current []entities.PartLine) PartsDiff {
	var d PartsDiff

	// Last one wins on duplicate keys within a single estimate.
	prevByKey := make(map[string]entities.PartLine, len(previous))
	for _, p := range previous {
		prevByKey[partKey(p)] = p
	}

	visited := make(map[string]bool, len(current))
	for _, cur := range current {
		key := partKey(cur)
		prev, ok := prevByKey[key]
		if !ok {
			d.Added = append(d.Added, cur)
			continue
		}
		visited[key] = true

		fields := map[string]FieldDelta{}
		recordDelta(fields, "quantity", prev.Quantity, cur.Quantity)
		recordDelta(fields, "unit_price", prev.UnitPrice, cur.UnitPrice)
		recordDelta(fields, "extended", prev.ExtendedPrice, cur.ExtendedPrice)

		if len(fields) == 0 {
			d.Unchanged = append(d.Unchanged, cur)
		} else {
			d.Modified = append(d.Modified, PartChange{Previous: prev, Current: cur, Fields: fields})
		}
	}

	for key, prev := range prevByKey {
		if !visited[key] {
			d.Removed = append(d.Removed, prev)
		}
	}
	sort.Slice(d.Removed, func(i, j int) bool {
		if d.Removed[i].LineNumber != d.Removed[j].LineNumber {
			return d.Removed[i].LineNumber < d.Removed[j].LineNumber
		}
		return d.Removed[i].Description < d.Removed[j].Description
	})

	return d
}

func diffLabor(previous, current []entities.LaborLine) LaborDiff {
	var d LaborDiff

	prevByKey := make(map[string]entities.LaborLine, len(previous))
	for _, l := range previous {
		prevByKey[laborKey(l)] = l
	}

	visited := make(map[string]bool, len(current))
	for _, cur := range current {
		key := laborKey(cur)
		prev, ok := prevByKey[key]
		if !ok {
			d.Added = append(d.Added, cur)
			continue
		}
		visited[key] = true

		fields := map[string]FieldDelta{}
		recordDelta(fields, "hours", prev.Hours, cur.Hours)
		recordDelta(fields, "rate", prev.Rate, cur.Rate)
		recordDelta(fields, "extended", prev.ExtendedPrice, cur.ExtendedPrice)

		if len(fields) == 0 {
			d.Unchanged = append(d.Unchanged, cur)
		} else {
			d.Modified = append(d.Modified, LaborChange{Previous: prev, Current: cur, Fields: fields})
		}
	}

	for key, prev := range prevByKey {
		if !visited[key] {
			d.Removed = append(d.Removed, prev)
		}
	}
	sort.Slice(d.Removed, func(i, j int) bool {
		if d.Removed[i].LineNumber != d.Removed[j].LineNumber {
			return d.Removed[i].LineNumber < d.Removed[j].LineNumber
		}
		return d.Removed[i].Operation < d.Removed[j].Operation
	})

	return d
}

func recordDelta(fields map[string]FieldDelta, name string, from, to decimal.Decimal) {
	change := to.Sub(from)
	if change.Abs().LessThanOrEqual(epsilon) {
		return
	}
	fields[name] = FieldDelta{From: from, To: to, Change: change}
}
