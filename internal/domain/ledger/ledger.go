package ledger

import (
	"encoding/json"

	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

// Totals holds the aggregates of a bill ledger. They are recomputed from
// scratch over the full sequence on every call, never maintained
// incrementally, so removing a line can never leave drift behind.
type Totals struct {
	Qty      int     `json:"total_qty"`
	Subtotal float64 `json:"subtotal"`
	GSTTotal float64 `json:"total_gst"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
}

// PurchaseTotals holds the aggregates of a purchase ledger.
type PurchaseTotals struct {
	Items  int     `json:"total_items"`
	Qty    int     `json:"total_qty"`
	Amount float64 `json:"total_amount"`
}

// BillLedger is the ordered collection of lines on the current sales bill.
// Insertion order is display order; the index is the edit/removal handle.
// Duplicate product IDs are two independent lines, not merged.
//
// Mutations are validated up front and either apply fully or not at all;
// the ledger is never left partially updated. Callers serialize access
// (mutations arrive one user event at a time).
type BillLedger struct {
	items []BillItem
}

// NewBillLedger creates an empty bill ledger.
func NewBillLedger() *BillLedger {
	return &BillLedger{}
}

func (l *BillLedger) validate(it *BillItem, availableStock int) error {
	if it.Qty <= 0 {
		return apperror.ErrInvalidQty
	}
	if it.ProductID == "" {
		return apperror.ErrMissingProduct
	}
	if it.Qty > availableStock {
		return apperror.NewExceedsStockError(availableStock)
	}
	return nil
}

// Add validates the candidate against the stock figure read at add-time and
// appends it. Returns the new line's index.
func (l *BillLedger) Add(it BillItem, availableStock int) (int, error) {
	if err := l.validate(&it, availableStock); err != nil {
		return 0, err
	}
	it.Finalize()
	l.items = append(l.items, it)
	return len(l.items) - 1, nil
}

// Update replaces the line at index wholesale, with the same validation as
// Add.
func (l *BillLedger) Update(index int, it BillItem, availableStock int) error {
	if index < 0 || index >= len(l.items) {
		return apperror.ErrIndexOutOfRange
	}
	if err := l.validate(&it, availableStock); err != nil {
		return err
	}
	it.Finalize()
	l.items[index] = it
	return nil
}

// Remove deletes the line at index. Confirmation is the UI boundary's
// concern; once called the removal is unconditional.
func (l *BillLedger) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return apperror.ErrIndexOutOfRange
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Items returns a copy of the lines in display order.
func (l *BillLedger) Items() []BillItem {
	out := make([]BillItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of lines.
func (l *BillLedger) Len() int {
	return len(l.items)
}

// Totals aggregates the full sequence at full precision.
func (l *BillLedger) Totals() Totals {
	var t Totals
	for _, it := range l.items {
		base := it.Price * float64(it.Qty)
		gst := base * it.GSTPercent / 100

		t.Qty += it.Qty
		t.Subtotal += base
		t.GSTTotal += gst
	}
	t.CGST = t.GSTTotal / 2
	t.SGST = t.GSTTotal / 2
	return t
}

// Serialize renders the ledger as the canonical JSON array handed to the
// submission collaborator as one atomic payload.
func (l *BillLedger) Serialize() (string, error) {
	items := l.items
	if items == nil {
		items = []BillItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PurchaseLedger is the ordered collection of lines on the current purchase
// entry. Same index-addressed contract as the bill ledger; purchase lines
// carry hierarchy IDs instead of a resolved product reference, and there is
// no stock ceiling on intake.
type PurchaseLedger struct {
	items []PurchaseItem
}

// NewPurchaseLedger creates an empty purchase ledger.
func NewPurchaseLedger() *PurchaseLedger {
	return &PurchaseLedger{}
}

func (l *PurchaseLedger) validate(it *PurchaseItem) error {
	if it.Qty <= 0 {
		return apperror.ErrInvalidQty
	}
	if !it.hierarchyComplete() {
		return apperror.ErrMissingProduct
	}
	return nil
}

// Add validates the candidate and appends it, returning the new index.
func (l *PurchaseLedger) Add(it PurchaseItem) (int, error) {
	if err := l.validate(&it); err != nil {
		return 0, err
	}
	it.Finalize()
	l.items = append(l.items, it)
	return len(l.items) - 1, nil
}

// Update replaces the line at index wholesale, with the same validation as
// Add.
func (l *PurchaseLedger) Update(index int, it PurchaseItem) error {
	if index < 0 || index >= len(l.items) {
		return apperror.ErrIndexOutOfRange
	}
	if err := l.validate(&it); err != nil {
		return err
	}
	it.Finalize()
	l.items[index] = it
	return nil
}

// Remove deletes the line at index.
func (l *PurchaseLedger) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return apperror.ErrIndexOutOfRange
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Item returns the line at index, for loading back into the entry form.
func (l *PurchaseLedger) Item(index int) (PurchaseItem, error) {
	if index < 0 || index >= len(l.items) {
		return PurchaseItem{}, apperror.ErrIndexOutOfRange
	}
	return l.items[index], nil
}

// Items returns a copy of the lines in display order.
func (l *PurchaseLedger) Items() []PurchaseItem {
	out := make([]PurchaseItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of lines.
func (l *PurchaseLedger) Len() int {
	return len(l.items)
}

// Totals aggregates the full sequence at full precision.
func (l *PurchaseLedger) Totals() PurchaseTotals {
	var t PurchaseTotals
	t.Items = len(l.items)
	for _, it := range l.items {
		base := it.Price * float64(it.Qty)
		t.Qty += it.Qty
		t.Amount += base + base*it.GSTPercent/100
	}
	return t
}

// Serialize renders the ledger as the canonical JSON array handed to the
// submission collaborator as one atomic payload.
func (l *PurchaseLedger) Serialize() (string, error) {
	items := l.items
	if items == nil {
		items = []PurchaseItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
