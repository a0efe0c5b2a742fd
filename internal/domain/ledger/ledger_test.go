package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

func billItem(productID string, qty int, mrp, price, gst float64) BillItem {
	return BillItem{
		ProductID:  productID,
		Qty:        qty,
		MRP:        mrp,
		Price:      price,
		GSTPercent: gst,
	}
}

func TestBillLedgerAdd(t *testing.T) {
	l := NewBillLedger()

	index, err := l.Add(billItem("41", 3, 550, 500, 12), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	items := l.Items()
	require.Len(t, items, 1)
	assert.InDelta(t, 180.0, items[0].GSTAmount, 0.01)
	assert.InDelta(t, 1680.0, items[0].LineTotal, 0.01)
}

func TestBillLedgerAddValidation(t *testing.T) {
	tests := []struct {
		name  string
		item  BillItem
		stock int
		want  error
	}{
		{"zero qty", billItem("41", 0, 100, 90, 5), 10, apperror.ErrInvalidQty},
		{"negative qty", billItem("41", -2, 100, 90, 5), 10, apperror.ErrInvalidQty},
		{"no product", billItem("", 1, 100, 90, 5), 10, apperror.ErrMissingProduct},
		{"qty above stock", billItem("41", 11, 100, 90, 5), 10, apperror.NewExceedsStockError(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewBillLedger()
			_, err := l.Add(tt.item, tt.stock)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, l.Len(), "rejected line must not enter the ledger")
		})
	}
}

func TestBillLedgerDuplicateProductsStayIndependent(t *testing.T) {
	l := NewBillLedger()

	_, err := l.Add(billItem("41", 1, 550, 500, 12), 10)
	require.NoError(t, err)
	_, err = l.Add(billItem("41", 2, 550, 495, 12), 10)
	require.NoError(t, err)

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Qty)
	assert.Equal(t, 2, items[1].Qty)
	assert.Equal(t, 3, l.Totals().Qty)
}

func TestBillLedgerUpdate(t *testing.T) {
	l := NewBillLedger()
	_, err := l.Add(billItem("41", 1, 550, 500, 12), 10)
	require.NoError(t, err)

	t.Run("replaces wholesale", func(t *testing.T) {
		err := l.Update(0, billItem("77", 2, 300, 280, 5), 10)
		require.NoError(t, err)

		items := l.Items()
		assert.Equal(t, "77", items[0].ProductID)
		assert.InDelta(t, 588.0, items[0].LineTotal, 0.01)
	})

	t.Run("index checked before validation", func(t *testing.T) {
		err := l.Update(5, billItem("", 0, 0, 0, 0), 10)
		assert.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
	})

	t.Run("failed validation leaves the line unchanged", func(t *testing.T) {
		err := l.Update(0, billItem("77", 99, 300, 280, 5), 10)
		assert.ErrorIs(t, err, apperror.NewExceedsStockError(10))
		assert.Equal(t, 2, l.Items()[0].Qty)
	})
}

func TestBillLedgerRemove(t *testing.T) {
	l := NewBillLedger()
	_, err := l.Add(billItem("a", 1, 100, 100, 0), 10)
	require.NoError(t, err)
	_, err = l.Add(billItem("b", 2, 200, 200, 0), 10)
	require.NoError(t, err)
	_, err = l.Add(billItem("c", 3, 300, 300, 0), 10)
	require.NoError(t, err)

	require.NoError(t, l.Remove(1))

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ProductID)
	assert.Equal(t, "c", items[1].ProductID)

	// The removed line's contribution is gone exactly, because totals are
	// recomputed from scratch.
	totals := l.Totals()
	assert.Equal(t, 4, totals.Qty)
	assert.InDelta(t, 1000.0, totals.Subtotal, 0.001)

	assert.ErrorIs(t, l.Remove(2), apperror.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Remove(-1), apperror.ErrIndexOutOfRange)
}

func TestBillLedgerTotals(t *testing.T) {
	l := NewBillLedger()
	_, err := l.Add(billItem("41", 3, 550, 500, 12), 10)
	require.NoError(t, err)

	totals := l.Totals()
	assert.Equal(t, 3, totals.Qty)
	assert.InDelta(t, 1500.0, totals.Subtotal, 0.01)
	assert.InDelta(t, 180.0, totals.GSTTotal, 0.01)
	assert.InDelta(t, 90.0, totals.CGST, 0.01)
	assert.InDelta(t, 90.0, totals.SGST, 0.01)
}

func TestBillLedgerSerialize(t *testing.T) {
	t.Run("empty ledger is an empty array", func(t *testing.T) {
		l := NewBillLedger()
		data, err := l.Serialize()
		require.NoError(t, err)
		assert.Equal(t, "[]", data)
	})

	t.Run("uses the collaborator's field names", func(t *testing.T) {
		l := NewBillLedger()
		_, err := l.Add(billItem("41", 1, 550, 500, 12), 10)
		require.NoError(t, err)

		data, err := l.Serialize()
		require.NoError(t, err)
		assert.Contains(t, data, `"product_id":"41"`)
		assert.Contains(t, data, `"final":560`)
	})
}

func purchaseItem(qty int, price, gst float64) PurchaseItem {
	return PurchaseItem{
		BrandID:    "1",
		CategoryID: "2",
		SectionID:  "3",
		SizeID:     "4",
		Qty:        qty,
		Price:      price,
		GSTPercent: gst,
	}
}

func TestPurchaseLedgerAdd(t *testing.T) {
	l := NewPurchaseLedger()

	index, err := l.Add(purchaseItem(4, 250, 12))
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	items := l.Items()
	require.Len(t, items, 1)
	assert.InDelta(t, 120.0, items[0].GSTAmount, 0.01)
	assert.InDelta(t, 1120.0, items[0].LineTotal, 0.01)
}

func TestPurchaseLedgerValidation(t *testing.T) {
	l := NewPurchaseLedger()

	_, err := l.Add(purchaseItem(0, 250, 12))
	assert.ErrorIs(t, err, apperror.ErrInvalidQty)

	incomplete := purchaseItem(1, 250, 12)
	incomplete.SizeID = ""
	_, err = l.Add(incomplete)
	assert.ErrorIs(t, err, apperror.ErrMissingProduct)

	assert.Equal(t, 0, l.Len())
}

func TestPurchaseLedgerItem(t *testing.T) {
	l := NewPurchaseLedger()
	_, err := l.Add(purchaseItem(2, 100, 5))
	require.NoError(t, err)

	item, err := l.Item(0)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Qty)

	_, err = l.Item(1)
	assert.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
}

func TestPurchaseLedgerTotals(t *testing.T) {
	l := NewPurchaseLedger()
	_, err := l.Add(purchaseItem(4, 250, 12))
	require.NoError(t, err)
	_, err = l.Add(purchaseItem(1, 100, 0))
	require.NoError(t, err)

	totals := l.Totals()
	assert.Equal(t, 2, totals.Items)
	assert.Equal(t, 5, totals.Qty)
	assert.InDelta(t, 1220.0, totals.Amount, 0.01)
}
