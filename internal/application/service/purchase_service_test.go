package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aoneretail/footwear-pos/internal/domain/ledger"
	"github.com/aoneretail/footwear-pos/internal/domain/pricing"
	"github.com/aoneretail/footwear-pos/internal/domain/submission"
	"github.com/aoneretail/footwear-pos/internal/infrastructure/session"
	"github.com/aoneretail/footwear-pos/internal/infrastructure/upstream"
	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

func newPurchaseFixture(t *testing.T, backend http.Handler) *PurchaseService {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := upstream.NewClient(srv.URL, 5*time.Second, zap.NewNop())
	sessions := session.NewStore[PurchaseSession](time.Hour, time.Hour, zap.NewNop())
	return NewPurchaseService(sessions, client, testPolicy, zap.NewNop())
}

func purchaseLine(qty int) ledger.PurchaseItem {
	return ledger.PurchaseItem{
		BrandID:      "1",
		CategoryID:   "2",
		SectionID:    "3",
		SizeID:       "4",
		BrandName:    "Sparx",
		CategoryName: "Gents",
		SectionName:  "Sports",
		SizeName:     "9",
		Qty:          qty,
		MRP:          550,
		Price:        250,
		GSTPercent:   12,
	}
}

func fullHeader() PurchaseHeader {
	return PurchaseHeader{
		SupplierID:  "7",
		BillNumber:  "INV-42",
		BillDate:    "2026-08-31",
		PaymentMode: "CREDIT",
	}
}

func TestPurchaseRecalculate(t *testing.T) {
	s := newPurchaseFixture(t, newFakeBackend().mux)

	t.Run("derives from the edited field and rounds for display", func(t *testing.T) {
		out, err := s.Recalculate(pricing.Inputs{MRP: 999, DiscountPercent: 12.5}, pricing.FieldDiscountPercent)
		require.NoError(t, err)

		assert.InDelta(t, 124.88, out.DiscountRs, 0.001)
		assert.InDelta(t, 874.13, out.Price, 0.001)
		assert.InDelta(t, 1048.95, out.MSP, 0.001)
	})

	t.Run("unknown edited field", func(t *testing.T) {
		_, err := s.Recalculate(pricing.Inputs{MRP: 100}, pricing.Field("gst"))
		assert.Error(t, err)
	})
}

func TestPurchaseItemLifecycle(t *testing.T) {
	s := newPurchaseFixture(t, newFakeBackend().mux)
	id := s.CreateSession()

	index, err := s.AddItem(id, purchaseLine(4))
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	_, err = s.AddItem(id, purchaseLine(0))
	assert.ErrorIs(t, err, apperror.ErrInvalidQty)

	item, err := s.Item(id, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Qty)
	assert.InDelta(t, 1120.0, item.LineTotal, 0.01)

	updated := purchaseLine(2)
	require.NoError(t, s.UpdateItem(id, 0, updated))

	state, err := s.State(id)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Totals.Items)
	assert.Equal(t, 2, state.Totals.Qty)
	assert.InDelta(t, 560.0, state.Totals.Amount, 0.01)

	require.NoError(t, s.RemoveItem(id, 0))
	assert.ErrorIs(t, s.RemoveItem(id, 0), apperror.ErrIndexOutOfRange)
}

func TestPurchaseCheckBillNumber(t *testing.T) {
	s := newPurchaseFixture(t, newFakeBackend().mux)

	exists, err := s.CheckBillNumber(context.Background(), "7", "INV-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.CheckBillNumber(context.Background(), "7", "INV-2")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.CheckBillNumber(context.Background(), "", "INV-1")
	assert.Error(t, err)
}

func TestPurchaseSubmitHeaderValidation(t *testing.T) {
	s := newPurchaseFixture(t, newFakeBackend().mux)
	id := s.CreateSession()

	_, err := s.AddItem(id, purchaseLine(1))
	require.NoError(t, err)

	t.Run("all header fields missing", func(t *testing.T) {
		err := s.Submit(id)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, apperror.ReasonMissingHeaderFields, appErr.Reason)
		assert.Equal(t, "Please fill bill header: Supplier, Bill Number, Bill Date, Payment Mode", appErr.Message)
	})

	t.Run("UPI is not a purchase payment mode", func(t *testing.T) {
		header := fullHeader()
		header.PaymentMode = "UPI"
		require.NoError(t, s.SetHeader(id, header))

		err := s.Submit(id)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, "Please fill bill header: Payment Mode", appErr.Message)
	})

	t.Run("complete header arms the gate", func(t *testing.T) {
		require.NoError(t, s.SetHeader(id, fullHeader()))
		require.NoError(t, s.Submit(id))

		state, err := s.State(id)
		require.NoError(t, err)
		assert.Equal(t, submission.PendingConfirmation, state.Gate)
	})
}

func TestPurchaseConfirmFlow(t *testing.T) {
	backend := newFakeBackend()
	s := newPurchaseFixture(t, backend.mux)
	id := s.CreateSession()

	_, err := s.AddItem(id, purchaseLine(4))
	require.NoError(t, err)
	require.NoError(t, s.SetHeader(id, fullHeader()))
	require.NoError(t, s.Submit(id))

	outcome, err := s.Confirm(context.Background(), id, true)
	require.NoError(t, err)
	assert.True(t, outcome.Submitted)
	assert.Equal(t, "/purchase/", outcome.RedirectURL)

	form := backend.submittedForm
	assert.Equal(t, "7", form.Get("supplier"))
	assert.Equal(t, "INV-42", form.Get("bill_number"))
	assert.Equal(t, "2026-08-31", form.Get("bill_date"))
	assert.Equal(t, "CREDIT", form.Get("payment_mode"))
	assert.Contains(t, form.Get("items_json"), `"brand_id":"1"`)

	_, err = s.State(id)
	assert.Error(t, err, "session is gone after a successful hand-off")
}
