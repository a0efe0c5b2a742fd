package service

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aoneretail/footwear-pos/internal/domain/enum"
	"github.com/aoneretail/footwear-pos/internal/domain/ledger"
	"github.com/aoneretail/footwear-pos/internal/domain/pricing"
	"github.com/aoneretail/footwear-pos/internal/domain/submission"
	"github.com/aoneretail/footwear-pos/internal/infrastructure/session"
	"github.com/aoneretail/footwear-pos/internal/infrastructure/upstream"
	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

// BillingHeader holds the billing screen's header fields. Customer details
// are optional; a missing payment mode blocks submission.
type BillingHeader struct {
	CustomerName   string `json:"customer_name"`
	CustomerMobile string `json:"customer_mobile"`
	PaymentMode    string `json:"payment_mode"`
}

func (h BillingHeader) missingFields() []string {
	var missing []string
	if _, ok := enum.ParsePaymentMode(h.PaymentMode); h.PaymentMode == "" || !ok {
		missing = append(missing, "Payment Mode")
	}
	return missing
}

// BillingSession is one open billing screen: its ledger, its submission
// gate, and its header fields.
type BillingSession struct {
	Ledger *ledger.BillLedger
	Gate   *submission.Gate
	Header BillingHeader
}

// BillingService is the billing screen's controller. It owns the session
// state, re-reads stock at add-time, enforces the manual discount cap, and
// drives the submission gate.
type BillingService struct {
	sessions *session.Store[BillingSession]
	client   *upstream.Client
	policy   pricing.Policy
	log      *zap.Logger
}

// NewBillingService creates a new billing service
func NewBillingService(
	sessions *session.Store[BillingSession],
	client *upstream.Client,
	policy pricing.Policy,
	log *zap.Logger,
) *BillingService {
	return &BillingService{
		sessions: sessions,
		client:   client,
		policy:   policy,
		log:      log,
	}
}

// CreateSession opens a billing screen with an empty ledger.
func (s *BillingService) CreateSession() uuid.UUID {
	return s.sessions.Create(&BillingSession{
		Ledger: ledger.NewBillLedger(),
		Gate:   submission.New(),
	})
}

// CloseSession discards a billing screen's state.
func (s *BillingService) CloseSession(id uuid.UUID) {
	s.sessions.Delete(id)
}

// SellingPriceInput feeds the bill-side price recomputation.
type SellingPriceInput struct {
	MRP                    float64 `json:"mrp"`
	DefaultDiscountPercent float64 `json:"default_discount_percent"`
	ManualDiscountRs       float64 `json:"manual_discount_rs"`
	ManualEnabled          bool    `json:"manual_enabled"`
}

// SellingPrice recomputes the per-unit selling price as the entry form
// changes. The manual discount cap is not applied here; it is a hard
// add-time rule, never a silent clamp.
func (s *BillingService) SellingPrice(in SellingPriceInput) float64 {
	return pricing.Round2(pricing.SellingPrice(
		in.MRP, in.DefaultDiscountPercent, in.ManualDiscountRs, in.ManualEnabled))
}

// AddBillItemInput is a candidate bill line plus the hierarchy query needed
// to re-read the catalog at add-time.
type AddBillItemInput struct {
	Query     upstream.ProductQuery
	ProductID string
	Qty       int
	Price     float64

	// ManualEnabled marks that Price includes a manual discount on top of
	// the product's default one; the manual portion is what the cap limits.
	ManualEnabled bool

	Brand    string
	Category string
	Section  string
	Size     string
}

func (s *BillingService) buildItem(ctx context.Context, in *AddBillItemInput) (ledger.BillItem, int, error) {
	if in.ProductID == "" {
		return ledger.BillItem{}, 0, apperror.ErrMissingProduct
	}

	// Stock and MRP come from the catalog as of right now, not from
	// whatever the page loaded earlier.
	infos, err := s.client.ProductInfos(ctx, in.Query)
	if err != nil {
		return ledger.BillItem{}, 0, err
	}
	product, found := upstream.FindProduct(infos, in.ProductID)
	if !found {
		return ledger.BillItem{}, 0, apperror.ErrMissingProduct
	}

	// The cap limits the manual discount alone, layered on top of the
	// product's default discount. Reject, never clamp; a sale at the plain
	// default-discounted price is never capped.
	if in.ManualEnabled {
		defaultPrice := product.MRP * (1 - product.DefaultDiscount/100)
		if max := s.policy.MaxManualDiscount(product.MRP); defaultPrice-in.Price > max {
			return ledger.BillItem{}, 0, apperror.NewDiscountCapError(max)
		}
	}

	item := ledger.BillItem{
		ProductID:  in.ProductID,
		Brand:      in.Brand,
		Category:   in.Category,
		Section:    in.Section,
		Size:       in.Size,
		Qty:        in.Qty,
		MRP:        product.MRP,
		Price:      in.Price,
		GSTPercent: product.GSTPercent,
	}
	if product.MRP > 0 {
		item.DiscountPercent = (1 - in.Price/product.MRP) * 100
	}
	return item, product.StockQty, nil
}

// AddItem validates a candidate line against live stock and the discount
// cap and appends it, returning the new line's index.
func (s *BillingService) AddItem(ctx context.Context, id uuid.UUID, in *AddBillItemInput) (int, error) {
	item, stock, err := s.buildItem(ctx, in)
	if err != nil {
		return 0, err
	}

	var index int
	err = s.sessions.With(id, func(sess *BillingSession) error {
		index, err = sess.Ledger.Add(item, stock)
		return err
	})
	return index, err
}

// UpdateItem replaces the line at index wholesale, re-validating against
// live stock.
func (s *BillingService) UpdateItem(ctx context.Context, id uuid.UUID, index int, in *AddBillItemInput) error {
	item, stock, err := s.buildItem(ctx, in)
	if err != nil {
		return err
	}

	return s.sessions.With(id, func(sess *BillingSession) error {
		return sess.Ledger.Update(index, item, stock)
	})
}

// RemoveItem removes the line at index.
func (s *BillingService) RemoveItem(id uuid.UUID, index int) error {
	return s.sessions.With(id, func(sess *BillingSession) error {
		return sess.Ledger.Remove(index)
	})
}

// BillingState is the full screen state the client re-renders from after
// every mutation.
type BillingState struct {
	Items  []ledger.BillItem `json:"items"`
	Totals ledger.Totals     `json:"totals"`
	Header BillingHeader     `json:"header"`
	Gate   submission.State  `json:"gate"`
}

// State returns the current screen state.
func (s *BillingService) State(id uuid.UUID) (*BillingState, error) {
	var state BillingState
	err := s.sessions.With(id, func(sess *BillingSession) error {
		state = BillingState{
			Items:  sess.Ledger.Items(),
			Totals: roundTotals(sess.Ledger.Totals()),
			Header: sess.Header,
			Gate:   sess.Gate.State(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// SetHeader stores the screen's header fields.
func (s *BillingService) SetHeader(id uuid.UUID, header BillingHeader) error {
	return s.sessions.With(id, func(sess *BillingSession) error {
		sess.Header = header
		return nil
	})
}

// Submit records a submit intent; on success the gate waits for an explicit
// confirmation.
func (s *BillingService) Submit(id uuid.UUID) error {
	return s.sessions.With(id, func(sess *BillingSession) error {
		return sess.Gate.Submit(sess.Ledger.Len(), sess.Header.missingFields())
	})
}

// SubmitOutcome reports where the browser should go after a hand-off.
type SubmitOutcome struct {
	Submitted   bool   `json:"submitted"`
	InvoiceURL  string `json:"invoice_url,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// Confirm resolves the pending confirmation. A "no" returns to idle with no
// side effect; a "yes" serializes the ledger and hands it to the submission
// collaborator exactly once. A failed hand-off surfaces as a single error
// and is never retried automatically.
func (s *BillingService) Confirm(ctx context.Context, id uuid.UUID, yes bool) (*SubmitOutcome, error) {
	var (
		itemsJSON string
		form      url.Values
		proceed   bool
	)
	err := s.sessions.With(id, func(sess *BillingSession) error {
		var err error
		proceed, err = sess.Gate.Confirm(yes)
		if err != nil || !proceed {
			return err
		}
		itemsJSON, err = sess.Ledger.Serialize()
		if err != nil {
			return err
		}
		form = url.Values{
			"customer_name":   {sess.Header.CustomerName},
			"customer_mobile": {sess.Header.CustomerMobile},
			"payment_mode":    {sess.Header.PaymentMode},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !proceed {
		return &SubmitOutcome{Submitted: false}, nil
	}

	result, err := s.client.SubmitBill(ctx, itemsJSON, form)
	if err != nil {
		return nil, err
	}
	if !result.Accepted() {
		msg := result.Error
		if msg == "" {
			msg = "Bill submission failed, please try again"
		}
		return nil, apperror.NewBadRequestError(msg)
	}

	s.log.Info("bill submitted",
		zap.String("session", id.String()),
		zap.String("invoice_url", result.InvoiceURL),
	)
	s.sessions.Delete(id)
	return &SubmitOutcome{Submitted: true, InvoiceURL: result.InvoiceURL}, nil
}

func roundTotals(t ledger.Totals) ledger.Totals {
	t.Subtotal = pricing.Round2(t.Subtotal)
	t.GSTTotal = pricing.Round2(t.GSTTotal)
	t.CGST = pricing.Round2(t.CGST)
	t.SGST = pricing.Round2(t.SGST)
	return t
}
