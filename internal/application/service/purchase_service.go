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

// PurchaseHeader holds the purchase screen's header fields. All four are
// required before submission.
type PurchaseHeader struct {
	SupplierID  string `json:"supplier_id"`
	BillNumber  string `json:"bill_number"`
	BillDate    string `json:"bill_date"`
	PaymentMode string `json:"payment_mode"`
}

func (h PurchaseHeader) missingFields() []string {
	var missing []string
	if h.SupplierID == "" {
		missing = append(missing, "Supplier")
	}
	if h.BillNumber == "" {
		missing = append(missing, "Bill Number")
	}
	if h.BillDate == "" {
		missing = append(missing, "Bill Date")
	}
	if mode, ok := enum.ParsePaymentMode(h.PaymentMode); h.PaymentMode == "" || !ok || !mode.ValidForPurchase() {
		missing = append(missing, "Payment Mode")
	}
	return missing
}

// PurchaseSession is one open purchase entry screen.
type PurchaseSession struct {
	Ledger *ledger.PurchaseLedger
	Gate   *submission.Gate
	Header PurchaseHeader
}

// PurchaseService is the purchase screen's controller: bidirectional field
// derivation, ledger mutations, bill-number availability, and the
// submission gate.
type PurchaseService struct {
	sessions *session.Store[PurchaseSession]
	client   *upstream.Client
	policy   pricing.Policy
	log      *zap.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	sessions *session.Store[PurchaseSession],
	client *upstream.Client,
	policy pricing.Policy,
	log *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		sessions: sessions,
		client:   client,
		policy:   policy,
		log:      log,
	}
}

// CreateSession opens a purchase screen with an empty ledger.
func (s *PurchaseService) CreateSession() uuid.UUID {
	return s.sessions.Create(&PurchaseSession{
		Ledger: ledger.NewPurchaseLedger(),
		Gate:   submission.New(),
	})
}

// CloseSession discards a purchase screen's state.
func (s *PurchaseService) CloseSession(id uuid.UUID) {
	s.sessions.Delete(id)
}

// Recalculate derives the dependent pricing fields from the one the user
// edited, rounded for display.
func (s *PurchaseService) Recalculate(in pricing.Inputs, edited pricing.Field) (pricing.Inputs, error) {
	if !edited.Valid() {
		return pricing.Inputs{}, apperror.NewBadRequestError("Unknown edited field: " + string(edited))
	}
	out := pricing.Derive(in, edited, s.policy)
	out.MRP = pricing.Round2(out.MRP)
	out.DiscountPercent = pricing.Round2(out.DiscountPercent)
	out.DiscountRs = pricing.Round2(out.DiscountRs)
	out.Price = pricing.Round2(out.Price)
	out.MSP = pricing.Round2(out.MSP)
	return out, nil
}

// AddItem validates a candidate line and appends it, returning the new
// line's index.
func (s *PurchaseService) AddItem(id uuid.UUID, item ledger.PurchaseItem) (int, error) {
	var index int
	err := s.sessions.With(id, func(sess *PurchaseSession) error {
		var err error
		index, err = sess.Ledger.Add(item)
		return err
	})
	return index, err
}

// UpdateItem replaces the line at index wholesale.
func (s *PurchaseService) UpdateItem(id uuid.UUID, index int, item ledger.PurchaseItem) error {
	return s.sessions.With(id, func(sess *PurchaseSession) error {
		return sess.Ledger.Update(index, item)
	})
}

// RemoveItem removes the line at index.
func (s *PurchaseService) RemoveItem(id uuid.UUID, index int) error {
	return s.sessions.With(id, func(sess *PurchaseSession) error {
		return sess.Ledger.Remove(index)
	})
}

// Item returns the line at index so the entry form can be reloaded for an
// edit.
func (s *PurchaseService) Item(id uuid.UUID, index int) (ledger.PurchaseItem, error) {
	var item ledger.PurchaseItem
	err := s.sessions.With(id, func(sess *PurchaseSession) error {
		var err error
		item, err = sess.Ledger.Item(index)
		return err
	})
	return item, err
}

// PurchaseState is the full screen state the client re-renders from after
// every mutation.
type PurchaseState struct {
	Items  []ledger.PurchaseItem `json:"items"`
	Totals ledger.PurchaseTotals `json:"totals"`
	Header PurchaseHeader        `json:"header"`
	Gate   submission.State      `json:"gate"`
}

// State returns the current screen state.
func (s *PurchaseService) State(id uuid.UUID) (*PurchaseState, error) {
	var state PurchaseState
	err := s.sessions.With(id, func(sess *PurchaseSession) error {
		totals := sess.Ledger.Totals()
		totals.Amount = pricing.Round2(totals.Amount)
		state = PurchaseState{
			Items:  sess.Ledger.Items(),
			Totals: totals,
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
func (s *PurchaseService) SetHeader(id uuid.UUID, header PurchaseHeader) error {
	return s.sessions.With(id, func(sess *PurchaseSession) error {
		sess.Header = header
		return nil
	})
}

// CheckBillNumber asks the collaborator whether the supplier already has a
// bill with this number. Purely informational; submission is not blocked
// here.
func (s *PurchaseService) CheckBillNumber(ctx context.Context, supplierID, billNumber string) (bool, error) {
	if supplierID == "" || billNumber == "" {
		return false, apperror.NewBadRequestError("supplier_id and bill_number are required")
	}
	return s.client.CheckBill(ctx, supplierID, billNumber)
}

// Submit records a submit intent; on success the gate waits for an explicit
// confirmation.
func (s *PurchaseService) Submit(id uuid.UUID) error {
	return s.sessions.With(id, func(sess *PurchaseSession) error {
		return sess.Gate.Submit(sess.Ledger.Len(), sess.Header.missingFields())
	})
}

// Confirm resolves the pending confirmation; a "yes" hands the serialized
// ledger to the submission collaborator exactly once.
func (s *PurchaseService) Confirm(ctx context.Context, id uuid.UUID, yes bool) (*SubmitOutcome, error) {
	var (
		itemsJSON string
		form      url.Values
		proceed   bool
	)
	err := s.sessions.With(id, func(sess *PurchaseSession) error {
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
			"supplier":     {sess.Header.SupplierID},
			"bill_number":  {sess.Header.BillNumber},
			"bill_date":    {sess.Header.BillDate},
			"payment_mode": {sess.Header.PaymentMode},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !proceed {
		return &SubmitOutcome{Submitted: false}, nil
	}

	result, err := s.client.SubmitPurchase(ctx, itemsJSON, form)
	if err != nil {
		return nil, err
	}
	if !result.Accepted() {
		msg := result.Error
		if msg == "" {
			msg = "Purchase submission failed, please try again"
		}
		return nil, apperror.NewBadRequestError(msg)
	}

	s.log.Info("purchase submitted",
		zap.String("session", id.String()),
		zap.String("redirect_url", result.RedirectURL),
	)
	s.sessions.Delete(id)
	return &SubmitOutcome{Submitted: true, RedirectURL: result.RedirectURL}, nil
}
