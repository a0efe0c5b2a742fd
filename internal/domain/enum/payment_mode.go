package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PaymentMode represents how a bill is settled
type PaymentMode int

const (
	PaymentModeCash   PaymentMode = 0
	PaymentModeCredit PaymentMode = 1
	PaymentModeUPI    PaymentMode = 2
	PaymentModeCard   PaymentMode = 3
)

func (m PaymentMode) String() string {
	return [...]string{"CASH", "CREDIT", "UPI", "CARD"}[m]
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if i < int(PaymentModeCash) || i > int(PaymentModeCard) {
			return fmt.Errorf("invalid payment mode: %d", i)
		}
		*m = PaymentMode(i)
		return nil
	}
	parsed, ok := ParsePaymentMode(str)
	if !ok {
		return fmt.Errorf("invalid payment mode: %q", str)
	}
	*m = parsed
	return nil
}

// ParsePaymentMode maps a mode string to its PaymentMode, case-insensitively.
func ParsePaymentMode(s string) (PaymentMode, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CASH":
		return PaymentModeCash, true
	case "CREDIT":
		return PaymentModeCredit, true
	case "UPI":
		return PaymentModeUPI, true
	case "CARD":
		return PaymentModeCard, true
	}
	return PaymentModeCash, false
}

// ValidForPurchase reports whether the mode is accepted on the purchase
// screen, which only settles in cash or on supplier credit.
func (m PaymentMode) ValidForPurchase() bool {
	return m == PaymentModeCash || m == PaymentModeCredit
}
