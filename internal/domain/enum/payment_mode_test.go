package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMode(t *testing.T) {
	tests := []struct {
		in   string
		want PaymentMode
		ok   bool
	}{
		{"CASH", PaymentModeCash, true},
		{"cash", PaymentModeCash, true},
		{" Upi ", PaymentModeUPI, true},
		{"CREDIT", PaymentModeCredit, true},
		{"CARD", PaymentModeCard, true},
		{"CHEQUE", PaymentModeCash, false},
		{"", PaymentModeCash, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePaymentMode(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPaymentModeValidForPurchase(t *testing.T) {
	assert.True(t, PaymentModeCash.ValidForPurchase())
	assert.True(t, PaymentModeCredit.ValidForPurchase())
	assert.False(t, PaymentModeUPI.ValidForPurchase())
	assert.False(t, PaymentModeCard.ValidForPurchase())
}

func TestPaymentModeJSON(t *testing.T) {
	data, err := PaymentModeUPI.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"UPI"`, string(data))

	var m PaymentMode
	assert.NoError(t, m.UnmarshalJSON([]byte(`"card"`)))
	assert.Equal(t, PaymentModeCard, m)

	assert.NoError(t, m.UnmarshalJSON([]byte(`1`)))
	assert.Equal(t, PaymentModeCredit, m)

	// Unknown modes are an error, not a silent no-op; a value that does not
	// round-trip through String must never get in.
	assert.Error(t, m.UnmarshalJSON([]byte(`"CHEQUE"`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`9`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`-1`)))
	assert.Equal(t, PaymentModeCredit, m, "failed unmarshal leaves the value unchanged")
}
