package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByReason(t *testing.T) {
	// Instance detail in the message must not break sentinel comparisons.
	assert.ErrorIs(t, NewExceedsStockError(3), NewExceedsStockError(99))
	assert.ErrorIs(t, NewDiscountCapError(82.5), NewDiscountCapError(150))
	assert.NotErrorIs(t, NewExceedsStockError(3), ErrInvalidQty)
}

func TestMissingHeaderFieldsError(t *testing.T) {
	err := NewMissingHeaderFieldsError([]string{"Supplier", "Bill Date"})

	assert.Equal(t, "Please fill bill header: Supplier, Bill Date", err.Message)
	assert.Equal(t, ReasonMissingHeaderFields, err.Reason)
	assert.Len(t, err.Errors, 2)
	assert.Equal(t, "Supplier", err.Errors[0].Field)
}

func TestGetAppError(t *testing.T) {
	t.Run("passes through app errors", func(t *testing.T) {
		appErr := GetAppError(ErrEmptyLedger)
		assert.Equal(t, ReasonEmptyLedger, appErr.Reason)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})

	t.Run("wraps plain errors as internal", func(t *testing.T) {
		appErr := GetAppError(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, "boom", appErr.Message)
	})
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, NewUpstreamError("GET /api/categories/", errors.New("timeout")).Code)
	assert.Equal(t, http.StatusConflict, NewStaleDataError("billing:category").Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("Session").Code)
}
