package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

// SessionID extracts and parses the session ID path parameter
func SessionID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid session ID")
	}
	return id, nil
}

// ItemIndex extracts and parses the line index path parameter. Range checks
// against the ledger happen in the domain layer.
func ItemIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, apperror.ErrIndexOutOfRange
	}
	return index, nil
}
