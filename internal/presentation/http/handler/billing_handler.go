package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aoneretail/footwear-pos/internal/application/service"
	"github.com/aoneretail/footwear-pos/internal/infrastructure/upstream"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/dto/request"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/dto/response"
)

// BillingHandler handles billing screen HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// CreateSession opens a new billing screen session
func (h *BillingHandler) CreateSession(c *gin.Context) {
	id := h.billingService.CreateSession()
	response.Created(c, "Billing session created", gin.H{"session_id": id})
}

// CloseSession discards a billing screen session
func (h *BillingHandler) CloseSession(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.billingService.CloseSession(id)
	response.NoContent(c)
}

// State returns the full screen state
func (h *BillingHandler) State(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.billingService.State(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing state retrieved successfully", state)
}

// SellingPrice recomputes the per-unit price as the entry form changes
func (h *BillingHandler) SellingPrice(c *gin.Context) {
	var req request.SellingPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	price := h.billingService.SellingPrice(service.SellingPriceInput{
		MRP:                    req.MRP,
		DefaultDiscountPercent: req.DefaultDiscountPercent,
		ManualDiscountRs:       req.ManualDiscountRs,
		ManualEnabled:          req.ManualEnabled,
	})

	response.OK(c, "Selling price computed", gin.H{"price": price})
}

func billItemInput(req *request.AddBillItemRequest) *service.AddBillItemInput {
	return &service.AddBillItemInput{
		Query: upstream.ProductQuery{
			BrandID:    req.BrandID,
			CategoryID: req.CategoryID,
			SectionID:  req.SectionID,
			SizeID:     req.SizeID,
		},
		ProductID: req.ProductID,
		Qty:       req.Qty,
		Price:     req.Price,

		ManualEnabled: req.ManualEnabled,

		Brand:    req.Brand,
		Category: req.Category,
		Section:  req.Section,
		Size:     req.Size,
	}
}

// AddItem appends a validated line to the bill
func (h *BillingHandler) AddItem(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.AddBillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	index, err := h.billingService.AddItem(c.Request.Context(), id, billItemInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.billingService.State(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added successfully", gin.H{"index": index, "state": state})
}

// UpdateItem replaces the line at index wholesale
func (h *BillingHandler) UpdateItem(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	index, err := ItemIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.AddBillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.billingService.UpdateItem(c.Request.Context(), id, index, billItemInput(&req)); err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.billingService.State(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", state)
}

// RemoveItem removes the line at index
func (h *BillingHandler) RemoveItem(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	index, err := ItemIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.billingService.RemoveItem(id, index); err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.billingService.State(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed successfully", state)
}

// SetHeader stores the screen's header fields
func (h *BillingHandler) SetHeader(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.BillingHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err = h.billingService.SetHeader(id, service.BillingHeader{
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		PaymentMode:    req.PaymentMode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Header updated successfully", nil)
}

// Submit records a submit intent and moves the gate to pending confirmation
func (h *BillingHandler) Submit(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.billingService.Submit(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Confirmation required", gin.H{"pending_confirmation": true})
}

// Confirm resolves the pending confirmation
func (h *BillingHandler) Confirm(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	outcome, err := h.billingService.Confirm(c.Request.Context(), id, req.Confirm)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !outcome.Submitted {
		response.OK(c, "Submission cancelled", outcome)
		return
	}
	response.OK(c, "Bill submitted successfully", outcome)
}
