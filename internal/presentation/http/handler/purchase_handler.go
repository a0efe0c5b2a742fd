package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aoneretail/footwear-pos/internal/application/service"
	"github.com/aoneretail/footwear-pos/internal/domain/ledger"
	"github.com/aoneretail/footwear-pos/internal/domain/pricing"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/dto/request"
	"github.com/aoneretail/footwear-pos/internal/presentation/http/dto/response"
)

// PurchaseHandler handles purchase screen HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// CreateSession opens a new purchase screen session
func (h *PurchaseHandler) CreateSession(c *gin.Context) {
	id := h.purchaseService.CreateSession()
	response.Created(c, "Purchase session created", gin.H{"session_id": id})
}

// CloseSession discards a purchase screen session
func (h *PurchaseHandler) CloseSession(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.purchaseService.CloseSession(id)
	response.NoContent(c)
}

// State returns the full screen state
func (h *PurchaseHandler) State(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.purchaseService.State(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase state retrieved successfully", state)
}

// Recalculate derives the dependent pricing fields from the edited one
func (h *PurchaseHandler) Recalculate(c *gin.Context) {
	var req request.RecalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.purchaseService.Recalculate(pricing.Inputs{
		MRP:             req.MRP,
		DiscountPercent: req.DiscountPercent,
		DiscountRs:      req.DiscountRs,
		Price:           req.Price,
		MSP:             req.MSP,
	}, pricing.Field(req.EditedField))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fields recalculated", out)
}

func purchaseItem(req *request.AddPurchaseItemRequest) ledger.PurchaseItem {
	return ledger.PurchaseItem{
		BrandID:         req.BrandID,
		CategoryID:      req.CategoryID,
		SectionID:       req.SectionID,
		SizeID:          req.SizeID,
		BrandName:       req.BrandName,
		CategoryName:    req.CategoryName,
		SectionName:     req.SectionName,
		SizeName:        req.SizeName,
		Qty:             req.Qty,
		MRP:             req.MRP,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		DiscountRs:      req.DiscountRs,
		GSTPercent:      req.GSTPercent,
		MSP:             req.MSP,
	}
}

// AddItem appends a validated line to the purchase
func (h *PurchaseHandler) AddItem(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.AddPurchaseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	index, err := h.purchaseService.AddItem(id, purchaseItem(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.purchaseService.State(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added successfully", gin.H{"index": index, "state": state})
}

// GetItem returns the line at index for loading back into the entry form
func (h *PurchaseHandler) GetItem(c *gin.Context) {
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

	item, err := h.purchaseService.Item(id, index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// UpdateItem replaces the line at index wholesale
func (h *PurchaseHandler) UpdateItem(c *gin.Context) {
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

	var req request.AddPurchaseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.purchaseService.UpdateItem(id, index, purchaseItem(&req)); err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.purchaseService.State(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", state)
}

// RemoveItem removes the line at index
func (h *PurchaseHandler) RemoveItem(c *gin.Context) {
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

	if err := h.purchaseService.RemoveItem(id, index); err != nil {
		response.Error(c, err)
		return
	}

	state, err := h.purchaseService.State(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed successfully", state)
}

// SetHeader stores the screen's header fields
func (h *PurchaseHandler) SetHeader(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.PurchaseHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err = h.purchaseService.SetHeader(id, service.PurchaseHeader{
		SupplierID:  req.SupplierID,
		BillNumber:  req.BillNumber,
		BillDate:    req.BillDate,
		PaymentMode: req.PaymentMode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Header updated successfully", nil)
}

// CheckBill reports whether the supplier already has a bill with this number
func (h *PurchaseHandler) CheckBill(c *gin.Context) {
	exists, err := h.purchaseService.CheckBillNumber(
		c.Request.Context(), c.Query("supplier_id"), c.Query("bill_number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill number checked", gin.H{"exists": exists})
}

// Submit records a submit intent and moves the gate to pending confirmation
func (h *PurchaseHandler) Submit(c *gin.Context) {
	id, err := SessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.purchaseService.Submit(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Confirmation required", gin.H{"pending_confirmation": true})
}

// Confirm resolves the pending confirmation
func (h *PurchaseHandler) Confirm(c *gin.Context) {
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

	outcome, err := h.purchaseService.Confirm(c.Request.Context(), id, req.Confirm)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !outcome.Submitted {
		response.OK(c, "Submission cancelled", outcome)
		return
	}
	response.OK(c, "Purchase submitted successfully", outcome)
}
