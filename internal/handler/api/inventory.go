package api

import (
	"errors"
	"net/http"

	reqdto "order-fulfillment/internal/handler/dto/request"
	resdto "order-fulfillment/internal/handler/dto/response"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands) *InventoryHandler {
	return &InventoryHandler{inventoryCommands: inventoryCommands}
}

// @Summary Reserve inventory
// @Description Atomically check and decrement stock for a SKU
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body reqdto.InventoryUpdateRequest true "Reservation request"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/reserve [post]
func (h *InventoryHandler) Reserve(c *gin.Context) {
	var req reqdto.InventoryUpdateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	remaining, err := h.inventoryCommands.Reserve(c.Request.Context(), req.SkuCode, req.Quantity)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.InventoryResponse{
		SkuCode:  req.SkuCode,
		Quantity: remaining,
	})
}

// @Summary Update inventory
// @Description Overwrite the absolute stock quantity for a SKU
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InventoryUpdateRequest true "Update request"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/update [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	var req reqdto.InventoryUpdateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quantity, err := h.inventoryCommands.SetQuantity(c.Request.Context(), req.SkuCode, req.Quantity)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.InventoryResponse{
		SkuCode:  req.SkuCode,
		Quantity: quantity,
	})
}

// Insufficient stock and unknown SKU both map to 404: the order service's
// error decoder depends on that status, and the legacy inventory service
// reported a negative absolute update the same way.
func (h *InventoryHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be greater than zero",
		})
	case errors.Is(err, errs.ErrInsufficientStock):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product inventory not sufficient",
		})
	case errors.Is(err, errs.ErrStockNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Stock record not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
