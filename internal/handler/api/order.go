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

type OrderHandler struct {
	orderCommands commands.OrderCommands
}

func NewOrderHandler(orderCommands commands.OrderCommands) *OrderHandler {
	return &OrderHandler{orderCommands: orderCommands}
}

// @Summary Create order
// @Description Create an order: verifies the product, reserves stock, persists the order and announces it
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.CreateOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, errs.ErrInsufficientStock), errors.Is(err, errs.ErrStockNotFound):
			// The legacy order service reported insufficient inventory as 404.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Insufficient inventory available",
			})
		case errors.Is(err, errs.ErrInvalidQuantity), errors.Is(err, errs.ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order request",
			})
		case errors.Is(err, errs.ErrRemoteUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error communicating with a downstream service",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderResult(result))
}
