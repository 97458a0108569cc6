package api

import (
	"errors"
	"net/http"

	reqdto "order-fulfillment/internal/handler/dto/request"
	resdto "order-fulfillment/internal/handler/dto/response"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/commands"
	"order-fulfillment/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productCommands commands.ProductCommands
	productQueries  queries.ProductQueries
}

func NewProductHandler(productCommands commands.ProductCommands, productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		productCommands: productCommands,
		productQueries:  productQueries,
	}
}

// @Summary Get product
// @Description Get a product by SKU code
// @Tags products
// @Produce json
// @Param skuCode path string true "SKU code"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Router /products/{skuCode} [get]
func (h *ProductHandler) GetBySku(c *gin.Context) {
	view, err := h.productQueries.GetBySku(c.Request.Context(), c.Param("skuCode"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) GetAll(c *gin.Context) {
	views, err := h.productQueries.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Product existence check
// @Tags products
// @Produce json
// @Param skuCode path string true "SKU code"
// @Success 200 {boolean} bool
// @Router /products/exists/{skuCode} [get]
func (h *ProductHandler) Exists(c *gin.Context) {
	exists, err := h.productQueries.Exists(c.Request.Context(), c.Param("skuCode"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, exists)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.ProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.productCommands.CreateProduct(c.Request.Context(), req); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"skuCode": req.SkuCode})
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skuCode path string true "SKU code"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{skuCode} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var req reqdto.ProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	skuCode := c.Param("skuCode")
	if err := h.productCommands.UpdateProduct(c.Request.Context(), skuCode, req); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skuCode": skuCode})
}

// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param skuCode path string true "SKU code"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /products/{skuCode} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productCommands.DeleteProduct(c.Request.Context(), c.Param("skuCode")); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, errs.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
