package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// ProductHandler serves the product catalog.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create saves a new product.
func (h *ProductHandler) Create(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	product, err := h.products.Create(c.Request.Context(), middleware.CompanyID(c), input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, product)
}

// Get returns one product.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid product id")
		return
	}

	product, err := h.products.Get(c.Request.Context(), middleware.CompanyID(c), id)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, product)
}

// List returns all of the company's products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, products)
}

// Update saves changes to a product.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid product id")
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	product, err := h.products.Update(c.Request.Context(), middleware.CompanyID(c), id, input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, product)
}

// Delete removes a product. Existing invoice lines keep their snapshot.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid product id")
		return
	}

	if err := h.products.Delete(c.Request.Context(), middleware.CompanyID(c), id); err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
