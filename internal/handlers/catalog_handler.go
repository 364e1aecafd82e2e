package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pdv_backend/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type productRequest struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category string           `json:"category"`
	Active   *bool            `json:"active"`
}

type addOnRequest struct {
	Name   string           `json:"name"`
	Price  *decimal.Decimal `json:"price"`
	Active *bool            `json:"active"`
}

// Products

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	products, err := h.catalogService.ListProducts(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	product, err := h.catalogService.CreateProduct(services.ProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	product, err := h.catalogService.UpdateProduct(id, services.ProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Active:   req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := h.catalogService.DeactivateProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deactivated", "product": product})
}

// Add-ons

func (h *CatalogHandler) ListAddOns(c *gin.Context) {
	// Active by default; the admin screen asks for everything explicitly.
	activeOnly := c.Query("all") != "true"
	addOns, err := h.catalogService.ListAddOns(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addOns)
}

func (h *CatalogHandler) GetAddOn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	addOn, err := h.catalogService.GetAddOn(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addOn)
}

func (h *CatalogHandler) CreateAddOn(c *gin.Context) {
	var req addOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	addOn, err := h.catalogService.CreateAddOn(services.AddOnInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addOn)
}

func (h *CatalogHandler) UpdateAddOn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req addOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	addOn, err := h.catalogService.UpdateAddOn(id, services.AddOnInput{
		Name:   req.Name,
		Price:  req.Price,
		Active: req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addOn)
}

func (h *CatalogHandler) DeleteAddOn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	addOn, err := h.catalogService.DeactivateAddOn(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "add-on deactivated", "add_on": addOn})
}
