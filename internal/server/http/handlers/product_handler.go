package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// ProductHandler serves catalog endpoints.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/v1/products.
// Filters: page, keyword, price[gte], price[lte], category.
func (h *ProductHandler) List(c *gin.Context) {
	filter := model.ProductFilter{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
	}

	if page := c.Query("page"); page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			filter.Page = n
		}
	}
	if raw := c.Query("price[gte]"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("price[lte]"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	products, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

// Detail handles GET /api/v1/product/:id.
func (h *ProductHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid product id")
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": toProductResponse(*product)})
}

// Categories handles GET /api/v1/products/categories.
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// AdminList handles GET /api/v1/admin/products.
func (h *ProductHandler) AdminList(c *gin.Context) {
	products, err := h.facade.AllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

// Create handles POST /api/v1/admin/add_products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Seller:      req.Seller,
		Stock:       req.Stock,
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": toProductResponse(*created)})
}

func toProductResponse(product model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Seller:      product.Seller,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
	}
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	return response
}
