package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"harmony-store/internal/cache"
	"harmony-store/internal/repository"
)

const (
	listCacheTTL     = 2 * time.Minute
	productCacheTTL  = 5 * time.Minute
	lastGoodCacheTTL = 24 * time.Hour
)

type ProductHandler struct {
	catalog repository.CatalogStore
	cache   *cache.Cache
}

func NewProductHandler(catalog repository.CatalogStore, c *cache.Cache) *ProductHandler {
	return &ProductHandler{catalog: catalog, cache: c}
}

type createProductRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}

// List returns products filtered by the optional category and search
// query params. Store failures fall back to the cached last-good result
// for the same filters.
// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	filterKey := fmt.Sprintf("cat:%s_q:%s", category, search)
	cacheKey := "products:list:" + filterKey
	lastGoodKey := "products:lastgood:" + filterKey

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.catalog.List(c.Request.Context(), category, search)
	if err != nil {
		if cached, found := h.cache.Get(lastGoodKey); found {
			log.Println("serving last-good product list, store error:", err)
			c.JSON(http.StatusOK, cached)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read products."})
		return
	}

	h.cache.Set(cacheKey, products, listCacheTTL)
	h.cache.Set(lastGoodKey, products, lastGoodCacheTTL)
	c.JSON(http.StatusOK, products)
}

// Get returns a single product by id.
// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id := c.Param("id")
	cacheKey := "products:item:" + id

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read product."})
		return
	}

	h.cache.Set(cacheKey, product, productCacheTTL)
	c.JSON(http.StatusOK, product)
}

// Create adds a product to the catalog. Admin only (enforced by the
// route middleware).
// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateProduct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), repository.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Stock:       req.Stock,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product."})
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusCreated, product)
}

// Delete removes a product from the catalog. Admin only.
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product."})
		return
	}

	h.cache.DeleteByPrefix("products:")
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
}

// ValidationError reports a missing or malformed product field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validateProduct(req createProductRequest) error {
	if req.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if req.Category == "" {
		return &ValidationError{Field: "category", Message: "category is required"}
	}
	if req.Price.IsZero() || req.Price.IsNegative() {
		return &ValidationError{Field: "price", Message: "price is required and must be positive"}
	}
	if req.Description == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if req.Stock < 0 {
		return &ValidationError{Field: "stock", Message: "stock cannot be negative"}
	}
	return nil
}
