package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"harmony-store/internal/middleware"
	"harmony-store/internal/models"
	"harmony-store/internal/repository"
)

type OrderHandler struct {
	orders repository.OrderStore
}

func NewOrderHandler(orders repository.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	Items    []models.OrderItem     `json:"items"`
	Total    decimal.Decimal        `json:"total"`
	Shipping models.ShippingDetails `json:"shipping"`
}

// Create records an order for the authenticated caller. The order id and
// timestamp are assigned server-side; the owning user comes from the
// verified token, never from the body.
// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Items) == 0 || !req.Total.IsPositive() || req.Shipping == (models.ShippingDetails{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Items, total, and shipping details are required."})
		return
	}

	identity := middleware.Identity(c)
	order := models.NewOrder(identity.UserID, req.Items, req.Total, req.Shipping)

	if err := h.orders.Create(c.Request.Context(), order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order."})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// List returns the authenticated caller's orders.
// GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	identity := middleware.Identity(c)

	orders, err := h.orders.ListByUser(c.Request.Context(), identity.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read orders."})
		return
	}

	c.JSON(http.StatusOK, orders)
}
