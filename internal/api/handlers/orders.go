package handlers

import (
	"net/http"

	"albion-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order lifecycle endpoints
type OrderHandler struct {
	orders   service.OrderServiceInterface
	planning service.PlanningServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders service.OrderServiceInterface, planning service.PlanningServiceInterface) *OrderHandler {
	return &OrderHandler{orders: orders, planning: planning}
}

// CreateOrder creates a new draft order with its style matrix
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.orders.Create(&req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListOrders lists submitted orders (open and closed)
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListSubmitted()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order with its full matrix
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	resp, err := h.orders.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateOrder replaces a draft order's header and matrix
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.orders.Update(id, &req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetOrderData returns the planning view of an order: styles, processes and
// quantity totals
func (h *OrderHandler) GetOrderData(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	resp, err := h.planning.GetOrderData(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetOrderCompletion returns per-style per-process completion percentages
func (h *OrderHandler) GetOrderCompletion(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	resp, err := h.orders.GetCompletion(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordTracking records produced quantities against an allocated order
func (h *OrderHandler) RecordTracking(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req service.TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.orders.RecordTracking(id, &req, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SubmitOrder validates a draft and opens it for planning
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	h.transition(c, h.orders.Submit)
}

// CancelOrder returns an open order to draft
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	h.transition(c, h.orders.Cancel)
}

// CloseOrder marks an open order as completed
func (h *OrderHandler) CloseOrder(c *gin.Context) {
	h.transition(c, h.orders.Close)
}

// ReopenOrder moves a closed order back to open
func (h *OrderHandler) ReopenOrder(c *gin.Context) {
	h.transition(c, h.orders.Reopen)
}

func (h *OrderHandler) transition(c *gin.Context, fn func(uuid.UUID, string) (*service.OrderResponse, error)) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	resp, err := fn(id, operatorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return uuid.Nil, false
	}
	return id, true
}
