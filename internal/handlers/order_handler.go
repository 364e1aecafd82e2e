package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdv_backend/internal/models"
	"pdv_backend/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderAddOnRequest struct {
	AddOnID  uint `json:"addOnId"`
	Quantity int  `json:"quantity"`
}

type createOrderItemRequest struct {
	ProductID uint                      `json:"productId"`
	Quantity  int                       `json:"quantity"`
	AddOns    []createOrderAddOnRequest `json:"addOns"`
	Note      string                    `json:"note"`
}

type createOrderRequest struct {
	Items         []createOrderItemRequest `json:"items"`
	ControlNumber string                   `json:"controlNumber"`
	PagerNumber   string                   `json:"pagerNumber"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := services.CreateOrderInput{
		ControlNumber: req.ControlNumber,
		PagerNumber:   req.PagerNumber,
	}
	for _, item := range req.Items {
		addOns := make([]services.CreateOrderAddOnInput, 0, len(item.AddOns))
		for _, sel := range item.AddOns {
			qty := sel.Quantity
			if qty == 0 {
				qty = 1
			}
			addOns = append(addOns, services.CreateOrderAddOnInput{AddOnID: sel.AddOnID, Quantity: qty})
		}
		input.Items = append(input.Items, services.CreateOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddOns:    addOns,
			Note:      item.Note,
		})
	}

	order, err := h.orderService.CreateOrder(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	order, err := h.orderService.UpdateOrderStatus(id, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orderService.DeleteOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted", "order": order})
}
