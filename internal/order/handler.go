package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mserebryaakov/foodcart-service/pkg/apperror"
	"github.com/sirupsen/logrus"
)

type orderHandler struct {
	log          *logrus.Entry
	orderService OrderService
}

func NewHandler(orderService OrderService, log *logrus.Entry) *orderHandler {
	return &orderHandler{
		log:          log,
		orderService: orderService,
	}
}

func (h *orderHandler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/order", h.registerOrder)
	}

	manager := router.Group("/manager")
	{
		manager.GET("/orders", h.getManagerOrders)
		manager.POST("/orders/:id/assign", h.assignRestaurant)
		manager.POST("/orders/:id/complete", h.completeOrder)
	}
}

func (h *orderHandler) registerOrder(c *gin.Context) {
	var req RegisterOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debugf("registerOrder: failed to decode body - %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if _, err := h.orderService.RegisterOrder(c.Request.Context(), req); err != nil {
		h.writeError(c, "registerOrder", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *orderHandler) getManagerOrders(c *gin.Context) {
	orders, err := h.orderService.GetManagerOrders(c.Request.Context())
	if err != nil {
		h.writeError(c, "getManagerOrders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *orderHandler) assignRestaurant(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	var body struct {
		RestaurantID uint `json:"restaurant_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.RestaurantID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is not specified"})
		return
	}

	if err := h.orderService.AssignRestaurant(c.Request.Context(), orderID, body.RestaurantID); err != nil {
		h.writeError(c, "assignRestaurant", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *orderHandler) completeOrder(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	if err := h.orderService.CompleteOrder(c.Request.Context(), orderID); err != nil {
		h.writeError(c, "completeOrder", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *orderHandler) orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect order id"})
		return 0, false
	}
	return uint(id), true
}

func (h *orderHandler) writeError(c *gin.Context, op string, err error) {
	status := apperror.Status(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorf("%s: %v", op, err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	h.log.Debugf("%s: %v", op, err)
	c.JSON(status, gin.H{"error": apperror.Message(err)})
}
