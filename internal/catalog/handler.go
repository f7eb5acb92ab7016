package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type catalogHandler struct {
	log            *logrus.Entry
	catalogService CatalogService
}

func NewHandler(catalogService CatalogService, log *logrus.Entry) *catalogHandler {
	return &catalogHandler{
		log:            log,
		catalogService: catalogService,
	}
}

func (h *catalogHandler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/products", h.getAvailableProducts)
	}

	manager := router.Group("/manager")
	{
		manager.GET("/products", h.getAvailabilityMatrix)
		manager.GET("/restaurants", h.getRestaurants)
	}
}

func (h *catalogHandler) getAvailableProducts(c *gin.Context) {
	products, err := h.catalogService.GetAvailableProducts(c.Request.Context())
	if err != nil {
		h.log.Errorf("getAvailableProducts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *catalogHandler) getAvailabilityMatrix(c *gin.Context) {
	matrix, err := h.catalogService.GetAvailabilityMatrix(c.Request.Context())
	if err != nil {
		h.log.Errorf("getAvailabilityMatrix: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get products"})
		return
	}

	c.JSON(http.StatusOK, matrix)
}

func (h *catalogHandler) getRestaurants(c *gin.Context) {
	restaurants, err := h.catalogService.GetRestaurants(c.Request.Context())
	if err != nil {
		h.log.Errorf("getRestaurants: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}
