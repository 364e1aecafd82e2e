package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pdv_backend/internal/models"
	"pdv_backend/internal/redis"
)

// HealthHandler reports storage connectivity, row counts and print-queue
// depth. It queries directly: diagnostics should not depend on the service
// layer being healthy.
type HealthHandler struct {
	db         *gorm.DB
	queue      *redis.Client
	printQueue string
}

func NewHealthHandler(db *gorm.DB, queue *redis.Client, printQueue string) *HealthHandler {
	return &HealthHandler{db: db, queue: queue, printQueue: printQueue}
}

func (h *HealthHandler) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "database_unreachable",
			"error":  err.Error(),
		})
		return
	}

	var productCount, orderCount int64
	h.db.Model(&models.Product{}).Count(&productCount)
	h.db.Model(&models.Order{}).Count(&orderCount)

	body := gin.H{
		"status":         "ok",
		"total_products": productCount,
		"total_orders":   orderCount,
	}

	if h.queue != nil {
		depth, err := h.queue.QueueDepth(c.Request.Context(), h.printQueue)
		if err != nil {
			body["print_queue"] = "unreachable"
		} else {
			body["print_queue_depth"] = depth
		}
	}

	c.JSON(http.StatusOK, body)
}
