package handler

import (
	"errors"
	"net/http"

	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/bobkin2-dev/projectbeheer/internal/service"
	"github.com/gin-gonic/gin"
)

type KanbanHandler struct {
	kanbanSvc *service.KanbanService
	orderSvc  *service.OrderService
}

func NewKanbanHandler(kanbanSvc *service.KanbanService, orderSvc *service.OrderService) *KanbanHandler {
	return &KanbanHandler{kanbanSvc: kanbanSvc, orderSvc: orderSvc}
}

// Board returns all orders grouped by derived kanban column.
func (h *KanbanHandler) Board(c *gin.Context) {
	columns, err := h.kanbanSvc.Board(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": columns})
}

// Drop handles a drag-and-drop onto a column. A drop on the production
// column is rejected when the order's drawing or material track is not
// finished; the order keeps its previous status.
func (h *KanbanHandler) Drop(c *gin.Context) {
	var req struct {
		Kolom string `json:"kolom" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	order, err := h.orderSvc.DropToColumn(c.Request.Context(), c.Param("id"), req.Kolom)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": order})
}

// BulkFlag sets one progress flag on a group of orders.
func (h *KanbanHandler) BulkFlag(c *gin.Context) {
	var req struct {
		OrderIDs []string `json:"order_ids" binding:"required,min=1"`
		Veld     string   `json:"veld" binding:"required"`
		Waarde   bool     `json:"waarde"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	if err := h.orderSvc.BulkSetFlag(c.Request.Context(), req.OrderIDs, req.Veld, req.Waarde); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
