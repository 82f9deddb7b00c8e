package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/bobkin2-dev/projectbeheer/internal/repository"
	"github.com/bobkin2-dev/projectbeheer/internal/service"
	"github.com/gin-gonic/gin"
)

type HoursHandler struct {
	svc *service.HoursService
}

func NewHoursHandler(svc *service.HoursService) *HoursHandler {
	return &HoursHandler{svc: svc}
}

func (h *HoursHandler) List(c *gin.Context) {
	filters := repository.HourFilters{
		ProjectID:    c.Query("project_id"),
		OrderID:      c.Query("order_id"),
		MedewerkerID: c.Query("medewerker_id"),
	}
	if from := c.Query("van"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filters.From = &t
		}
	}
	if to := c.Query("tot"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filters.To = &t
		}
	}

	entries, err := h.svc.List(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": entries})
}

func (h *HoursHandler) Register(c *gin.Context) {
	var req service.RegisterHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	entry, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": entry})
}

func (h *HoursHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// OrderSummary compares registered and budgeted hours for one order.
func (h *HoursHandler) OrderSummary(c *gin.Context) {
	summary, err := h.svc.SummaryByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": summary})
}

// ProjectSummary returns registered hours per order of a project.
func (h *HoursHandler) ProjectSummary(c *gin.Context) {
	totals, err := h.svc.SummaryByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": totals})
}

// --- employees ---

func (h *HoursHandler) ListEmployees(c *gin.Context) {
	activeOnly := c.Query("actief") == "true"
	employees, err := h.svc.ListEmployees(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": employees})
}

func (h *HoursHandler) CreateEmployee(c *gin.Context) {
	var req struct {
		Naam string `json:"naam" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	employee, err := h.svc.CreateEmployee(c.Request.Context(), req.Naam)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": employee})
}

func (h *HoursHandler) ToggleEmployee(c *gin.Context) {
	employee, err := h.svc.ToggleEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": employee})
}
