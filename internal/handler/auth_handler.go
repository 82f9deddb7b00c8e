package handler

import (
	"net/http"

	"github.com/bobkin2-dev/projectbeheer/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Token exchanges an employee id for an access token. There is no
// password flow; the workshop runs this on a trusted network.
func (h *AuthHandler) Token(c *gin.Context) {
	var req struct {
		MedewerkerID string `json:"medewerker_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	token, err := h.svc.IssueToken(c.Request.Context(), req.MedewerkerID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 10003, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"access_token": token}})
}
