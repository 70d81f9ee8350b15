package salarysearches

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/apperr"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/salary-searches", h.list)
	rg.POST("/salary-searches", h.save)
	rg.DELETE("/salary-searches", h.clear)
}

func (h *Handler) list(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	list, err := h.Svc.List(c.Request.Context(), ownerID)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, gin.H{"searches": fromRecords(list)})
}

func (h *Handler) save(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.FromError(c, apperr.Validation(msgRequired))
		return
	}
	created, err := h.Svc.Save(c.Request.Context(), ownerID, payload)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Salary search saved successfully",
		"search":  fromRecord(created),
	})
}

func (h *Handler) clear(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	if err := h.Svc.Clear(c.Request.Context(), ownerID); err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "Salary searches cleared successfully"})
}
