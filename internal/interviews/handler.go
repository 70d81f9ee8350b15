package interviews

import (
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
	rg.GET("/interview-practice", h.history)
	rg.POST("/interview-practice", h.record)
	rg.DELETE("/interview-practice", h.clear)
}

func (h *Handler) history(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	list, err := h.Svc.History(c.Request.Context(), ownerID)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, gin.H{"history": fromRecords(list)})
}

func (h *Handler) record(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.FromError(c, apperr.Validation("Category, question, user answer and time taken are required"))
		return
	}
	created, err := h.Svc.Record(c.Request.Context(), ownerID, req)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"id":      created.ID,
		"message": "Interview session saved successfully",
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
	respond.OK(c, gin.H{"message": "Interview history cleared successfully"})
}
