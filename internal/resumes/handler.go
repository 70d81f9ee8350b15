package resumes

import (
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
	rg.GET("/resume", h.get)
	rg.POST("/resume", h.save)
	rg.PUT("/resume", h.save)
}

func (h *Handler) get(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	doc, found, err := h.Svc.Fetch(c.Request.Context(), ownerID)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	if !found {
		respond.OK(c, gin.H{"data": gin.H{}})
		return
	}
	respond.OK(c, gin.H{"data": doc})
}

func (h *Handler) save(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.FromError(c, apperr.Validation("Invalid resume payload"))
		return
	}
	id, err := h.Svc.Save(c.Request.Context(), ownerID, doc)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, saveResponse{Message: "Resume saved successfully", ResumeID: id})
}
