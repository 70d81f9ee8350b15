package coverletters

import (
	"errors"
	"io"

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
	rg.GET("/cover-letter", h.get)
	rg.POST("/cover-letter", h.save)
	rg.PUT("/cover-letter", h.save)
}

func (h *Handler) get(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	letter, found, err := h.Svc.Fetch(c.Request.Context(), ownerID)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	if !found {
		respond.OK(c, gin.H{"coverLetterData": gin.H{}})
		return
	}
	respond.OK(c, gin.H{"coverLetterData": letter})
}

func (h *Handler) save(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	var letter Letter
	// an empty body saves an empty letter
	if err := c.ShouldBindJSON(&letter); err != nil && !errors.Is(err, io.EOF) {
		respond.FromError(c, apperr.Validation("Invalid cover letter payload"))
		return
	}
	if err := h.Svc.Save(c.Request.Context(), ownerID, letter); err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "Cover letter saved successfully"})
}
