package jobapplications

import (
	"net/http"
	"strconv"

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
	rg.GET("/job-applications", h.list)
	rg.POST("/job-applications", h.create)
	rg.PUT("/job-applications/:id", h.update)
	rg.DELETE("/job-applications/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	list, err := h.Svc.List(c.Request.Context(), ownerID)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, gin.H{"applications": fromRecords(list)})
}

func (h *Handler) create(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.FromError(c, apperr.Validation("Company and position are required"))
		return
	}
	created, err := h.Svc.Create(c.Request.Context(), toRecord(ownerID, req))
	if err != nil {
		respond.FromError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"id":      created.ID,
		"message": "Job application created successfully",
	})
}

func (h *Handler) update(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.FromError(c, apperr.Validation("Company and position are required"))
		return
	}
	app := toRecord(ownerID, req)
	app.ID = id
	if err := h.Svc.Update(c.Request.Context(), app); err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "Job application updated successfully"})
}

func (h *Handler) delete(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), ownerID, id); err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, gin.H{"message": "Job application deleted successfully"})
}

func owner(c *gin.Context) (int64, bool) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
	}
	return ownerID, ok
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.FromError(c, apperr.Validation("Invalid job application id"))
		return 0, false
	}
	return id, true
}
