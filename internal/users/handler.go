package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/apperr"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
	// ExposeResetToken returns reset tokens in the response body. Dev only.
	ExposeResetToken bool
}

func NewHandler(svc *Service, exposeResetToken bool) *Handler {
	return &Handler{Svc: svc, ExposeResetToken: exposeResetToken}
}

// RegisterPublicRoutes attaches the unauthenticated account endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
	rg.POST("/forgot-password", h.forgotPassword)
	rg.POST("/reset-password", h.resetPassword)
}

// RegisterRoutes attaches endpoints that require a session.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/verify-token", h.verifyToken)
}

// RegisterDevRoutes attaches the user listing used during development.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.list)
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		metrics.ObserveAuth("signup", "invalid")
		respond.FromError(c, apperr.Validation("Missing required fields"))
		return
	}
	res, err := h.Svc.Signup(c.Request.Context(), SignupInput{
		Username: *req.Username,
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		metrics.ObserveAuth("signup", apperr.KindOf(err).String())
		respond.FromError(c, err)
		return
	}
	metrics.ObserveAuth("signup", "ok")
	respond.JSON(c, http.StatusCreated, toAuthResponse("User created successfully", res))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ObserveAuth("login", "invalid")
		respond.FromError(c, apperr.Validation("Email and password are required"))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.ObserveAuth("login", apperr.KindOf(err).String())
		respond.FromError(c, err)
		return
	}
	metrics.ObserveAuth("login", "ok")
	respond.OK(c, toAuthResponse("Login successful", res))
}

func (h *Handler) verifyToken(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		respond.FromError(c, apperr.Unauthenticated("missing or invalid token"))
		return
	}
	user, err := h.Svc.Profile(c.Request.Context(), userID)
	if err != nil {
		respond.FromError(c, err)
		return
	}
	respond.OK(c, gin.H{
		"valid":    true,
		"user_id":  user.ID,
		"username": middleware.UserNameFromContext(c),
		"user":     toUserResponse(user),
	})
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.FromError(c, apperr.Validation("Email is required"))
		return
	}
	ticket, err := h.Svc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		metrics.ObserveAuth("forgot_password", apperr.KindOf(err).String())
		respond.FromError(c, err)
		return
	}
	metrics.ObserveAuth("forgot_password", "ok")
	resp := gin.H{
		"message":  "Password reset instructions sent",
		"username": ticket.Username,
	}
	if h.ExposeResetToken {
		resp["resetToken"] = ticket.Token
	}
	respond.OK(c, resp)
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.FromError(c, apperr.Validation("Email, reset token and new password are required"))
		return
	}
	res, err := h.Svc.ResetPassword(c.Request.Context(), ResetInput{
		Email:       req.Email,
		ResetToken:  req.ResetToken,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		metrics.ObserveAuth("reset_password", apperr.KindOf(err).String())
		respond.FromError(c, err)
		return
	}
	metrics.ObserveAuth("reset_password", "ok")
	respond.OK(c, toAuthResponse("Password reset successfully", res))
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.FromError(c, err)
		return
	}
	out := make([]userListEntry, 0, len(list))
	for _, u := range list {
		out = append(out, userListEntry{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt})
	}
	respond.OK(c, gin.H{"users": out})
}
