package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"career-backend/internal/coverletters"
	"career-backend/internal/interviews"
	"career-backend/internal/jobapplications"
	"career-backend/internal/resumes"
	"career-backend/internal/salarysearches"
	"career-backend/internal/services/health"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
	"career-backend/internal/users"
)

const (
	apiPrefix          = "/api"
	rateLimitGroupAuth = "AUTH"
)

// authPaths are rate limited with the stricter AUTH rule.
var authPaths = map[string]bool{
	apiPrefix + "/signup":          true,
	apiPrefix + "/login":           true,
	apiPrefix + "/forgot-password": true,
	apiPrefix + "/reset-password":  true,
}

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	Config                config.Config
	Tokens                middleware.TokenVerifier
	Limiter               middleware.Limiter
	Health                *health.Service
	UserHandler           *users.Handler
	ResumeHandler         *resumes.Handler
	CoverLetterHandler    *coverletters.Handler
	JobApplicationHandler *jobapplications.Handler
	InterviewHandler      *interviews.Handler
	SalarySearchHandler   *salarysearches.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	cfg := deps.Config

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		metrics.GinMiddleware(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: deps.Limiter,
			GroupFor: func(c *gin.Context) string {
				if authPaths[strings.TrimRight(c.Request.URL.Path, "/")] {
					return rateLimitGroupAuth
				}
				return ""
			},
			Rules: map[string]middleware.RateLimitRule{
				rateLimitGroupAuth: {Rate: cfg.AuthRateLimitRPS, Burst: cfg.AuthRateLimitBurst},
				"DEFAULT":          {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group(apiPrefix)
	api.GET("/health", healthHandler(deps.Health))
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterPublicRoutes(api)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Tokens))
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(protected)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(protected)
	}
	if deps.CoverLetterHandler != nil {
		deps.CoverLetterHandler.RegisterRoutes(protected)
	}
	if deps.JobApplicationHandler != nil {
		deps.JobApplicationHandler.RegisterRoutes(protected)
	}
	if deps.InterviewHandler != nil {
		deps.InterviewHandler.RegisterRoutes(protected)
	}
	if deps.SalarySearchHandler != nil {
		deps.SalarySearchHandler.RegisterRoutes(protected)
	}

	if config.IsDevLike(cfg.Env) && deps.UserHandler != nil {
		deps.UserHandler.RegisterDevRoutes(api)
	}

	return r
}

func healthHandler(svc *health.Service) gin.HandlerFunc {
	if svc == nil {
		svc = health.NewService(nil)
	}
	return func(c *gin.Context) {
		report := svc.Status(c.Request.Context())
		status := http.StatusOK
		if !report.Healthy() {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
