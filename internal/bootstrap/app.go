package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"career-backend/internal/coverletters"
	"career-backend/internal/interviews"
	"career-backend/internal/jobapplications"
	"career-backend/internal/resumes"
	"career-backend/internal/salarysearches"
	"career-backend/internal/services/health"
	"career-backend/internal/shared/auth"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/mail"
	"career-backend/internal/shared/server"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/storage/db"
	"career-backend/internal/shared/telemetry"
	"career-backend/internal/users"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Redis   *redis.Client
	Tokens  *auth.TokenService
	Mailer  mail.Mailer
	Limiter middleware.Limiter

	UsersRepo           users.Repo
	ResumesRepo         resumes.Repo
	CoverLettersRepo    coverletters.Repo
	JobApplicationsRepo jobapplications.Repo
	InterviewsRepo      interviews.Repo
	SalarySearchesRepo  salarysearches.Repo

	UsersService           *users.Service
	ResumesService         *resumes.Service
	CoverLettersService    *coverletters.Service
	JobApplicationsService *jobapplications.Service
	InterviewsService      *interviews.Service
	SalarySearchesService  *salarysearches.Service
	HealthService          *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	tokens, err := auth.NewTokenService(cfg.JWTSecret, auth.WithTTL(cfg.TokenTTL))
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Tokens: tokens,
		Mailer: buildMailer(cfg),
	}
	app.Redis, app.Limiter = buildLimiter(cfg)

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                app.Config,
		Tokens:                app.Tokens,
		Limiter:               app.Limiter,
		Health:                app.HealthService,
		UserHandler:           users.NewHandler(app.UsersService, config.IsDevLike(cfg.Env)),
		ResumeHandler:         resumes.NewHandler(app.ResumesService),
		CoverLetterHandler:    coverletters.NewHandler(app.CoverLettersService),
		JobApplicationHandler: jobapplications.NewHandler(app.JobApplicationsService),
		InterviewHandler:      interviews.NewHandler(app.InterviewsService),
		SalarySearchHandler:   salarysearches.NewHandler(app.SalarySearchesService),
	})

	return app, nil
}

// Close releases the database pool and the Redis client.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_storage", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_storage", map[string]any{"reason": "connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildMailer(cfg config.Config) mail.Mailer {
	if cfg.SMTPAddr == "" {
		return mail.LogMailer{}
	}
	return mail.NewSMTPMailer(mail.SMTPConfig{
		Addr:     cfg.SMTPAddr,
		Host:     cfg.SMTPHost,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}

func buildLimiter(cfg config.Config) (*redis.Client, middleware.Limiter) {
	if cfg.RedisAddr == "" {
		return nil, middleware.NewRateLimiter(nil)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return client, middleware.NewRedisLimiter(client)
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.CoverLettersRepo = &coverletters.PGRepo{DB: app.DB}
		app.JobApplicationsRepo = &jobapplications.PGRepo{DB: app.DB}
		app.InterviewsRepo = &interviews.PGRepo{DB: app.DB}
		app.SalarySearchesRepo = &salarysearches.PGRepo{DB: app.DB}
		app.HealthService = health.NewService(app.DB)
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.CoverLettersRepo = coverletters.NewMemoryRepo()
		app.JobApplicationsRepo = jobapplications.NewMemoryRepo()
		app.InterviewsRepo = interviews.NewMemoryRepo()
		app.SalarySearchesRepo = salarysearches.NewMemoryRepo()
		app.HealthService = health.NewService(nil)
	}

	app.UsersService = users.NewService(app.UsersRepo, app.Tokens, auth.NewPasswordHasher(), app.Mailer)
	app.ResumesService = &resumes.Service{Repo: app.ResumesRepo}
	app.CoverLettersService = &coverletters.Service{Repo: app.CoverLettersRepo}
	app.JobApplicationsService = &jobapplications.Service{Repo: app.JobApplicationsRepo}
	app.InterviewsService = &interviews.Service{Repo: app.InterviewsRepo}
	app.SalarySearchesService = &salarysearches.Service{Repo: app.SalarySearchesRepo}
}
