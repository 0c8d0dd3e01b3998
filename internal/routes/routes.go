package routes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/littleoaks/preschool-api/internal/activities"
	"github.com/littleoaks/preschool-api/internal/announcements"
	"github.com/littleoaks/preschool-api/internal/auth"
	"github.com/littleoaks/preschool-api/internal/config"
	"github.com/littleoaks/preschool-api/internal/exams"
	"github.com/littleoaks/preschool-api/internal/expenses"
	"github.com/littleoaks/preschool-api/internal/fees"
	"github.com/littleoaks/preschool-api/internal/messages"
	"github.com/littleoaks/preschool-api/internal/middleware"
	"github.com/littleoaks/preschool-api/internal/notification"
	"github.com/littleoaks/preschool-api/internal/reports"
	"github.com/littleoaks/preschool-api/internal/staff"
	"github.com/littleoaks/preschool-api/internal/students"
	"github.com/littleoaks/preschool-api/internal/users"
)

const idempotencyTTL = 24 * time.Hour

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.DB == nil {
		return fmt.Errorf("database is required")
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, idempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories and services
	userRepo := users.NewPostgresRepository(d.DB)
	userSvc := users.NewService(userRepo)
	studentRepo := students.NewPostgresRepository(d.DB)
	studentSvc := students.NewService(studentRepo)
	staffRepo := staff.NewPostgresRepository(d.DB)
	feeSvc := fees.NewService(fees.NewPostgresRepository(d.DB))
	activitySvc := activities.NewService(activities.NewPostgresRepository(d.DB))
	examRepo := exams.NewPostgresRepository(d.DB)
	reportRepo := reports.NewPostgresRepository(d.DB)
	announcementRepo := announcements.NewPostgresRepository(d.DB)
	messageRepo := messages.NewPostgresRepository(d.DB)
	expenseRepo := expenses.NewPostgresRepository(d.DB)

	notifier := notification.NewLoggerNotifier(d.Logger)

	// Auth core: Redis-backed OTP registry when available, in-process
	// fallback otherwise.
	var otpStore auth.OTPStore
	if d.Cache != nil {
		otpStore = auth.NewRedisOTPStore(d.Cache)
	} else {
		otpStore = auth.NewMemoryOTPStore()
	}
	resolver := auth.NewResolver(d.Cfg.AdminPhones, userRepo)

	var assertVerifier auth.AssertionVerifier
	if d.Cfg.OIDCIssuer != "" {
		v, err := auth.NewOIDCVerifier(context.Background(), d.Cfg.OIDCIssuer, d.Cfg.OIDCAudience)
		if err != nil {
			return fmt.Errorf("configure federated login: %w", err)
		}
		assertVerifier = v
	}

	authSvc := auth.NewService(d.Cfg, otpStore, resolver, assertVerifier, notifier)
	authHandler := auth.NewHandler(authSvc)

	api := app.Group("/api/v1")

	// Public routes
	RegisterAuthRoutes(api, authHandler, middleware.OTPRateLimit(d.Cache, 5))

	// Protected routes
	protected := api.Group("", middleware.Authenticate(d.Cfg.JWTSecret))
	RegisterUserRoutes(protected, users.NewHandler(userSvc))
	RegisterStudentRoutes(protected, students.NewHandler(studentSvc))
	RegisterStaffRoutes(protected, staff.NewHandler(staffRepo))
	RegisterFeeRoutes(protected, fees.NewHandler(feeSvc))
	RegisterExamRoutes(protected, exams.NewHandler(examRepo))
	RegisterReportRoutes(protected, reports.NewHandler(reportRepo))
	RegisterAnnouncementRoutes(protected, announcements.NewHandler(announcementRepo, notifier))
	RegisterActivityRoutes(protected, activities.NewHandler(activitySvc))
	RegisterMessageRoutes(protected, messages.NewHandler(messageRepo))
	RegisterExpenseRoutes(protected, expenses.NewHandler(expenseRepo))

	return nil
}
