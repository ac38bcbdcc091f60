package app

import (
	"context"
	"net/http"

	"go-leaveai/internal/approval"
	"go-leaveai/internal/audit"
	"go-leaveai/internal/balance"
	"go-leaveai/internal/company"
	"go-leaveai/internal/employee"
	"go-leaveai/internal/holiday"
	"go-leaveai/internal/judgment"
	"go-leaveai/internal/leave"
	"go-leaveai/internal/messaging/kafka"
	"go-leaveai/internal/notification"
	"go-leaveai/internal/policy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// modules is the service graph shared by the API and the consumer.
type modules struct {
	company company.Service
	holiday holiday.Service
	leave   leave.Service
}

func buildModules(in *infra) (modules, error) {
	cfg := in.cfg

	// --- Repositories ---
	approvalRepo := approval.NewRepository(in.gormDB)
	auditRepo := audit.NewRepository(in.gormDB)
	balanceRepo := balance.NewRepository(in.gormDB)
	companyRepo := company.NewRepository(in.gormDB)
	employeeRepo := employee.NewRepository(in.gormDB)
	holidayRepo := holiday.NewRepository(in.gormDB)
	leaveRepo := leave.NewRepository(in.gormDB)
	outboxRepo := kafka.NewOutboxRepository(in.sqlDB)
	policyRepo := policy.NewRepository(in.gormDB)

	// --- Judgment ---
	client, err := judgment.NewGeminiClient(context.Background(), judgment.GeminiConfig{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
	}, &http.Client{})
	if err != nil {
		return modules{}, err
	}
	judge := judgment.NewAdapter(client, judgment.AdapterConfig{
		Timeout:  cfg.AI.Timeout,
		Provider: judgment.ProviderGemini,
		Model:    cfg.AI.Model,
	})

	var notifier notification.Notifier
	if in.kafka != nil {
		notifier = notification.NewKafkaNotifier(in.kafka, cfg.Kafka.DecidedTopic)
	} else {
		notifier = notification.NewLogNotifier()
	}

	var locker leave.Locker
	if in.redis != nil {
		locker = leave.NewRedisLocker(in.redis)
	}

	// --- Services ---
	companyService := company.NewService(companyRepo, in.redis)
	holidayService := holiday.NewService(in.sqlDB, holidayRepo)
	leaveService := leave.NewService(leave.Deps{
		DB:        in.sqlDB,
		Repo:      leaveRepo,
		Employees: employeeRepo,
		Policies:  policyRepo,
		Balances:  balanceRepo,
		Holidays:  holidayRepo,
		WeeklyOff: companyService,
		Approvals: approvalRepo,
		Audit:     audit.NewTrail(auditRepo, outboxRepo),
		Judge:     judge,
		Notifier:  notifier,
		Locker:    locker,
		Thresholds: leave.Thresholds{
			Approve:      cfg.AI.ApproveThreshold,
			Reject:       cfg.AI.RejectThreshold,
			FallbackMode: cfg.AI.FallbackMode,
		},
	})

	if client == nil {
		zap.L().Named("app").Warn("ai api key not configured, every evaluation falls back",
			zap.String("fallback_mode", cfg.AI.FallbackMode),
		)
	}

	return modules{company: companyService, holiday: holidayService, leave: leaveService}, nil
}

func registerModules(router *gin.Engine, in *infra) error {
	m, err := buildModules(in)
	if err != nil {
		return err
	}
	secret := in.cfg.Auth.JWTSecret

	// --- Handlers ---
	companyHandler := company.NewHandler(m.company)
	holidayHandler := holiday.NewHandler(m.holiday)
	leaveHandler := leave.NewHandlerWithRedis(m.leave, in.redis)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, secret)
		holiday.RegisterRoutes(api, holidayHandler, secret)
		leave.RegisterRoutes(api, leaveHandler, secret, in.redis)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return nil
}
