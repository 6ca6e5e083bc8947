package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextplay-automation/config"
	_ "nextplay-automation/docs" // Swagger docs
	automationHTTP "nextplay-automation/internal/automation/delivery/http"
	"nextplay-automation/internal/automation/handlers"
	automationUC "nextplay-automation/internal/automation/usecase"
	"nextplay-automation/internal/httpserver"
	"nextplay-automation/internal/intent"
	"nextplay-automation/internal/middleware"
	"nextplay-automation/pkg/gcalendar"
	"nextplay-automation/pkg/llmprovider"
	"nextplay-automation/pkg/log"
)

// @title       NextPlay Automation API
// @description Intent classification and automation dispatch for customer messages.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NextPlay Automation...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		Attempts:        cfg.LLM.Attempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout),
	}, logger)

	// 4. Intent classifier
	classifier := intent.New(manager, logger)

	// 5. Automation handlers
	handlerCfg := handlers.Config{
		Temperature: cfg.Automation.Temperature,
		MaxTokens:   cfg.Automation.MaxReplyTokens,
	}

	// Google Calendar client (optional, call-hold booking)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	uc := automationUC.New(logger, classifier, automationUC.Handlers{
		Sales:   handlers.NewSales(manager, handlerCfg, logger),
		Support: handlers.NewSupport(manager, handlerCfg, logger),
		Email:   handlers.NewEmail(manager, handlerCfg, logger),
		General: handlers.NewGeneral(manager, handlerCfg, logger),
		Payment: handlers.NewPayment(),
		Call:    handlers.NewCall(calendarClient, cfg.GoogleCalendar.CalendarID, logger),
	})

	// 6. Delivery + HTTP server
	automationHandler := automationHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		RateLimitPerMin:   cfg.Automation.RateLimitPerMin,
		AutomationHandler: automationHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration returns 0 for empty or malformed values so the manager
// falls back to its defaults.
func parseDuration(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}
