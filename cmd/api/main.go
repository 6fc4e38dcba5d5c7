package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-screenshot-organizer/config"
	_ "smart-screenshot-organizer/docs" // Swagger docs
	"smart-screenshot-organizer/internal/capture/repository/memory"
	"smart-screenshot-organizer/internal/capture/usecase"
	"smart-screenshot-organizer/internal/categorize"
	"smart-screenshot-organizer/internal/httpserver"
	"smart-screenshot-organizer/pkg/datemath"
	"smart-screenshot-organizer/pkg/gcalendar"
	"smart-screenshot-organizer/pkg/gemini"
	"smart-screenshot-organizer/pkg/log"
	"smart-screenshot-organizer/pkg/telegram"
)

// @title       Smart Screenshot Organizer API
// @description Turns OCR text recovered from screenshots into todos, events, reminders, and achievements, with optional Gemini analysis, Google Calendar export, and Telegram summaries.
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

	logger.Info(ctx, "Starting Smart Screenshot Organizer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser + categorization engine
	timezone := cfg.Gemini.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
		timezone = "UTC"
	}
	engine := categorize.New(dateMathParser)

	// 4. Optional collaborators
	var llm usecase.LLMClient
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			geminiClient.SetModel(cfg.Gemini.Model)
		}
		llm = geminiClient
		logger.Infof(ctx, "Gemini analysis enabled (model=%s)", geminiClient.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, running rule-based only")
	}

	var calendar usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar export enabled")
		}
	}

	var notifier usecase.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier = telegram.NewBot(cfg.Telegram.BotToken)
		logger.Info(ctx, "Telegram notifications enabled")
	}

	// 5. Capture domain
	captureRepo := memory.New()
	captureUC := usecase.New(logger, engine, llm, calendar, notifier, cfg.Telegram.ChatID, captureRepo, timezone)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CaptureUC:       captureUC,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
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
