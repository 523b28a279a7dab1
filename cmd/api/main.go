package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-contact-backend/config"
	_ "portfolio-contact-backend/docs" // Important for Swagger
	v1 "portfolio-contact-backend/internal/delivery/http/v1"
	"portfolio-contact-backend/internal/delivery/http/view"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Contact form pipeline of the wasky_links portfolio site.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logger.Log.Info("Starting contact backend", "port", cfg.Port, "email_provider", cfg.EmailProvider)
	gin.SetMode(cfg.GinMode)

	// 3. Setup Email Service
	var dispatcher usecase.Dispatcher
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable", "error", err)
	} else {
		dispatcher = usecase.NewContactDispatcher(sender, email.TemplatesFromConfig(cfg), cfg.OwnerEmail)
	}

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(dispatcher, usecase.WithLocation(cfg.Location()))
	greetingUC := usecase.NewGreetingUsecase(cfg.GreetingMessage)
	healthUC := usecase.NewHealthUsecase(cfg.EmailProvider, dispatcher != nil)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Log.Error("Failed to parse page templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		GreetingUC: greetingUC,
		HealthUC:   healthUC,
		Renderer:   renderer,
		Config:     cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
