package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expedientes_app_go/config"
	"expedientes_app_go/db"
	"expedientes_app_go/handlers"
	"expedientes_app_go/middleware"
	"expedientes_app_go/repository"
	"expedientes_app_go/services"
	"expedientes_app_go/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize persistence
	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	repo := repository.New(ctx, store)
	services.SeedAdminFromEnv(ctx, repo)

	var transport services.Transport = services.NoopTransport{}
	if cfg.SimulateLatency {
		log.Printf("[INFO] Simulating latency (scale %.2f, failure rate %.2f)", cfg.LatencyScale, cfg.FailureRate)
		transport = services.NewRandomTransport(cfg.LatencyScale, cfg.FailureRate)
	}
	svc := services.New(repo, transport)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.NewWriteLimiter(middleware.WriteLimitConfig{
		Requests: cfg.WriteRateLimit,
		Window:   time.Minute,
	}).Middleware())

	handlers.Register(e, handlers.NewAPI(svc, repo, cfg))

	// Background agenda digest
	if cfg.AgendaCron != "" {
		agendaCron, err := jobs.StartAgendaCron(ctx, repo, cfg, cfg.AgendaCron, jobs.AgendaLocation(cfg))
		if err != nil {
			log.Fatalf("Failed to schedule agenda digest: %v", err)
		}
		defer agendaCron.Stop()
	} else {
		go jobs.RunAgendaScheduler(ctx, repo, cfg, cfg.AgendaInterval)
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
}
