package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/internal/infrastructure/config"
	"gearcast-service/internal/infrastructure/oauth"
	"gearcast-service/internal/infrastructure/persistence"
	sheetRepo "gearcast-service/internal/interface/repository"
	"gearcast-service/internal/usecase"
	"gearcast-service/pkg/logger"
	"gearcast-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Gearcast Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up Sheets OAuth
	sheetsOAuth := oauth.NewSheetsOAuth(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRefreshToken,
		log,
	)
	tokenSource := sheetsOAuth.GetTokenSource(ctx)

	sheetsService, err := sheets.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		log.Fatal("Failed to create Sheets service", "error", err)
	}

	// Set up repositories
	gridRepo := sheetRepo.NewSheetsGridRepository(sheetsService, cfg.GridSpreadsheetID, cfg.GridSheetName, log)
	calendarRepo := sheetRepo.NewSheetsCalendarRepository(sheetsService, cfg.CalSpreadsheetID, log)
	registryRepo := sheetRepo.NewGormStatusRegistryRepository(gormDB)
	runRepo := sheetRepo.NewMongoForecastRunRepository(db)

	m := metrics.NewMetrics("gearcast")

	forecastService := usecase.NewForecastService(
		engineConfig(cfg),
		gridRepo,
		calendarRepo,
		registryRepo,
		runRepo,
		m,
		log,
	)

	// Run forecast reconciliation on a ticker, with one immediate pass at boot
	go func() {
		runOnce := func() {
			runCtx, runCancel := context.WithTimeout(ctx, cfg.RunTimeout)
			defer runCancel()
			if _, err := forecastService.RunForecast(runCtx); err != nil {
				log.Error("Forecast run failed", "error", err)
			}
		}

		runOnce()

		runTicker := time.NewTicker(cfg.RunInterval)
		defer runTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Forecast runner stopped")
				return
			case <-runTicker.C:
				runOnce()
			}
		}
	}()

	// Set up HTTP server for metrics and the latest forecast
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		run, err := runRepo.GetLatest(r.Context())
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				http.Error(w, "no forecast run yet", http.StatusNotFound)
				return
			}
			log.Error("Failed to load latest forecast", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(run)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Gearcast Service stopped")
}

// engineConfig maps environment overrides onto the default reconciliation
// policy. Unset env vars keep the production defaults.
func engineConfig(cfg *config.Config) usecase.Config {
	engine := usecase.DefaultConfig()

	if cfg.WindowDays > 0 {
		engine.WindowDays = cfg.WindowDays
	}
	if len(cfg.TrackableClasses) > 0 {
		engine.TrackableClasses = cfg.TrackableClasses
	}
	if len(cfg.ReservedKeywords) > 0 {
		engine.ReservedKeywords = cfg.ReservedKeywords
	}
	if len(cfg.ValidTodayTags) > 0 {
		engine.ValidTodayTags = entity.ParseStatusTags(cfg.ValidTodayTags)
	}
	if len(cfg.RegistryClasses) > 0 {
		engine.RegistryClasses = cfg.RegistryClasses
	}
	if cfg.HomeLocation != "" {
		engine.HomeLocation = cfg.HomeLocation
	}
	if cfg.HomeCode != "" {
		engine.HomeCode = cfg.HomeCode
	}
	engine.WeekendAdjust = cfg.WeekendAdjust

	return engine
}
