package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/config"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/server"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 10 * time.Second

// @title Pizza Orders API
// @version 1.0
// @description Customers, a soft-deleted pizza catalog and orders with state-dependent mutability.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	loadDotenvFile()

	configuration, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	setUpLogger(configuration)

	if err := run(configuration); err != nil {
		log.WithError(err).Fatal("Server stopped with error")
	}
	log.Info("Server stopped")
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter. LOG_LEVEL wins
// over the level implied by APP_ENV.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		level = config.LevelForEnvironment(conf.Environment)
		log.WithField("log_level", conf.LogLevel).Warn("Unknown LOG_LEVEL, using environment default")
	}
	log.SetLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func run(conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupDatabase(ctx, conf)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	shutdownTracing, err := telemetry.InitTracing(ctx, telemetry.Config{
		Enabled:     conf.TracingEnabled,
		Environment: conf.Environment,
		Version:     version,
		Endpoint:    conf.OTLPEndpoint,
		Insecure:    conf.OTLPInsecure,
		SampleRatio: conf.TraceSampleRatio,
	})
	if err != nil {
		return err
	}

	router := server.NewRouter(server.RouterConfig{
		DB:             db,
		AuthEnabled:    conf.AuthEnabled,
		JWTSecret:      conf.JWTSecret,
		AllowedOrigins: conf.CORSAllowedOrigins,
		TracingEnabled: conf.TracingEnabled,
	})

	srv := &http.Server{
		Addr:              conf.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{
			"addr":         srv.Addr,
			"auth_enabled": conf.AuthEnabled,
			"version":      version,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return shutdownTracing(shutdownCtx)
	})

	return g.Wait()
}

// setupDatabase connects, migrates and optionally seeds the database
func setupDatabase(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	db, err := database.InitDatabase(ctx, conf.Database())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if conf.SeedDatabase {
		if err := database.Seed(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}
}
