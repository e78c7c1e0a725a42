package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/parkspot-io/parkspot-api/internal/domain/entity"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/core"
	"github.com/parkspot-io/parkspot-api/internal/domain/port/persistence"
	reservationUseCase "github.com/parkspot-io/parkspot-api/internal/domain/usecase/reservation"
	slotUseCase "github.com/parkspot-io/parkspot-api/internal/domain/usecase/slot"
	userUseCase "github.com/parkspot-io/parkspot-api/internal/domain/usecase/user"

	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/api/handler"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/api/routes"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/database"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/hash"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/logger"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/memory"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/repository"
	timeProvider "github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/time"
	"github.com/parkspot-io/parkspot-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logLevelFor(cfg.Logger.Level))
	tp := timeProvider.NewRealTimeProvider()
	hasher := hash.NewBcryptHasher(cfg.Marketplace.BcryptCost)

	// Storage selection: in-memory by default, postgres when configured
	var (
		userRepo        persistence.UserRepository
		slotRepo        persistence.SlotRepository
		reservationRepo persistence.ReservationRepository
		transactionRepo persistence.TransactionRepository
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		conn, err := database.NewConnection(&cfg.Storage.Database)
		if err != nil {
			appLogger.Error("Failed to connect to database", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer conn.Close()

		if err := conn.Migrate(); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		userRepo = repository.NewUserRepository(conn.DB, tp, appLogger)
		slotRepo = repository.NewSlotRepository(conn.DB, tp, appLogger)
		reservationRepo = repository.NewReservationRepository(conn.DB, appLogger)
		transactionRepo = repository.NewTransactionRepository(conn.DB, appLogger)
	case config.DriverMemory:
		userRepo = memory.NewUserRepository(tp)
		slotRepo = memory.NewSlotRepository(tp)
		reservationRepo = memory.NewReservationRepository()
		transactionRepo = memory.NewTransactionRepository()
	default:
		log.Fatalf("Unknown storage driver: %s", cfg.Storage.Driver)
	}

	fee, err := feePolicy(cfg)
	if err != nil {
		log.Fatalf("Invalid fee configuration: %v", err)
	}

	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, hasher, tp, appLogger, cfg.Marketplace.InitialBalance)
	slotUseCaseImpl := slotUseCase.NewSlotUseCase(slotRepo, userRepo, tp, appLogger)
	reservationUseCaseImpl := reservationUseCase.NewEngine(
		userRepo,
		slotRepo,
		reservationRepo,
		transactionRepo,
		tp,
		appLogger,
		fee,
	)

	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	slotHandler := handler.NewSlotHandler(slotUseCaseImpl, appLogger, cfg.Marketplace.SearchRadiusKm)
	reservationHandler := handler.NewReservationHandler(reservationUseCaseImpl, appLogger)
	transactionHandler := handler.NewTransactionHandler(reservationUseCaseImpl, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, userHandler, slotHandler, reservationHandler, transactionHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":    cfg.Server.Port,
			"env":     cfg.Environment,
			"storage": cfg.Storage.Driver,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// logLevelFor maps the configured level name to a log level
func logLevelFor(level string) core.LogLevel {
	switch level {
	case "debug":
		return core.LogLevelDebug
	case "warn":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// feePolicy parses the configured reservation fee split
func feePolicy(cfg *config.Config) (reservationUseCase.FeePolicy, error) {
	amount, err := entity.ParseAmount(cfg.Marketplace.ReservationFee)
	if err != nil {
		return reservationUseCase.FeePolicy{}, fmt.Errorf("reservationFee: %w", err)
	}

	applicationFee, err := entity.ParseAmount(cfg.Marketplace.ApplicationFee)
	if err != nil {
		return reservationUseCase.FeePolicy{}, fmt.Errorf("applicationFee: %w", err)
	}

	if applicationFee > amount {
		return reservationUseCase.FeePolicy{}, fmt.Errorf("applicationFee %s exceeds reservationFee %s",
			cfg.Marketplace.ApplicationFee, cfg.Marketplace.ReservationFee)
	}

	return reservationUseCase.FeePolicy{
		AmountInCents:         amount,
		ApplicationFeeInCents: applicationFee,
	}, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Storage.Driver == config.DriverPostgres {
		if cfg.Storage.Database.Host == "" {
			missingConfigs = append(missingConfigs, "storage.database.host (or PS_DB_HOST)")
		}
		if cfg.Storage.Database.Username == "" {
			missingConfigs = append(missingConfigs, "storage.database.username (or PS_DB_USERNAME)")
		}
		if cfg.Storage.Database.Database == "" {
			missingConfigs = append(missingConfigs, "storage.database.database (or PS_DB_NAME)")
		}
	}

	if cfg.Marketplace.ReservationFee == "" {
		missingConfigs = append(missingConfigs, "marketplace.reservationFee")
	}
	if cfg.Marketplace.ApplicationFee == "" {
		missingConfigs = append(missingConfigs, "marketplace.applicationFee")
	}
	if cfg.Marketplace.SearchRadiusKm <= 0 {
		missingConfigs = append(missingConfigs, "marketplace.searchRadiusKm")
	}
	if cfg.Marketplace.InitialBalance == "" {
		missingConfigs = append(missingConfigs, "marketplace.initialBalance")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
