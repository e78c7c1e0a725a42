package config

import (
	"time"

	"github.com/parkspot-io/parkspot-api/internal/infrastructure/adapter/database"
)

// Storage driver names
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// StorageConfig selects and configures the persistence driver
type StorageConfig struct {
	Driver   string          `mapstructure:"driver"` // memory or postgres
	Database database.Config `mapstructure:"database"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MarketplaceConfig contains the business constants of the marketplace
type MarketplaceConfig struct {
	// ReservationFee is the total amount charged per reservation
	ReservationFee string `mapstructure:"reservationFee"`
	// ApplicationFee is the portion of the fee retained by the platform
	ApplicationFee string `mapstructure:"applicationFee"`
	// SearchRadiusKm is the default proximity radius for slot queries
	SearchRadiusKm float64 `mapstructure:"searchRadiusKm"`
	// InitialBalance is granted to new accounts; production sets "0.00"
	InitialBalance string `mapstructure:"initialBalance"`
	// BcryptCost is the cost factor for credential hashing (0 = library default)
	BcryptCost int `mapstructure:"bcryptCost"`
}
