package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// Environment variables with the PS_ prefix override file values.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		// A missing .env file is not fatal
		fmt.Println("Warning: could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Fall back to defaults when no config file exists for the environment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("PS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.database.port", 5432)
	v.SetDefault("storage.database.sslMode", "disable")
	v.SetDefault("storage.database.maxOpenConns", 25)
	v.SetDefault("storage.database.maxIdleConns", 25)
	v.SetDefault("storage.database.connMaxLifetime", 5)  // minutes
	v.SetDefault("storage.database.connMaxIdleTime", 5)  // minutes
	v.SetDefault("storage.database.queryTimeout", 5)     // seconds
	v.SetDefault("storage.database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("marketplace.reservationFee", "2.00")
	v.SetDefault("marketplace.applicationFee", "1.00")
	v.SetDefault("marketplace.searchRadiusKm", 5.0)
	v.SetDefault("marketplace.initialBalance", "10.00")
	v.SetDefault("marketplace.bcryptCost", 0)
}

// getEnvironment determines the environment based on PS_ENV
func getEnvironment() string {
	env := os.Getenv("PS_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures sensitive environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	if dbHost := os.Getenv("PS_DB_HOST"); dbHost != "" {
		v.Set("storage.database.host", dbHost)
	}
	if dbPort := os.Getenv("PS_DB_PORT"); dbPort != "" {
		v.Set("storage.database.port", dbPort)
	}
	if dbUser := os.Getenv("PS_DB_USERNAME"); dbUser != "" {
		v.Set("storage.database.username", dbUser)
	}
	if dbPass := os.Getenv("PS_DB_PASSWORD"); dbPass != "" {
		v.Set("storage.database.password", dbPass)
	}
	if dbName := os.Getenv("PS_DB_NAME"); dbName != "" {
		v.Set("storage.database.database", dbName)
	}
	if driver := os.Getenv("PS_STORAGE_DRIVER"); driver != "" {
		v.Set("storage.driver", driver)
	}
	if serverPort := os.Getenv("PS_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}
	if logLevel := os.Getenv("PS_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
}

// processDurations converts duration fields from their raw values
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Storage.Database.ConnMaxLifetime = time.Duration(config.Storage.Database.ConnMaxLifetime) * time.Minute
	config.Storage.Database.ConnMaxIdleTime = time.Duration(config.Storage.Database.ConnMaxIdleTime) * time.Minute
	config.Storage.Database.QueryTimeout = time.Duration(config.Storage.Database.QueryTimeout) * time.Second
}
