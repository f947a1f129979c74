// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	once sync.Once
	// Global logger instance shared across the application
	Logger = logrus.New()
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	DB struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"db" yaml:"db"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Import struct {
		MappingsFile string `mapstructure:"mappings_file" yaml:"mappings_file"`
	} `mapstructure:"import" yaml:"import"`

	Draft struct {
		DefaultCategoryID string `mapstructure:"default_category_id" yaml:"default_category_id"`
		SiteID            string `mapstructure:"site_id" yaml:"site_id"`
	} `mapstructure:"draft" yaml:"draft"`

	Pricing struct {
		MarketPercent  float64 `mapstructure:"market_percent" yaml:"market_percent"`
		MarketFixed    float64 `mapstructure:"market_fixed" yaml:"market_fixed"`
		PaymentPercent float64 `mapstructure:"payment_percent" yaml:"payment_percent"`
		PaymentFixed   float64 `mapstructure:"payment_fixed" yaml:"payment_fixed"`
	} `mapstructure:"pricing" yaml:"pricing"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then RESELLER_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.reseller-manager")
	v.AddConfigPath(".reseller-manager")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RESELLER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("db.path", defaultDBPath())

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("import.mappings_file", "")

	v.SetDefault("draft.default_category_id", "")
	v.SetDefault("draft.site_id", "US")

	v.SetDefault("pricing.market_percent", 0.129)
	v.SetDefault("pricing.market_fixed", 0.30)
	v.SetDefault("pricing.payment_percent", 0.029)
	v.SetDefault("pricing.payment_fixed", 0.30)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "reseller.db"
	}
	return filepath.Join(home, ".reseller-manager", "reseller.db")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.DB.Path == "" {
		return fmt.Errorf("db.path must not be empty")
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	feePercent := config.Pricing.MarketPercent + config.Pricing.PaymentPercent
	if feePercent < 0 || feePercent >= 1 {
		return fmt.Errorf("combined fee percentage must be in [0,1), got: %f", feePercent)
	}

	return nil
}

// ConfigureLoggingFromConfig configures the shared logger from the Config
// struct and returns it.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				Logger.Debug("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Infof("Loaded environment variables from %s", envFile)
	})
}
