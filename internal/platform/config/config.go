package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by DB_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	DBDriver          string
	DatabaseURL       string
	EnableDBCheck     bool
	DBMaxConns        int
	SQLitePath        string
	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration
	SeedFile          string
	// CurrencyExponent is the number of minor-unit digits used to render amounts.
	CurrencyExponent   int
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DB_DRIVER", DriverMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("PGSQL_MAX_CONNS", 10)
	v.SetDefault("SQLITE_PATH", "ledger.db")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "erp-ledger")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("CURRENCY_EXPONENT", 2)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:      v.GetString("PGSQL_URL"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		DBMaxConns:       v.GetInt("PGSQL_MAX_CONNS"),
		SQLitePath:       v.GetString("SQLITE_PATH"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		SeedFile:         v.GetString("SEED_FILE"),
		CurrencyExponent: v.GetInt("CURRENCY_EXPONENT"),
		RateLimit:        v.GetString("RATE_LIMIT"),
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s, %s or %s)", c.DBDriver, DriverMemory, DriverPostgres, DriverSQLite)
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("PGSQL_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	}
	if c.CurrencyExponent < 0 || c.CurrencyExponent > 6 {
		return fmt.Errorf("CURRENCY_EXPONENT must be between 0 and 6, got %d", c.CurrencyExponent)
	}
	if c.JWTSecret == defaultJWTSecret {
		if c.IsProduction {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	return nil
}
