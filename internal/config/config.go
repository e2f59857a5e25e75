package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
	Operators    []string `mapstructure:"operators"` // JWT subjects granted operator privileges
}

// RandomOrgConfig holds random.org signed API configuration
type RandomOrgConfig struct {
	APIURL        string        `mapstructure:"api_url"`
	APIKeys       []string      `mapstructure:"api_keys"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
	DailyLimit    int           `mapstructure:"daily_limit"`    // per-key request allowance per day
	ResetHourUTC  int           `mapstructure:"reset_hour_utc"` // hour at which the daily allowance resets
}

// RedditConfig holds reddit API configuration
type RedditConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	UserAgent          string        `mapstructure:"user_agent"`
	HTTPTimeout        time.Duration `mapstructure:"http_timeout"`
	IndirectionTimeout time.Duration `mapstructure:"indirection_timeout"` // timeout for fetching externally hosted slot lists
}

// PipelineConfig holds draw pipeline configuration
type PipelineConfig struct {
	Cooldown        time.Duration `mapstructure:"cooldown"` // pause between consecutive draws
	MaxSlots        int           `mapstructure:"max_slots"`
	MaxWinners      int           `mapstructure:"max_winners"`
	DisplayTimezone string        `mapstructure:"display_timezone"`
}

// LedgerConfig holds completion ledger configuration
type LedgerConfig struct {
	Path string `mapstructure:"path"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// CoordinatorConfig holds configuration for the coordinator service
type CoordinatorConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Auth       AuthConfig      `mapstructure:"auth"`
	RandomOrg  RandomOrgConfig `mapstructure:"randomorg"`
	Reddit     RedditConfig    `mapstructure:"reddit"`
	Pipeline   PipelineConfig  `mapstructure:"pipeline"`
	Ledger     LedgerConfig    `mapstructure:"ledger"`
	Worker     WorkerConfig    `mapstructure:"worker"`
}

// LoadCoordinatorConfig loads configuration for the coordinator service
func LoadCoordinatorConfig(configFile string, envPath string) (*CoordinatorConfig, error) {
	v := configureViper("coordinator", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "RAFFLE_EVENTS")
	v.SetDefault("nats.connection_name", "raffle-coordinator")
	v.SetDefault("randomorg.api_url", "https://api.random.org/json-rpc/4/invoke")
	v.SetDefault("randomorg.http_timeout", "30s")
	v.SetDefault("randomorg.retry_interval", "5m")
	v.SetDefault("randomorg.daily_limit", 4000)
	v.SetDefault("randomorg.reset_hour_utc", 9)
	v.SetDefault("reddit.base_url", "https://www.reddit.com")
	v.SetDefault("reddit.user_agent", "raffle-coordinator/1.0")
	v.SetDefault("reddit.http_timeout", "30s")
	v.SetDefault("reddit.indirection_timeout", "10s")
	v.SetDefault("pipeline.cooldown", "5s")
	v.SetDefault("pipeline.max_slots", 1000000)
	v.SetDefault("pipeline.max_winners", 1000)
	v.SetDefault("pipeline.display_timezone", "US/Eastern")
	v.SetDefault("ledger.path", "data/completed.txt")
	v.SetDefault("worker.pool_size", 10)
	v.SetDefault("worker.queue_size", 256)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config CoordinatorConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(config.RandomOrg.APIKeys) == 0 {
		return nil, errors.New("randomorg.api_keys is required")
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/coordinator/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("RAFFLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		"auth.operators",
		// random.org
		"randomorg.api_url",
		"randomorg.api_keys",
		"randomorg.http_timeout",
		"randomorg.retry_interval",
		"randomorg.daily_limit",
		"randomorg.reset_hour_utc",
		// Reddit
		"reddit.base_url",
		"reddit.user_agent",
		"reddit.http_timeout",
		"reddit.indirection_timeout",
		// Pipeline
		"pipeline.cooldown",
		"pipeline.max_slots",
		"pipeline.max_winners",
		"pipeline.display_timezone",
		// Ledger
		"ledger.path",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
