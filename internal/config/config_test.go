package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCoordinatorConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *CoordinatorConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
  operators:
    - "operator-1"
randomorg:
  api_url: "https://api.random.org/json-rpc/4/invoke"
  api_keys:
    - "rk-1"
    - "rk-2"
  http_timeout: "45s"
  retry_interval: "2m"
  daily_limit: 500
  reset_hour_utc: 7
reddit:
  base_url: "https://www.reddit.com"
  user_agent: "test-agent/1.0"
  http_timeout: "15s"
  indirection_timeout: "5s"
pipeline:
  cooldown: "10s"
  max_slots: 500000
  max_winners: 500
  display_timezone: "US/Eastern"
ledger:
  path: "/var/lib/raffle/completed.txt"
worker:
  pool_size: 20
  queue_size: 512
`,
			expectError: false,
			validate: func(t *testing.T, cfg *CoordinatorConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 5, cfg.NATS.MaxReconnects)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
				assert.Equal(t, []string{"operator-1"}, cfg.Auth.Operators)
				assert.Equal(t, []string{"rk-1", "rk-2"}, cfg.RandomOrg.APIKeys)
				assert.Equal(t, 45*time.Second, cfg.RandomOrg.HTTPTimeout)
				assert.Equal(t, 2*time.Minute, cfg.RandomOrg.RetryInterval)
				assert.Equal(t, 500, cfg.RandomOrg.DailyLimit)
				assert.Equal(t, 7, cfg.RandomOrg.ResetHourUTC)
				assert.Equal(t, "test-agent/1.0", cfg.Reddit.UserAgent)
				assert.Equal(t, 5*time.Second, cfg.Reddit.IndirectionTimeout)
				assert.Equal(t, 10*time.Second, cfg.Pipeline.Cooldown)
				assert.Equal(t, 500000, cfg.Pipeline.MaxSlots)
				assert.Equal(t, 500, cfg.Pipeline.MaxWinners)
				assert.Equal(t, "/var/lib/raffle/completed.txt", cfg.Ledger.Path)
				assert.Equal(t, 20, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 512, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
randomorg:
  api_keys:
    - "rk-1"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *CoordinatorConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "RAFFLE_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "https://api.random.org/json-rpc/4/invoke", cfg.RandomOrg.APIURL)
				assert.Equal(t, 30*time.Second, cfg.RandomOrg.HTTPTimeout)
				assert.Equal(t, 5*time.Minute, cfg.RandomOrg.RetryInterval)
				assert.Equal(t, 4000, cfg.RandomOrg.DailyLimit)
				assert.Equal(t, 9, cfg.RandomOrg.ResetHourUTC)
				assert.Equal(t, "https://www.reddit.com", cfg.Reddit.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.Reddit.IndirectionTimeout)
				assert.Equal(t, 5*time.Second, cfg.Pipeline.Cooldown)
				assert.Equal(t, 1000000, cfg.Pipeline.MaxSlots)
				assert.Equal(t, 1000, cfg.Pipeline.MaxWinners)
				assert.Equal(t, "US/Eastern", cfg.Pipeline.DisplayTimezone)
				assert.Equal(t, "data/completed.txt", cfg.Ledger.Path)
				assert.Equal(t, 10, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 256, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "missing randomorg api keys",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadCoordinatorConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses RAFFLE_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `RAFFLE_DEBUG=true
RAFFLE_DATABASE_HOST=env-host
RAFFLE_DATABASE_PORT=3306
RAFFLE_DATABASE_USER=env-user
RAFFLE_DATABASE_PASSWORD=env-pass
RAFFLE_DATABASE_DBNAME=env-db
RAFFLE_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
randomorg:
  api_keys:
    - "rk-1"
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadCoordinatorConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify that environment variables from .env file override config file values
	// The .env file is loaded via godotenv.Overload, which sets actual environment variables
	// Viper's AutomaticEnv then picks them up with RAFFLE_ prefix
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
