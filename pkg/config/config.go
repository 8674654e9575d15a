package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIServerConfig represents the admin API server configuration
type APIServerConfig struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Logging       LoggingConfig       `yaml:"logging"`
	Credentials   CredentialsConfig   `yaml:"credentials"`
	KeyManagement KeyManagementConfig `yaml:"key_management"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" env:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"SERVER_PORT" default:"8081" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DATABASE_HOST" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" env:"DATABASE_PORT" default:"5432" validate:"gt=0"`
	User     string `yaml:"user" env:"DATABASE_USER" validate:"required"`
	Password string `yaml:"password" env:"DATABASE_PASSWORD"`
	Database string `yaml:"database" env:"DATABASE_NAME" default:"deploy_admin" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" env:"DATABASE_SSL_MODE" default:"disable" validate:"oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `yaml:"max_open_conns" default:"10" validate:"gt=0"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" default:"5m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" default:"5s"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" default:"info"`
	Format     string `yaml:"format" env:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// CredentialsConfig holds the endpoints and timeouts used to probe user credentials
type CredentialsConfig struct {
	HeliusWSURL    string        `yaml:"helius_ws_url" default:"wss://rpc-ws.helius.xyz/" validate:"url"`
	RPCTimeout     time.Duration `yaml:"rpc_timeout" default:"5s" validate:"gt=0"`
	RailwayURL     string        `yaml:"railway_url" default:"https://backboard.railway.app/graphql/v2" validate:"url"`
	RailwayTimeout time.Duration `yaml:"railway_timeout" default:"10s" validate:"gt=0"`

	// AllowPrivateRPCTargets lets the RPC check reach loopback and private
	// networks. Leave it off on any server reachable by untrusted callers.
	AllowPrivateRPCTargets bool `yaml:"allow_private_rpc_targets" env:"ALLOW_PRIVATE_RPC_TARGETS"`
}

// KeyManagementConfig names the environment variable holding the
// base64-encoded master key used to encrypt stored credentials.
type KeyManagementConfig struct {
	MasterKeyEnv string `yaml:"master_key_env" default:"DEPLOY_ADMIN_MASTER_KEY"`
}

// MetricsConfig contains prometheus endpoint settings
type MetricsConfig struct {
	Disabled bool   `yaml:"disabled" env:"METRICS_DISABLED"`
	Path     string `yaml:"path" default:"/metrics" validate:"startswith=/"`
}

// LoadAPIServer loads API server configuration from a YAML file.
// Values from a .env file in the working directory and from the process
// environment override the file.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAPIServer(raw)
}

// ParseAPIServer builds the configuration from raw YAML.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
