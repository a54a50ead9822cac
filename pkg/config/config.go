package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration shared by both the operator and the
// canceler binaries. Each process loads the whole file but only reads
// the sections it needs (an operator never reads CancelerConfig and
// vice versa), so one config file can drive a whole deployment.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Chains     []ChainConfig    `yaml:"chains" validate:"required,dive"`
	Operator   OperatorConfig   `yaml:"operator"`
	Canceler   CancelerConfig   `yaml:"canceler"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings for the component's
// observation surface (/health, /status, /pending, /metrics).
type ServerConfig struct {
	Host string `yaml:"host" default:"0.0.0.0"`
	Port int    `yaml:"port" default:"8090" validate:"gt=0,lt=65536"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"watchtower_bridge"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
}

// ChainKind distinguishes the wire family a ChainConfig talks, so the
// operator and canceler can route to the right adapter without
// re-deriving it from the RPC URL.
type ChainKind string

const (
	ChainKindEVM    ChainKind = "evm"
	ChainKindCosmos ChainKind = "cosmos"
)

// ChainConfig is one watched/driven chain. The bridge-internal
// ChainId (assigned by the chain registry via RegisterChain) is
// distinct from NativeChainID, which is only meaningful for EVM
// EIP-155 signing domains and is ignored for Cosmos-like chains.
type ChainConfig struct {
	BridgeChainID   uint32        `yaml:"bridge_chain_id" validate:"required"`
	Kind            ChainKind     `yaml:"kind" validate:"required,oneof=evm cosmos"`
	Identifier      string        `yaml:"identifier" validate:"required"`
	RPCURL          string        `yaml:"rpc_url" validate:"required"`
	NativeChainID   int64         `yaml:"native_chain_id"`
	Bech32HRP       string        `yaml:"bech32_hrp"`
	BridgeContract  string        `yaml:"bridge_contract" validate:"required"`
	SignerKeyEnv    string        `yaml:"signer_key_env" validate:"required"`
	GasLimit        uint64        `yaml:"gas_limit" default:"300000"`
	MaxGasPriceWei  string        `yaml:"max_gas_price_wei"`
	PollingInterval time.Duration `yaml:"polling_interval" default:"15s"`
	StartBlock      int64         `yaml:"start_block"`
	// ConfirmationBlocks sets the readiness threshold: a chain counts
	// as ready once its last scanned block is within
	// ConfirmationBlocks+1 of head. Watchers and the canceler scan up
	// to the chain head; events are not held back by this many blocks.
	ConfirmationBlocks uint64      `yaml:"confirmation_blocks" default:"12"`
	Retry              RetryConfig `yaml:"retry"`
	// Tokens lists the local tokens this chain drives, so the operator
	// knows which execute transition (unlock vs. mint) to call without
	// a read-path round trip.
	Tokens []TokenConfig `yaml:"tokens"`
}

// TokenConfig names a local token's handling discipline and decimals,
// mirroring the on-chain registry's registerToken call.
type TokenConfig struct {
	LocalToken string       `yaml:"local_token" validate:"required"`
	Type       string       `yaml:"type" validate:"required,oneof=lock_unlock mint_burn"`
	Decimals   uint8        `yaml:"decimals" default:"18"`
	Routes     []TokenRoute `yaml:"routes"`
}

// TokenRoute mirrors one setTokenDestinationWithDecimals call: where
// LocalToken is represented on a destination chain. The operator uses
// it to recompute transfer hashes without an extra chain read.
type TokenRoute struct {
	DestChainID uint32 `yaml:"dest_chain_id" validate:"required"`
	DestToken   string `yaml:"dest_token" validate:"required"`
}

// RetryConfig tunes the exponential-backoff-plus-circuit-breaker policy.
type RetryConfig struct {
	InitialBackoff time.Duration        `yaml:"initial_backoff" default:"1s"`
	MaxBackoff     time.Duration        `yaml:"max_backoff" default:"60s"`
	MaxAttempts    int                  `yaml:"max_attempts" default:"5"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
}

// CircuitBreakerConfig trips a chain's writer after consecutive
// failures and pauses it for CooldownPeriod.
type CircuitBreakerConfig struct {
	FailureThreshold int           `yaml:"failure_threshold" default:"10"`
	CooldownPeriod   time.Duration `yaml:"cooldown_period" default:"300s"`
}

// OperatorConfig contains settings specific to the operator service.
type OperatorConfig struct {
	AutoExecuteInterval time.Duration `yaml:"auto_execute_interval" default:"30s"`
	WriterQueueSize     int           `yaml:"writer_queue_size" default:"256"`
}

// CancelerConfig contains settings specific to the canceler service.
type CancelerConfig struct {
	// VerificationBudget bounds the time spent verifying a single
	// approval, kept well under the cancel window so one instance can
	// inspect many approvals per window.
	VerificationBudget time.Duration `yaml:"verification_budget" default:"30s"`
	PollInterval       time.Duration `yaml:"poll_interval" default:"10s"`
}

// MonitoringConfig contains monitoring and metrics settings.
type MonitoringConfig struct {
	Enabled     bool `yaml:"enabled" default:"true"`
	MetricsPort int  `yaml:"metrics_port" default:"9464"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

var validate = validator.New()

// Load reads, defaults, env-overrides, and validates a Config from path.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideEnv(&cfg)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func overrideEnv(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DATABASE_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DATABASE_DATABASE"); v != "" {
		cfg.Database.Database = v
	}
	if v := os.Getenv("DATABASE_SSL_MODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// GetConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// SignerKey reads the hex-encoded private key for this chain's signer
// out of the environment variable named by SignerKeyEnv. Missing keys
// are a startup configuration error: the process refuses to start
// rather than run without a signer.
func (c *ChainConfig) SignerKey() (string, error) {
	v := os.Getenv(c.SignerKeyEnv)
	if v == "" {
		return "", fmt.Errorf("environment variable %s is not set", c.SignerKeyEnv)
	}
	return v, nil
}
