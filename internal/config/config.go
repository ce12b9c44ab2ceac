// Package config loads escrowctl settings from ESCROW_* environment variables.
package config

import (
	"time"

	"github.com/gabapcia/escrowctl/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const prefix = "ESCROW"

type Config struct {
	// RPCURL is the node endpoint. ws:// and wss:// endpoints stream Approved
	// events; http(s):// endpoints poll for them.
	RPCURL string `envconfig:"RPC_URL" required:"true" validate:"required,url"`

	// ChainID signs transactions for this chain. Zero asks the node.
	ChainID int64 `envconfig:"CHAIN_ID" default:"0" validate:"gte=0"`

	// Network scopes the remembered manager address.
	Network string `envconfig:"NETWORK" default:"local" validate:"required"`

	PrivateKeys []string `envconfig:"PRIVATE_KEYS" required:"true" validate:"required,min=1,dive,required"`

	DefaultManager  string `envconfig:"DEFAULT_MANAGER" validate:"omitempty,eth_addr"`
	ManagerBytecode string `envconfig:"MANAGER_BYTECODE" validate:"omitempty,file"`

	ConfirmationTimeout time.Duration `envconfig:"CONFIRMATION_TIMEOUT" default:"10m" validate:"gt=0"`
	PollInterval        time.Duration `envconfig:"POLL_INTERVAL" default:"4s" validate:"gt=0"`

	LoadRetry RetryConfig `envconfig:"LOAD_RETRY"`
	HTTP      HTTPConfig  `envconfig:"HTTP"`
	Redis     RedisConfig `envconfig:"REDIS"`

	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Telemetry TelemetryConfig `envconfig:"TELEMETRY"`
}

type RetryConfig struct {
	Attempts uint          `envconfig:"ATTEMPTS" default:"3" validate:"gte=1"`
	Delay    time.Duration `envconfig:"DELAY" default:"1s" validate:"gt=0"`
}

type HTTPConfig struct {
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
}

// RedisConfig enables the Redis address book when Addr is set. Without it
// the manager address is only remembered for the lifetime of the process.
type RedisConfig struct {
	Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`

	KeyPrefix   string        `envconfig:"KEY_PREFIX" default:"escrow" validate:"required"`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s" validate:"gt=0"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"escrowctl" validate:"required"`
}

// Load reads and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
