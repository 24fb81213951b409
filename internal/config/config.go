// Package config loads the process configuration from environment
// variables and validates it before anything else is wired up.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/ledgergraph/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Cache backends selectable via LEDGER_CACHE_BACKEND.
const (
	CacheBackendFS    = "fs"
	CacheBackendRedis = "redis"
	CacheBackendOff   = "off"
)

// Config is the full process configuration.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"ledgergraph"`

	XRPL   XRPL
	Neo4j  Neo4j
	Cache  Cache
	Ingest Ingest
}

// XRPL configures the remote ledger data source.
type XRPL struct {
	Endpoint    string        `envconfig:"XRPL_RPC_ENDPOINT" default:"https://s2.ripple.com:51234/" validate:"required,url"`
	HTTPTimeout time.Duration `envconfig:"XRPL_HTTP_TIMEOUT" default:"30s"`
}

// Neo4j configures the graph store connection.
type Neo4j struct {
	URI      string `envconfig:"NEO4J_URI" default:"bolt://localhost:7687" validate:"required"`
	Username string `envconfig:"NEO4J_USERNAME" validate:"required"`
	Password string `envconfig:"NEO4J_PASSWORD" validate:"required"`
	Database string `envconfig:"NEO4J_DATABASE" default:"neo4j" validate:"required"`
}

// Cache configures the raw ledger payload cache.
type Cache struct {
	Backend string `envconfig:"LEDGER_CACHE_BACKEND" default:"fs" validate:"oneof=fs redis off"`
	Dir     string `envconfig:"LEDGER_CACHE_DIR" default:"/var/cache/ledgergraph"`

	RedisAddr     string `envconfig:"LEDGER_CACHE_REDIS_ADDR" default:"localhost:6379"`
	RedisUsername string `envconfig:"LEDGER_CACHE_REDIS_USERNAME"`
	RedisPassword string `envconfig:"LEDGER_CACHE_REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"LEDGER_CACHE_REDIS_DB" default:"0"`
}

// Ingest configures the orchestration loop.
type Ingest struct {
	StartLedger uint64 `envconfig:"INGEST_START_LEDGER" default:"32570" validate:"gte=1"`
	BatchSize   uint64 `envconfig:"INGEST_BATCH_SIZE" default:"100000" validate:"gte=1"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
