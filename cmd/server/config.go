package main

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/wargame-api/internal/errors"
)

// serverConfig is read from WARGAME_* environment variables; command flags
// override it.
type serverConfig struct {
	GRPCPort        int           `env:"WARGAME_GRPC_PORT"        envDefault:"50051"`
	RedisAddr       string        `env:"WARGAME_REDIS_ADDR"       envDefault:"localhost:6379"`
	RedisPassword   string        `env:"WARGAME_REDIS_PASSWORD"`
	RedisDB         int           `env:"WARGAME_REDIS_DB"         envDefault:"0"`
	RedisTLS        bool          `env:"WARGAME_REDIS_TLS"        envDefault:"false"`
	SessionTTL      time.Duration `env:"WARGAME_SESSION_TTL"      envDefault:"15m"`
	ShutdownTimeout time.Duration `env:"WARGAME_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	LogLevel        string        `env:"WARGAME_LOG_LEVEL"        envDefault:"info"`
}

func loadServerConfig() (*serverConfig, error) {
	cfg := &serverConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the settings the server cannot start without
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	if c.SessionTTL <= 0 {
		vb.InvalidField("session_ttl", "must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("shutdown_timeout", "must be positive")
	}
	if _, err := c.slogLevel(); err != nil {
		vb.InvalidField("log_level", err.Error())
	}

	return vb.Build()
}

func (c *serverConfig) slogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
