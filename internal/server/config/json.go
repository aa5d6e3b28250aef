package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/credvault/internal/flagx"
	"github.com/dmitrijs2005/credvault/internal/timex"
)

// JsonConfig mirrors Config for decoding. Pointer fields distinguish
// "absent" from zero values so a partial file only overrides what it names;
// durations accept "30m" strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	DatabaseDriver   *string         `json:"database_driver"`
	DatabaseDSN      *string         `json:"database_dsn"`
	PoolSize         *int            `json:"pool_size"`
	MaxOverflow      *int            `json:"max_overflow"`
	AcquireTimeout   *timex.Duration `json:"acquire_timeout"`
	SecretKey        *string         `json:"secret_key"`
	SessionTTL       *timex.Duration `json:"session_ttl"`
	SessionBackend   *string         `json:"session_backend"`
	PasswordScheme   *string         `json:"password_scheme"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config (or $CREDVAULT_CONFIG) into
// config. No file configured is not an error.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}

	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDriver, c.DatabaseDriver)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.PoolSize, c.PoolSize)
	setIf(&config.MaxOverflow, c.MaxOverflow)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.SessionBackend, c.SessionBackend)
	setIf(&config.PasswordScheme, c.PasswordScheme)
	setIf(&config.LogLevel, c.LogLevel)
	if c.AcquireTimeout != nil {
		config.AcquireTimeout = c.AcquireTimeout.Duration
	}
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
