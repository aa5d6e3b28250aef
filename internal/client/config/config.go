package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the credvault CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - RequestTimeout: deadline applied to each call to the server.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER_ENDPOINT_ADDR"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config from defaults, the JSON file, the
// environment and the flags in args, in that order.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.ServerEndpointAddr == "" {
		return nil, fmt.Errorf("invalid config: server address is required")
	}
	return cfg, nil
}
