package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional YAML file, and
// env vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FUTEVO_CONFIG is set
//  3. env (prefix FUTEVO_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FUTEVO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// FUTEVO_ADDR -> addr, FUTEVO_REDIS_URL -> redis_url, ...
	envProvider := env.Provider("FUTEVO_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "futevo_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	switch cfg.Storage {
	case "memory", "redis", "file":
	default:
		return nil, errors.New("storage must be 'memory', 'redis' or 'file'")
	}
	return &cfg, nil
}
