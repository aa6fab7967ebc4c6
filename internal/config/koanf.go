package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is not set
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/careercompass/config.yaml",
}

const (
	ConfigPathEnvVar = "CONFIG_PATH"
	EnvPrefix        = "COMPASS_"
)

// legacyEnv maps the unprefixed variables earlier deployments used
var legacyEnv = map[string]string{
	"PORT":          "server.port",
	"MONGO_URI":     "mongo.uri",
	"REDIS_URI":     "redis.addr",
	"HOST_USERNAME": "auth.counselor_username",
	"HOST_PASSWORD": "auth.counselor_password",
	"JWT_SECRET":    "auth.jwt_secret",
	"LOG_LEVEL":     "logging.level",
	"LOG_FORMAT":    "logging.format",
}

var sliceConfigPaths = []string{
	"server.cors_origins",
	"rate_limit.trusted_proxies",
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing precedence, and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Redis.Addr = strings.TrimPrefix(cfg.Redis.Addr, "redis://")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc maps COMPASS_SECTION_KEY to section.key and the legacy
// names in legacyEnv to their paths. Anything else is ignored.
//
//	COMPASS_SERVER_PORT       -> server.port
//	COMPASS_AUTH_JWT_SECRET   -> auth.jwt_secret
//	COMPASS_RATE_LIMIT_BURST  -> rate_limit.burst
func envTransformFunc(key string) string {
	if path, ok := legacyEnv[key]; ok {
		return path
	}
	if !strings.HasPrefix(key, EnvPrefix) {
		return ""
	}

	rest := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	for _, section := range []string{"rate_limit", "local_store"} {
		if strings.HasPrefix(rest, section+"_") {
			return section + "." + strings.TrimPrefix(rest, section+"_")
		}
	}
	return strings.Replace(rest, "_", ".", 1)
}

// processSliceFields splits comma-separated env values for slice settings
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
