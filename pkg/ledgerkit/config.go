package ledgerkit

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	// Credentials for the live gateway. All three must be well formed
	// for live mode; anything else falls back to the mock backend.
	Network     string `mapstructure:"network"`
	OperatorID  string `mapstructure:"operator_id"`
	OperatorKey string `mapstructure:"operator_key"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Tools   ToolsConfig   `mapstructure:"tools"`
	Gateway GatewayConfig `mapstructure:"gateway"`
	Mock    MockConfig    `mapstructure:"mock"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Privacy PrivacyConfig `mapstructure:"privacy"`
	Audit   AuditConfig   `mapstructure:"audit"`
}

type ToolsConfig struct {
	Concurrency int `mapstructure:"concurrency"`
	TimeoutMS   int `mapstructure:"timeout_ms"`
}

type GatewayConfig struct {
	RequestTimeoutMS  int     `mapstructure:"request_timeout_ms"`
	MaxRetries        int     `mapstructure:"max_retries"`
	RetryBackoffMS    int     `mapstructure:"retry_backoff_ms"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type MockConfig struct {
	OperatorBalanceHbar float64 `mapstructure:"operator_balance_hbar"`
	FirstEntityNum      int64   `mapstructure:"first_entity_num"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type PrivacyConfig struct {
	RedactKeys bool `mapstructure:"redact_keys"`
}

type AuditConfig struct {
	// JSONL call log; empty path disables it.
	Path string `mapstructure:"path"`
}

// LoadConfig reads the config file at path and layers the credential
// environment variables on top. An empty path means environment and
// defaults only, which is the common case for the mock backend.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("network", "")
	v.SetDefault("operator_id", "")
	v.SetDefault("operator_key", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("tools.concurrency", 4)
	v.SetDefault("tools.timeout_ms", 10000)
	v.SetDefault("gateway.request_timeout_ms", 30000)
	v.SetDefault("gateway.max_retries", 2)
	v.SetDefault("gateway.retry_backoff_ms", 200)
	v.SetDefault("gateway.requests_per_second", 10)
	v.SetDefault("mock.operator_balance_hbar", 10000)
	v.SetDefault("mock.first_entity_num", 1000)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("privacy.redact_keys", true)
	v.SetDefault("audit.path", "")

	v.BindEnv("network", "HEDERA_NETWORK")
	v.BindEnv("operator_id", "HEDERA_OPERATOR_ID", "OPERATOR_ID")
	v.BindEnv("operator_key", "HEDERA_OPERATOR_KEY", "OPERATOR_KEY")
	v.BindEnv("log_level", "LEDGERKIT_LOG_LEVEL")
	v.BindEnv("log_format", "LEDGERKIT_LOG_FORMAT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	// Durations and lists in config files arrive as strings; the hooks
	// let "30s" and "a,b" style values decode cleanly.
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	var cfg Config
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	// ${VAR} references in file-sourced values expand against the
	// environment, so keys can live outside the config file.
	for _, p := range []*string{&cfg.Network, &cfg.OperatorID, &cfg.OperatorKey, &cfg.Audit.Path} {
		*p = os.ExpandEnv(*p)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks structure only. Credential completeness is judged by
// the backend resolver, never here: partial credentials are a mock
// fallback, not a config error.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q is not one of text, json", c.LogFormat)
	}
	if c.Tools.Concurrency <= 0 {
		return fmt.Errorf("tools.concurrency must be positive")
	}
	if c.Tools.TimeoutMS < 0 {
		return fmt.Errorf("tools.timeout_ms must not be negative")
	}
	if c.Gateway.RequestTimeoutMS <= 0 {
		return fmt.Errorf("gateway.request_timeout_ms must be positive")
	}
	if c.Mock.FirstEntityNum <= 0 {
		return fmt.Errorf("mock.first_entity_num must be positive")
	}
	return nil
}
