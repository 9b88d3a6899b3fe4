// Package config loads client settings from a yaml file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/completion"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/hosting"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

const DefaultHost = "https://api.aleph-alpha.de"

type ClientConfig struct {
	URL        string        `mapstructure:"url"`
	Token      string        `mapstructure:"token"`
	Email      string        `mapstructure:"email"`
	Password   string        `mapstructure:"password"`
	Model      string        `mapstructure:"model"`
	Hosting    string        `mapstructure:"hosting"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

type BreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxFailures uint32        `mapstructure:"max_failures"`
}

type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Breaker BreakerConfig `mapstructure:"breaker"`

	// Defaults are sampling parameters applied to completion requests
	// that do not set them, keyed by the request field names.
	Defaults map[string]interface{} `mapstructure:"defaults"`
}

// Load reads config.yaml from configPath (falling back to ./config and
// the working directory) and overlays environment variables of the form
// AA_CLIENT_TOKEN, AA_CLIENT_URL and so on.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("AA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no file is fine, environment variables still apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.url", DefaultHost)
	// registered so AutomaticEnv picks the keys up without a config file
	v.SetDefault("client.token", "")
	v.SetDefault("client.email", "")
	v.SetDefault("client.password", "")
	v.SetDefault("client.model", "")
	v.SetDefault("client.hosting", hosting.Default)
	v.SetDefault("client.timeout", "120s")
	v.SetDefault("client.max_retries", 3)
	v.SetDefault("client.retry_delay", "1s")
	v.SetDefault("breaker.enabled", false)
	v.SetDefault("breaker.timeout", "30s")
	v.SetDefault("breaker.max_failures", 5)
}

// Validate checks that the configuration carries enough to authenticate.
func (c *Config) Validate() error {
	if c.Client.URL == "" {
		return fmt.Errorf("client.url is required")
	}
	if c.Client.Token == "" && (c.Client.Email == "" || c.Client.Password == "") {
		return fmt.Errorf("either client.token or client.email and client.password are required")
	}
	return nil
}

// CompletionDefaults decodes the defaults map into a completion request
// seeded with the standard defaults. Unknown keys are an error so typos
// in the config surface early.
func (c *Config) CompletionDefaults() (completion.Request, error) {
	req := completion.NewRequest(prompt.Prompt{})
	if len(c.Defaults) == 0 {
		return req, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &req,
		ErrorUnused: true,
	})
	if err != nil {
		return req, err
	}
	if err := dec.Decode(c.Defaults); err != nil {
		return req, fmt.Errorf("invalid completion defaults: %w", err)
	}
	return req, nil
}
