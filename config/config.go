package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/ollamakit/httpclient"
	"github.com/kbukum/ollamakit/logger"
)

// Client holds everything needed to construct an ollama client.
type Client struct {
	// Host is the server address.
	Host string `yaml:"host" mapstructure:"host" validate:"required,http_url"`
	// Token is an optional bearer token.
	Token string `yaml:"token" mapstructure:"token"`
	// Timeout applies to single-shot calls.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`
	// Log configures client logging.
	Log logger.Config `yaml:"log" mapstructure:"log"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Client) ApplyDefaults() {
	if c.Host == "" {
		c.Host = httpclient.DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = 120 * time.Second
	}
	c.Log.ApplyDefaults()
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use mapstructure tag names in error messages so they match the
		// config keys users actually write.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks the configuration using struct tags.
func (c *Client) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
			}
			return fmt.Errorf("config: invalid fields: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LoaderOption customizes Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// Load reads configuration from the environment, an optional .env file,
// and an optional YAML file. Precedence: environment > YAML > defaults.
func Load(opts ...LoaderOption) (*Client, error) {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	// A .env file feeds the environment before viper reads it.
	envFile := lc.envFile
	if envFile == "" {
		if _, err := os.Stat(".env"); err == nil {
			envFile = ".env"
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()

	if lc.configFile != "" {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read config file %s: %w", lc.configFile, err)
		}
	}

	bindings := map[string]string{
		"host":       "OLLAMA_HOST",
		"token":      "OLLAMA_TOKEN",
		"timeout":    "OLLAMAKIT_TIMEOUT",
		"log.level":  "LOG_LEVEL",
		"log.format": "LOG_FORMAT",
		"log.output": "LOG_OUTPUT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
