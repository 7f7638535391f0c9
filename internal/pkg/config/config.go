package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, supplier endpoint
//   overrides, signing secret), security settings
// - default: Values common across all environments (timeouts, fan-out limit,
//   capability header), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Supplier SupplierConfig
	Token    TokenConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type SupplierConfig struct {
	Endpoint     string        `envconfig:"SUPPLIER_ENDPOINT" default:"https://octo.peek.com/integrations/octo"`
	Timeout      time.Duration `envconfig:"SUPPLIER_TIMEOUT" default:"30s"`
	Capabilities string        `envconfig:"SUPPLIER_CAPABILITIES" default:"octo/pricing,octo/pickups,octo/cart"`
	Concurrency  int           `envconfig:"SUPPLIER_CONCURRENCY" default:"3"`
}

type TokenConfig struct {
	Secret   string `envconfig:"INTENT_TOKEN_SECRET" required:"true"`
	Duration string `envconfig:"INTENT_TOKEN_DURATION" default:"6h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Supplier: SupplierConfig{
			Endpoint:     "http://localhost:18080",
			Timeout:      5 * time.Second,
			Capabilities: "octo/pricing,octo/pickups,octo/cart",
			Concurrency:  3,
		},
		Token: TokenConfig{
			Secret:   "test-secret",
			Duration: "6h",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
