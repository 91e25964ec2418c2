package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	derr "github.com/ozzus/tours-gateway/internal/domain/errors"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider/auth"
)

const defaultConfigPath = "config/local.yaml"

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Log      LogConfig      `yaml:"log"`
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	CORS     CORSConfig     `yaml:"cors"`
	Provider ProviderConfig `yaml:"provider"`
	Jaeger   JaegerConfig   `yaml:"jaeger"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn warning error"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080" validate:"gt=0,lt=65536"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"25s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

// GRPCConfig enables the health probe server when Port is non-zero.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"GRPC_PORT" env-default:"0" validate:"gte=0,lt=65536"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

type ProviderConfig struct {
	BaseURL   string        `yaml:"base_url" env:"PROVIDER_BASE_URL" validate:"required,url"`
	AccessKey string        `yaml:"access_key" env:"PROVIDER_ACCESS_KEY"`
	SecretKey string        `yaml:"secret_key" env:"PROVIDER_SECRET_KEY"`
	Token     string        `yaml:"token" env:"PROVIDER_TOKEN"`
	VendorID  string        `yaml:"vendor_id" env:"PROVIDER_VENDOR_ID"`
	Timeout   time.Duration `yaml:"timeout" env:"PROVIDER_TIMEOUT" env-default:"15s" validate:"gt=0"`
}

func (c ProviderConfig) Credentials() auth.Credentials {
	return auth.Credentials{
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
		Token:     c.Token,
	}
}

type JaegerConfig struct {
	Address string `yaml:"address" env:"JAEGER_ADDRESS"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c GRPCConfig) Enabled() bool {
	return c.Port > 0
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic("cannot read the config: " + err.Error())
	}
	return cfg
}

// Load reads the YAML file at configPath with environment overrides. A missing
// file is not an error: the environment alone is used.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(configPath)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, &derr.ConfigurationError{Field: configPath, Err: err}
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, &derr.ConfigurationError{Field: "env", Err: err}
		}
	default:
		return nil, &derr.ConfigurationError{Field: configPath, Err: statErr}
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, &derr.ConfigurationError{Err: err}
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = defaultConfigPath
	}

	return res
}
