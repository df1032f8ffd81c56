package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// ErrMissingConfiguration: не заданы учётные данные Trello.
var ErrMissingConfiguration = errors.New("missing configuration")

// Config: настройки CLI из окружения и файла .env.
type Config struct {
	APIKey    string `env:"TRELLO_API_KEY"`
	APIToken  string `env:"TRELLO_API_TOKEN"`
	APIURL    string `env:"TRELLO_API_URL, default=https://api.trello.com/1/"`
	LogLevel  string `env:"LOG_LEVEL, default=WARN"`
	LogFormat string `env:"LOG_FORMAT, default=text"`
}

// LoadConfig читает конфигурацию из окружения процесса. Если файл
// dotenvPath существует, значения из него используются как запасные:
// переменные окружения имеют приоритет.
func LoadConfig(ctx context.Context, dotenvPath string) (*Config, error) {
	lookuper := envconfig.OsLookuper()

	if dotenvPath != "" {
		values, err := godotenv.Read(dotenvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read %s: %w", dotenvPath, err)
		default:
			lookuper = envconfig.MultiLookuper(lookuper, envconfig.MapLookuper(values))
		}
	}

	return load(ctx, lookuper)
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to parse configuration from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет, что заданы ключ и токен. Ошибка перечисляет
// все отсутствующие переменные.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.APIKey == "" {
		result = multierror.Append(result, fmt.Errorf("%w: TRELLO_API_KEY is not set", ErrMissingConfiguration))
	}
	if c.APIToken == "" {
		result = multierror.Append(result, fmt.Errorf("%w: TRELLO_API_TOKEN is not set", ErrMissingConfiguration))
	}

	return result.ErrorOrNil()
}
