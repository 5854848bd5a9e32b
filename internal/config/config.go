package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	API      API     `yaml:"api"`
	Redis    Redis   `yaml:"redis"`
	Game     Game    `yaml:"game"`
	Metrics  Metrics `yaml:"metrics"`
}

type API struct {
	BaseURL string `yaml:"base-url" env:"API_BASE_URL" env-default:"http://localhost:8000"`
	// Zero means requests never time out.
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"0s"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// Game holds the defaults used when the player starts a new game.
type Game struct {
	Difficulty  string `yaml:"difficulty" env:"GAME_DIFFICULTY" env-default:"easy"`
	FirstPlayer string `yaml:"first-player" env:"GAME_FIRST_PLAYER" env-default:"human"`
	HumanSymbol string `yaml:"human-symbol" env:"GAME_HUMAN_SYMBOL" env-default:"x"`
}

type Metrics struct {
	Addr string `yaml:"addr" env:"METRICS_ADDR" env-default:""`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads config.yml when it exists, otherwise falls back to the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
