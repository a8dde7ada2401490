package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeRandom  = "random"
	ModeConsole = "console"
)

var (
	ErrUnknownMode  = errors.New("unknown match mode")
	ErrInvalidGames = errors.New("number of games must be positive")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
	Match    Match  `yaml:"match"`
}

// Board values are passed to the engine unchecked.
type Board struct {
	Size                  int `yaml:"size" env:"BOARD_SIZE" env-default:"3"`
	WinningSequenceLength int `yaml:"winning-sequence-length" env:"BOARD_WINNING_SEQUENCE_LENGTH" env-default:"3"`
}

type Match struct {
	Mode        string `yaml:"mode" env:"MATCH_MODE" env-default:"random"`
	Games       int    `yaml:"games" env:"MATCH_GAMES" env-default:"1"`
	Seed        uint64 `yaml:"seed" env:"MATCH_SEED" env-default:"0"`
	MaxAttempts int    `yaml:"max-attempts" env:"MATCH_MAX_ATTEMPTS" env-default:"10000"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Match.Mode {
	case ModeRandom, ModeConsole:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Match.Mode)
	}

	if that.Match.Games < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidGames, that.Match.Games)
	}

	return nil
}
