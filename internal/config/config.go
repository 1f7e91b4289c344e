package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotEnoughPlayers = errors.New("there are not enough players")
	ErrInvalidConfig    = errors.New("invalid config")
)

const (
	minPlayerCount = 2
	envPrefix      = "HECKMECK_"
)

type TilesConfig struct {
	First int `yaml:"first" env:"FIRST"`
	Last  int `yaml:"last" env:"LAST"`
}

// Tunables are the per-strategy parameters, in percent.
type Tunables struct {
	CutOff              float64 `yaml:"cut_off" env:"CUT_OFF"`
	NothingToLoseCutOff float64 `yaml:"nothing_to_lose_cut_off" env:"NOTHING_TO_LOSE_CUT_OFF"`
}

type FeedConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

type ReportConfig struct {
	Webhook string        `yaml:"webhook" env:"WEBHOOK"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

type Config struct {
	Players    int          `yaml:"players" env:"PLAYERS"`
	Games      int          `yaml:"games" env:"GAMES"`
	Workers    int          `yaml:"workers" env:"WORKERS"`
	Seed       uint64       `yaml:"seed" env:"SEED"`
	MaxTurns   int          `yaml:"max_turns" env:"MAX_TURNS"`
	Debug      bool         `yaml:"debug" env:"DEBUG"`
	Strategies []string     `yaml:"strategies" env:"STRATEGIES" envSeparator:","`
	Tiles      TilesConfig  `yaml:"tiles" envPrefix:"TILES_"`
	Tunables   Tunables     `yaml:"tunables" envPrefix:"TUNABLES_"`
	Feed       FeedConfig   `yaml:"feed" envPrefix:"FEED_"`
	Report     ReportConfig `yaml:"report" envPrefix:"REPORT_"`
}

func Default() Config {
	return Config{
		Players:    4,
		Games:      1000,
		Workers:    4,
		MaxTurns:   10000,
		Strategies: []string{"odds", "first-tile"},
		Tiles:      TilesConfig{First: 21, Last: 36},
		Tunables:   Tunables{CutOff: 50, NothingToLoseCutOff: 25},
		Report:     ReportConfig{Timeout: 5 * time.Second},
	}
}

// New reads the yaml file at cfgPath over the defaults and applies HECKMECK_*
// environment overrides. An empty path skips the file.
func New(cfgPath string) (Config, error) {
	cfg := Default()
	if cfgPath != "" {
		file, err := os.Open(cfgPath)
		if err != nil {
			return Config{}, err
		}
		defer func() {
			_ = file.Close()
		}()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, errors.WithMessage(err, "decode yaml config")
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errors.WithMessage(err, "parse env overrides")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Players < minPlayerCount:
		return errors.WithMessagef(ErrNotEnoughPlayers, "got %d, need at least %d", c.Players, minPlayerCount)
	case c.Games < 1:
		return errors.WithMessage(ErrInvalidConfig, "games must be positive")
	case c.Workers < 1:
		return errors.WithMessage(ErrInvalidConfig, "workers must be positive")
	case c.MaxTurns < 1:
		return errors.WithMessage(ErrInvalidConfig, "max_turns must be positive")
	case len(c.Strategies) == 0:
		return errors.WithMessage(ErrInvalidConfig, "at least one strategy is required")
	case c.Tiles.First > c.Tiles.Last || c.Tiles.First < 1:
		return errors.WithMessagef(ErrInvalidConfig, "tile range %d..%d", c.Tiles.First, c.Tiles.Last)
	case c.Tunables.CutOff < 0 || c.Tunables.CutOff > 100:
		return errors.WithMessage(ErrInvalidConfig, "cut_off must be a percentage")
	case c.Tunables.NothingToLoseCutOff < 0 || c.Tunables.NothingToLoseCutOff > 100:
		return errors.WithMessage(ErrInvalidConfig, "nothing_to_lose_cut_off must be a percentage")
	}
	return nil
}
