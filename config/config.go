package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
	"gopkg.in/yaml.v3"

	"github.com/urbanmove/journeyquery/journey"
)

var LOG_LEVELS = map[string]logrus.Level{
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
	"fatal": logrus.FatalLevel,
	"panic": logrus.PanicLevel,
}

type QueryConfig struct {
	MaxWalkDistance float64 `yaml:"maxWalkDistance" validate:"gte=0"`
	WalkSpeed       float64 `yaml:"walkSpeed" validate:"gt=0"`
	BoardSlack      float64 `yaml:"boardSlack" validate:"gte=0"`
	SnapDistance    float64 `yaml:"snapDistance" validate:"gte=0"`
	TimeRatioPrune  bool    `yaml:"timeRatioPrune"`
}

type Config struct {
	LogLevel string      `yaml:"logLevel" validate:"oneof=debug info warn error fatal panic"`
	Query    QueryConfig `yaml:"query"`
}

// Default mirrors journey.DefaultOptions.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Query: QueryConfig{
			MaxWalkDistance: 2000,
			WalkSpeed:       journey.PERSON_SPEED,
			BoardSlack:      120,
			SnapDistance:    0, // 0 keeps the graph default
			TimeRatioPrune:  true,
		},
	}
}

// Load reads a yaml config file. Absent keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options translates the query section into per-search defaults.
func (c *Config) Options() *journey.Options {
	opt := journey.DefaultOptions()
	opt.MaxWalkDistance = c.Query.MaxWalkDistance
	opt.SpeedUpperBound = c.Query.WalkSpeed
	opt.BoardSlack = c.Query.BoardSlack
	if c.Query.SnapDistance > 0 {
		opt.MaxSnapDistance = c.Query.SnapDistance
	}
	return opt
}

// SetupLogging applies the shared logrus formatter and the configured level.
func (c *Config) SetupLogging() error {
	level, ok := LOG_LEVELS[c.LogLevel]
	if !ok {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	logrus.SetLevel(level)
	return nil
}
