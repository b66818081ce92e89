/*
Package config holds the simulation settings.

The embedded defaults are overlaid by an optional YAML file, the command line flags are applied last.
*/
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var ErrInvalid = errors.New("invalid configuration")

//Config represents all the configurable options
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Engine   EngineConfig   `yaml:"engine"`
	View     ViewConfig     `yaml:"view"`
	Playback PlaybackConfig `yaml:"playback"`
	Output   OutputConfig   `yaml:"output"`
}

//WorldConfig describes the genesis
type WorldConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Density float64 `yaml:"density"` //probability of a live cell, 0..1
	Seed    string  `yaml:"seed"`    //empty is time-based
}

//EngineConfig selects the evolution engine
type EngineConfig struct {
	Name    string `yaml:"name"`    //base | multithreaded
	Workers int    `yaml:"workers"` //0 is the engine default
}

//ViewConfig holds the terminal presentation settings
type ViewConfig struct {
	Mode       string `yaml:"mode"`   //tui | plain
	Filter     string `yaml:"filter"` //bit | block | dye | emoji | hanzi
	ColorDead  string `yaml:"color_dead"`
	ColorAlive string `yaml:"color_alive"`
	ShowStats  bool   `yaml:"show_stats"`
}

//PlaybackConfig holds the pacing settings
type PlaybackConfig struct {
	FPSMax         float64 `yaml:"fps_max"`         //out of (0, +Inf] falls back to 60
	MaxGenerations int     `yaml:"max_generations"` //0 is unlimited
}

//OutputConfig holds the side outputs, none of them goes to the terminal
type OutputConfig struct {
	StatsCSV   string `yaml:"stats_csv"`
	StatsEvery int    `yaml:"stats_every"`
	LogFile    string `yaml:"log_file"`
	LogLevel   string `yaml:"log_level"`
}

//Default returns the embedded defaults
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	return cfg
}

//Load overlays the defaults with the file at path, an empty path means the defaults only
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	//keys missing in the file keep their default values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

//Validate rejects the values the simulation cannot start with
func (c *Config) Validate() error {
	switch {
	case c.World.Rows < 0 || c.World.Cols < 0:
		return fmt.Errorf("%w: negative world size %dx%d", ErrInvalid, c.World.Rows, c.World.Cols)
	case !(c.World.Density >= 0 && c.World.Density <= 1):
		return fmt.Errorf("%w: density %v out of 0.0..=1.0", ErrInvalid, c.World.Density)
	case c.Engine.Workers < 0:
		return fmt.Errorf("%w: negative workers %d", ErrInvalid, c.Engine.Workers)
	case c.Playback.MaxGenerations < 0:
		return fmt.Errorf("%w: negative max generations %d", ErrInvalid, c.Playback.MaxGenerations)
	case c.View.Mode != "tui" && c.View.Mode != "plain":
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.View.Mode)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

//LogLevel parses Output.LogLevel
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.Output.LogLevel))); err != nil {
		return l, fmt.Errorf("%w: log level %q", ErrInvalid, c.Output.LogLevel)
	}
	return l, nil
}

//WriteYAML saves the effective configuration
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
