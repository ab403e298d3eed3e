// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bsfdm/fdm"
	"github.com/katalvlaran/bsfdm/grid"
	"github.com/katalvlaran/bsfdm/tridiag"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "BSFDM"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full scenario.
type Config struct {
	Market Market `mapstructure:"market" yaml:"market"`
	Grid   Grid   `mapstructure:"grid" yaml:"grid"`
	SOR    SOR    `mapstructure:"sor" yaml:"sor"`
	Log    Log    `mapstructure:"log" yaml:"log"`
}

// Market holds the contract terms shared by every priced option.
type Market struct {
	Spot       float64 `mapstructure:"spot" yaml:"spot"`
	Strike     float64 `mapstructure:"strike" yaml:"strike"`
	Rate       float64 `mapstructure:"rate" yaml:"rate"`
	Dividend   float64 `mapstructure:"dividend" yaml:"dividend"`
	Volatility float64 `mapstructure:"volatility" yaml:"volatility"`
	Expiry     float64 `mapstructure:"expiry" yaml:"expiry"`
}

// Grid holds the discretization and storage policy.
type Grid struct {
	DX     float64 `mapstructure:"dx" yaml:"dx"`
	DTau   float64 `mapstructure:"dtau" yaml:"dtau"`
	Memory string  `mapstructure:"memory" yaml:"memory"` // "full" or "rolling"
}

// SOR holds the relaxation solver parameters.
type SOR struct {
	Relaxation    float64 `mapstructure:"relaxation" yaml:"relaxation"`
	MaxIterations int     `mapstructure:"max_iterations" yaml:"max_iterations"`
	Tolerance     float64 `mapstructure:"tolerance" yaml:"tolerance"`
}

// Log configures the command's logger.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	File   string `mapstructure:"file" yaml:"file,omitempty"`
	Format string `mapstructure:"format" yaml:"format"` // "console" or "json"
}

// Default returns the reference scenario.
func Default() *Config {
	so := tridiag.DefaultSOROptions()

	return &Config{
		Market: Market{Spot: 20, Strike: 20, Rate: 0.03, Dividend: 0.04, Volatility: 0.8, Expiry: 1},
		Grid:   Grid{DX: 0.05, DTau: 0.00125, Memory: grid.FullGrid.String()},
		SOR:    SOR{Relaxation: so.Relaxation, MaxIterations: so.MaxIterations, Tolerance: so.Tolerance},
		Log:    Log{Level: "info", Format: "console"},
	}
}

// Load merges defaults, the YAML file at path (skipped when empty) and the
// environment, then validates.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Load: read %s: %w", path, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("Load: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("market.spot", d.Market.Spot)
	v.SetDefault("market.strike", d.Market.Strike)
	v.SetDefault("market.rate", d.Market.Rate)
	v.SetDefault("market.dividend", d.Market.Dividend)
	v.SetDefault("market.volatility", d.Market.Volatility)
	v.SetDefault("market.expiry", d.Market.Expiry)
	v.SetDefault("grid.dx", d.Grid.DX)
	v.SetDefault("grid.dtau", d.Grid.DTau)
	v.SetDefault("grid.memory", d.Grid.Memory)
	v.SetDefault("sor.relaxation", d.SOR.Relaxation)
	v.SetDefault("sor.max_iterations", d.SOR.MaxIterations)
	v.SetDefault("sor.tolerance", d.SOR.Tolerance)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks every section and returns the first failure wrapped in
// ErrInvalidConfig. The underlying sentinel (fdm.ErrBadVolatility,
// tridiag.ErrBadOptions, ...) stays reachable through errors.Is.
func (c *Config) Validate() error {
	if err := fdm.ValidateContract(c.Contract(fdm.Call, fdm.European)); err != nil {
		return fmt.Errorf("%w: market: %w", ErrInvalidConfig, err)
	}
	if err := fdm.ValidateDiscretization(c.Discretization()); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalidConfig, err)
	}
	if _, err := c.MemoryMode(); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalidConfig, err)
	}
	if err := c.SOROptions().Validate(); err != nil {
		return fmt.Errorf("%w: sor: %w", ErrInvalidConfig, err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log: unknown format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// Contract builds an fdm contract of the given type and style on the
// configured market.
func (c *Config) Contract(typ fdm.OptionType, style fdm.ExerciseStyle) fdm.Contract {
	m := c.Market

	return fdm.Contract{
		Spot:       m.Spot,
		Strike:     m.Strike,
		Rate:       m.Rate,
		Dividend:   m.Dividend,
		Volatility: m.Volatility,
		Expiry:     m.Expiry,
		Type:       typ,
		Style:      style,
	}
}

// Discretization returns the configured steps.
func (c *Config) Discretization() fdm.Discretization {
	return fdm.Discretization{DX: c.Grid.DX, DTau: c.Grid.DTau}
}

// SOROptions returns the configured relaxation parameters.
func (c *Config) SOROptions() tridiag.SOROptions {
	return tridiag.SOROptions{
		Relaxation:    c.SOR.Relaxation,
		MaxIterations: c.SOR.MaxIterations,
		Tolerance:     c.SOR.Tolerance,
	}
}

// MemoryMode parses Grid.Memory.
func (c *Config) MemoryMode() (grid.MemoryMode, error) {
	switch strings.ToLower(c.Grid.Memory) {
	case grid.FullGrid.String(), "":
		return grid.FullGrid, nil
	case grid.RollingColumns.String():
		return grid.RollingColumns, nil
	}

	return 0, fmt.Errorf("memory %q: %w", c.Grid.Memory, grid.ErrBadMode)
}

// EngineOptions translates the configuration into pricing options.
// The solver and logger are chosen per call and not included.
func (c *Config) EngineOptions() ([]fdm.Option, error) {
	mode, err := c.MemoryMode()
	if err != nil {
		return nil, err
	}

	return []fdm.Option{
		fdm.WithSOROptions(c.SOROptions()),
		fdm.WithMemoryMode(mode),
	}, nil
}

// WriteYAML renders the effective configuration, e.g. as a starting file.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}
