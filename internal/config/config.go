package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/alexhholmes/pktlayout/internal/analyzer"
	"github.com/alexhholmes/pktlayout/internal/logging"
)

const EnvPrefix = "PKTLAYOUT"

// DefaultFile is the config file name packetgen looks for when none is
// given.
const DefaultFile = "packetgen.toml"

// Config holds the settings of a generation run.
//
// Sources, highest precedence first:
//  1. Environment variables (PKTLAYOUT_*, dots become underscores)
//  2. The TOML config file
//  3. Default values
type Config struct {
	// Package is the Go package name of generated files
	Package string `mapstructure:"package" toml:"package" validate:"required,alphanum,lowercase"`

	// HostOrder resolves u<N>he fields. Empty leaves it unset, which
	// rejects any schema using he.
	HostOrder string `mapstructure:"host_order" toml:"host_order" validate:"omitempty,oneof=big little"`

	Naming NamingConfig `mapstructure:"naming" toml:"naming"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// NamingConfig controls generated view type names
type NamingConfig struct {
	View      string     `mapstructure:"view" toml:"view" validate:"required,contains=%s"`
	Mutable   string     `mapstructure:"mutable" toml:"mutable" validate:"required,contains=%s,nefield=View"`
	Overrides []Override `mapstructure:"overrides" toml:"overrides,omitempty" validate:"dive"`
}

// Override replaces the view names of one packet. Entries are a list
// rather than a table keyed by packet since config keys are case
// insensitive and packet names are not.
type Override struct {
	Packet  string `mapstructure:"packet" toml:"packet" validate:"required"`
	View    string `mapstructure:"view" toml:"view" validate:"required"`
	Mutable string `mapstructure:"mutable" toml:"mutable" validate:"required,nefield=View"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" toml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	NoColor bool   `mapstructure:"no_color" toml:"no_color"`
}

func Default() *Config {
	return &Config{
		Package: "packets",
		Naming: NamingConfig{
			View:    analyzer.DefaultViewFormat,
			Mutable: analyzer.DefaultMutableFormat,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the config file at path (may be empty), applies environment
// overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setupViper(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Debug().
		Str("file", v.ConfigFileUsed()).
		Str("package", cfg.Package).
		Str("host_order", cfg.HostOrder).
		Int("overrides", len(cfg.Naming.Overrides)).
		Msg("loaded config")

	return &cfg, nil
}

// setupViper registers every key with its default so that AutomaticEnv
// can see keys missing from the file.
func setupViper(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("package", def.Package)
	v.SetDefault("host_order", def.HostOrder)
	v.SetDefault("naming.view", def.Naming.View)
	v.SetDefault("naming.mutable", def.Naming.Mutable)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.no_color", def.Log.NoColor)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that no two overrides name the
// same packet.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	seen := make(map[string]bool, len(cfg.Naming.Overrides))
	for _, o := range cfg.Naming.Overrides {
		if seen[o.Packet] {
			return fmt.Errorf("naming override for %s given twice", o.Packet)
		}
		seen[o.Packet] = true
	}
	return nil
}

// AnalyzerOptions converts the config into layout analysis options.
func (c *Config) AnalyzerOptions() (analyzer.Options, error) {
	order, err := analyzer.ParseByteOrder(c.HostOrder)
	if err != nil {
		return analyzer.Options{}, err
	}
	naming := analyzer.Naming{View: c.Naming.View, Mutable: c.Naming.Mutable}
	if len(c.Naming.Overrides) > 0 {
		naming.Overrides = make(map[string]analyzer.ViewNames, len(c.Naming.Overrides))
		for _, o := range c.Naming.Overrides {
			naming.Overrides[o.Packet] = analyzer.ViewNames{View: o.View, Mutable: o.Mutable}
		}
	}
	return analyzer.Options{HostOrder: order, Naming: naming}, nil
}

// ApplyLogging pushes the log settings into the global logger.
func (c *Config) ApplyLogging() error {
	if c.Log.Level != "" {
		if err := logging.SetLevel(c.Log.Level); err != nil {
			return err
		}
	}
	logging.SetNoColor(c.Log.NoColor)
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

var ErrExists = errors.New("config file already exists")

// Write saves cfg to path. It refuses to replace an existing file unless
// force is set.
func Write(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
