// Package config loads mountinfo settings from defaults, a YAML file and
// MOUNTINFO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumipallolabs/mountinfo/internal/mounts"
	"github.com/lumipallolabs/mountinfo/internal/snapshot"
	"github.com/spf13/viper"
)

// Output formats accepted by the list command
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputPlain = "plain"
)

// EnvPrefix is prepended to every environment override, e.g.
// MOUNTINFO_SHOW_DUMMY=true
const EnvPrefix = "MOUNTINFO"

// Config holds the user-tunable settings.
//
// Sources in order of precedence:
//  1. CLI flags (bound by the caller)
//  2. Environment variables (MOUNTINFO_*)
//  3. Configuration file
//  4. Defaults
type Config struct {
	// MountTable overrides /proc/mounts on Linux
	MountTable string `mapstructure:"mount_table"`

	// PseudoTypes replaces the built-in dummy filesystem list when non-empty
	PseudoTypes []string `mapstructure:"pseudo_types"`

	// ExtraPseudoTypes is added to the dummy filesystem list
	ExtraPseudoTypes []string `mapstructure:"extra_pseudo_types"`

	// ShowDummy includes pseudo filesystems in listings
	ShowDummy bool `mapstructure:"show_dummy"`

	// Output is one of table, json, yaml, plain
	Output string `mapstructure:"output"`

	// SnapshotDir holds saved enumerations for the diff command
	SnapshotDir string `mapstructure:"snapshot_dir"`

	// SnapshotKeep is how many snapshots survive a save; 0 keeps all
	SnapshotKeep int `mapstructure:"snapshot_keep"`
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	return &Config{
		MountTable:   mounts.DefaultMountTable,
		ShowDummy:    false,
		Output:       OutputTable,
		SnapshotDir:  snapshot.DefaultDir(),
		SnapshotKeep: 10,
	}
}

// DefaultDir returns the directory holding the config file
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mountinfo"
	}
	return filepath.Join(home, ".mountinfo")
}

// New returns a viper instance with defaults and environment lookups set
// up. Callers may bind flags to it before passing it to Load.
func New(configPath string) *viper.Viper {
	v := viper.New()

	def := Default()
	v.SetDefault("mount_table", def.MountTable)
	v.SetDefault("pseudo_types", []string{})
	v.SetDefault("extra_pseudo_types", []string{})
	v.SetDefault("show_dummy", def.ShowDummy)
	v.SetDefault("output", def.Output)
	v.SetDefault("snapshot_dir", def.SnapshotDir)
	v.SetDefault("snapshot_keep", def.SnapshotKeep)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	return v
}

// Load reads the config file if there is one and decodes the merged
// settings. A missing file is not an error; a named file that is missing is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.PseudoTypes = splitList(cfg.PseudoTypes)
	cfg.ExtraPseudoTypes = splitList(cfg.ExtraPseudoTypes)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings for values the commands cannot act on
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML, OutputPlain:
	default:
		return fmt.Errorf("output must be one of %s; got %q",
			strings.Join([]string{OutputTable, OutputJSON, OutputYAML, OutputPlain}, ", "), c.Output)
	}
	if c.MountTable == "" {
		return errors.New("mount_table must not be empty")
	}
	if c.SnapshotKeep < 0 {
		return fmt.Errorf("snapshot_keep must not be negative; got %d", c.SnapshotKeep)
	}
	return nil
}

// MountOptions converts the settings into enumeration options
func (c *Config) MountOptions() []mounts.Option {
	opts := []mounts.Option{mounts.WithMountTable(c.MountTable)}
	if len(c.PseudoTypes) > 0 {
		opts = append(opts, mounts.WithPseudoTypes(c.PseudoTypes...))
	}
	if len(c.ExtraPseudoTypes) > 0 {
		opts = append(opts, mounts.WithExtraPseudoTypes(c.ExtraPseudoTypes...))
	}
	return opts
}

// splitList accepts both YAML lists and the comma or space separated form
// environment variables produce.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, f := range strings.FieldsFunc(item, func(r rune) bool {
			return r == ',' || r == ' '
		}) {
			out = append(out, f)
		}
	}
	return out
}
