// Package config holds the widget's configuration surface and its
// YAML-based load/validate behavior.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Time format values.
const (
	Format12h = "12h"
	Format24h = "24h"
)

// Options is the full widget configuration.
type Options struct {
	// MinTime is the first visible hour (0-23).
	MinTime int `yaml:"min_time"`

	// MaxTime is the last visible hour (0-23), inclusive.
	MaxTime int `yaml:"max_time"`

	// SlotDuration is the slot length in minutes. A duration that does
	// not evenly divide the visible span truncates the trailing partial
	// slot rather than erroring.
	SlotDuration int `yaml:"slot_duration"`

	// TimeFormat selects gutter labels: "12h" or "24h".
	TimeFormat string `yaml:"time_format"`

	// ShowWeekends toggles Saturday and Sunday columns.
	ShowWeekends bool `yaml:"show_weekends"`

	// Loading and Disabled both suppress interaction; Loading additionally
	// shows a placeholder instead of the grid.
	Loading  bool `yaml:"loading"`
	Disabled bool `yaml:"disabled"`

	// InitialDate is the reference date for the first displayed week,
	// "2006-01-02". Empty means today.
	InitialDate string `yaml:"initial_date"`
}

// Default returns the out-of-the-box options.
func Default() *Options {
	return &Options{
		MinTime:      0,
		MaxTime:      23,
		SlotDuration: 30,
		TimeFormat:   Format12h,
		ShowWeekends: true,
	}
}

// Load reads options from a YAML file, layered over the defaults.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks the option ranges and the time format value.
func (o *Options) Validate() error {
	if o.MinTime < 0 || o.MinTime > 23 {
		return fmt.Errorf("min_time %d out of range 0-23", o.MinTime)
	}
	if o.MaxTime < 0 || o.MaxTime > 23 {
		return fmt.Errorf("max_time %d out of range 0-23", o.MaxTime)
	}
	if o.MinTime > o.MaxTime {
		return fmt.Errorf("min_time %d after max_time %d", o.MinTime, o.MaxTime)
	}
	if o.SlotDuration <= 0 {
		return fmt.Errorf("slot_duration must be positive, got %d", o.SlotDuration)
	}
	if o.TimeFormat != Format12h && o.TimeFormat != Format24h {
		return fmt.Errorf("time_format must be %q or %q, got %q", Format12h, Format24h, o.TimeFormat)
	}
	return nil
}

// Save writes the options as YAML with owner-only permissions.
func (o *Options) Save(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Use24h reports whether gutter labels use the 24-hour format.
func (o *Options) Use24h() bool {
	return o.TimeFormat == Format24h
}
