package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Athlete AthleteConfig `json:"athlete"`
	Model   ModelConfig   `json:"model"`
	Display DisplayConfig `json:"display"`
}

// AthleteConfig holds the athlete's most recent measurements, used to
// prefill the input form. Zero values mean "not measured yet".
type AthleteConfig struct {
	Name         string  `json:"name"`
	Vo2Max       float64 `json:"vo2max"`
	LT1HeartRate int     `json:"lt1_hr"`
	LT2HeartRate int     `json:"lt2_hr"`
	MaxHeartRate int     `json:"max_hr"`
	SprintPower  float64 `json:"sprint_power"`
}

// ModelConfig holds overrides for the simulation parameters. Zero values
// fall back to the documented defaults on load.
type ModelConfig struct {
	LT1Fraction         float64 `json:"lt1_fraction"`
	LT2Fraction         float64 `json:"lt2_fraction"`
	LactateSamples      int     `json:"lactate_samples"`
	SteadyStateFraction float64 `json:"steady_state_fraction"`
	TimeConstant        float64 `json:"time_constant_seconds"`
	DurationSeconds     int     `json:"duration_seconds"`
	StepSeconds         int     `json:"step_seconds"`
	BaseCalorieRate     float64 `json:"base_calorie_rate"`
	IntensityMin        float64 `json:"intensity_min"`
	IntensityMax        float64 `json:"intensity_max"`
	SubstrateSamples    int     `json:"substrate_samples"`
}

// DisplayConfig holds chart rendering preferences
type DisplayConfig struct {
	ChartWidth  int `json:"chart_width"`
	ChartHeight int `json:"chart_height"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Model: ModelConfig{
			LT1Fraction:         0.6,
			LT2Fraction:         0.9,
			LactateSamples:      15,
			SteadyStateFraction: 0.85,
			TimeConstant:        40,
			DurationSeconds:     300,
			StepSeconds:         5,
			BaseCalorieRate:     10,
			IntensityMin:        50,
			IntensityMax:        100,
			SubstrateSamples:    11,
		},
		Display: DisplayConfig{
			ChartWidth:  60,
			ChartHeight: 12,
		},
	}
}

// Load reads the configuration from ~/.vo2lab/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults backfills zero-valued model and display settings
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Model.LT1Fraction == 0 {
		c.Model.LT1Fraction = defaults.Model.LT1Fraction
	}
	if c.Model.LT2Fraction == 0 {
		c.Model.LT2Fraction = defaults.Model.LT2Fraction
	}
	if c.Model.LactateSamples == 0 {
		c.Model.LactateSamples = defaults.Model.LactateSamples
	}
	if c.Model.SteadyStateFraction == 0 {
		c.Model.SteadyStateFraction = defaults.Model.SteadyStateFraction
	}
	if c.Model.TimeConstant == 0 {
		c.Model.TimeConstant = defaults.Model.TimeConstant
	}
	if c.Model.DurationSeconds == 0 {
		c.Model.DurationSeconds = defaults.Model.DurationSeconds
	}
	if c.Model.StepSeconds == 0 {
		c.Model.StepSeconds = defaults.Model.StepSeconds
	}
	if c.Model.BaseCalorieRate == 0 {
		c.Model.BaseCalorieRate = defaults.Model.BaseCalorieRate
	}
	if c.Model.IntensityMin == 0 {
		c.Model.IntensityMin = defaults.Model.IntensityMin
	}
	if c.Model.IntensityMax == 0 {
		c.Model.IntensityMax = defaults.Model.IntensityMax
	}
	if c.Model.SubstrateSamples == 0 {
		c.Model.SubstrateSamples = defaults.Model.SubstrateSamples
	}
	if c.Display.ChartWidth == 0 {
		c.Display.ChartWidth = defaults.Display.ChartWidth
	}
	if c.Display.ChartHeight == 0 {
		c.Display.ChartHeight = defaults.Display.ChartHeight
	}
}

// Save writes the configuration to ~/.vo2lab/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates a default config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks that configured values are inside their model domains
func (c *Config) Validate() error {
	m := c.Model
	if m.LT1Fraction <= 0 || m.LT1Fraction >= m.LT2Fraction || m.LT2Fraction >= 1 {
		return fmt.Errorf("model fractions must satisfy 0 < lt1_fraction < lt2_fraction < 1, got %v and %v",
			m.LT1Fraction, m.LT2Fraction)
	}
	if m.TimeConstant <= 0 {
		return fmt.Errorf("model.time_constant_seconds must be positive, got %v", m.TimeConstant)
	}
	if m.SteadyStateFraction <= 0 || m.SteadyStateFraction > 1 {
		return fmt.Errorf("model.steady_state_fraction must be in (0, 1], got %v", m.SteadyStateFraction)
	}
	if m.DurationSeconds <= 0 || m.StepSeconds <= 0 {
		return fmt.Errorf("model duration and step must be positive, got %d and %d",
			m.DurationSeconds, m.StepSeconds)
	}
	if m.IntensityMin <= 0 || m.IntensityMin >= m.IntensityMax {
		return fmt.Errorf("model intensity range must satisfy 0 < intensity_min < intensity_max, got [%v, %v]",
			m.IntensityMin, m.IntensityMax)
	}
	if m.BaseCalorieRate <= 0 {
		return fmt.Errorf("model.base_calorie_rate must be positive, got %v", m.BaseCalorieRate)
	}
	if m.LactateSamples < 2 || m.SubstrateSamples < 2 {
		return fmt.Errorf("model sample counts need at least 2 points, got %d and %d",
			m.LactateSamples, m.SubstrateSamples)
	}

	// Stored athlete measurements only prefill the form, but an
	// inconsistent threshold order would fail on every submit
	a := c.Athlete
	if a.LT1HeartRate > 0 && a.LT2HeartRate > 0 && a.LT1HeartRate >= a.LT2HeartRate {
		return fmt.Errorf("athlete.lt1_hr (%d) must be below athlete.lt2_hr (%d)", a.LT1HeartRate, a.LT2HeartRate)
	}
	if a.LT2HeartRate > 0 && a.MaxHeartRate > 0 && a.LT2HeartRate >= a.MaxHeartRate {
		return fmt.Errorf("athlete.lt2_hr (%d) must be below athlete.max_hr (%d)", a.LT2HeartRate, a.MaxHeartRate)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vo2lab", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vo2lab"), nil
}
