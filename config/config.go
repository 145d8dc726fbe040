// SPDX-License-Identifier: MIT

// Package config holds the gemdet command configuration.
//
// Sources, lowest precedence first:
//
//  1. Default()
//  2. a TOML file named by -config or GEMDET_CONFIG
//  3. GEMDET_* environment variables
//  4. command-line flags that were set explicitly
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gemdet/gem"
	"github.com/katalvlaran/gemdet/logging"
	"github.com/katalvlaran/gemdet/matrix"
	"github.com/katalvlaran/gemdet/textformat"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds gemdet command configuration.
type Config struct {
	SingleThread bool    `toml:"single_thread" env:"GEMDET_SINGLE_THREAD"`
	Threads      int     `toml:"threads" env:"GEMDET_THREADS"`
	Barrier      string  `toml:"barrier" env:"GEMDET_BARRIER"`
	PrintStats   bool    `toml:"print_stats" env:"GEMDET_PRINT_STATS"`
	Precision    int     `toml:"precision" env:"GEMDET_PRECISION"`
	Digits       int     `toml:"digits" env:"GEMDET_DIGITS"`
	Delimiter    string  `toml:"delimiter" env:"GEMDET_DELIMITER"`
	Verify       bool    `toml:"verify" env:"GEMDET_VERIFY"`
	Tolerance    float64 `toml:"tolerance" env:"GEMDET_TOLERANCE"`
	MetricsFile  string  `toml:"metrics_file" env:"GEMDET_METRICS_FILE"`
	LogLevel     string  `toml:"log_level" env:"GEMDET_LOG_LEVEL"`
	LogDev       bool    `toml:"log_development" env:"GEMDET_LOG_DEVELOPMENT"`

	// Command-line only.
	ConfigFile  string   `toml:"-" env:"GEMDET_CONFIG"`
	DirectInput bool     `toml:"-"`
	Help        bool     `toml:"-"`
	FormatHelp  bool     `toml:"-"`
	Input       []string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Threads:   gem.DefaultThreads,
		Barrier:   gem.DefaultBarrier.String(),
		Precision: int(matrix.DefaultPrecision),
		Digits:    matrix.DefaultDisplayDigits,
		Delimiter: string(textformat.DefaultDelimiter),
		Tolerance: 1e-9,
		LogLevel:  logging.DefaultConfig().Level,
	}
}

// Validate checks every value with a closed domain. A non-positive Threads
// is not an error: the command falls back to the platform default.
func (c Config) Validate() error {
	if c.Precision < 1 || c.Precision > int(matrix.MaxPrecision) {
		return fmt.Errorf("precision %d not in [1, %d]: %w", c.Precision, matrix.MaxPrecision, ErrInvalid)
	}
	if c.Digits < 1 {
		return fmt.Errorf("digits %d < 1: %w", c.Digits, ErrInvalid)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance %g < 0: %w", c.Tolerance, ErrInvalid)
	}
	if _, err := textformat.ParseDelimiter(c.Delimiter); err != nil {
		return fmt.Errorf("delimiter: %w: %w", err, ErrInvalid)
	}
	if _, ok := gem.ParseBarrierMode(c.Barrier); !ok {
		return fmt.Errorf("barrier %q: %w", c.Barrier, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w: %w", err, ErrInvalid)
	}

	return nil
}

// DelimiterByte returns the validated delimiter.
func (c Config) DelimiterByte() byte {
	d, err := textformat.ParseDelimiter(c.Delimiter)
	if err != nil {
		return textformat.DefaultDelimiter
	}

	return d
}

// BarrierMode returns the validated barrier mode.
func (c Config) BarrierMode() gem.BarrierMode {
	b, _ := gem.ParseBarrierMode(c.Barrier)

	return b
}
