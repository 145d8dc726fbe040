// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// ParseConfig resolves the configuration from defaults, the optional TOML
// file, the environment and args.
// Implementation:
//   - Stage 1: a scratch pass over args finds -config (GEMDET_CONFIG otherwise).
//   - Stage 2: Default(), then the file, then the environment.
//   - Stage 3: flags are bound to the result and parsed, so only flags present
//     in args override it.
//   - Stage 4: positional arguments become Input. A leading argument such as
//     "-1" or "-.5" starts the input instead of being read as a flag.
//
// Errors:
//   - flag errors, file/TOML errors, env errors, ErrInvalid from Validate.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("config: flag set is required")
	}
	flagArgs, rest := splitInput(fs, args)

	path := configPath(fs.Name(), flagArgs)
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	Bind(fs, &cfg)
	if err := fs.Parse(flagArgs); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	cfg.Input = append(append([]string(nil), fs.Args()...), rest...)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Bind registers every flag on fs with the current values of cfg as defaults.
func Bind(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.SingleThread, "s", cfg.SingleThread, "Use the single-threaded implementation.")
	fs.IntVar(&cfg.Threads, "t", cfg.Threads, "Number of threads (ignored with -s).")
	fs.BoolVar(&cfg.PrintStats, "p", cfg.PrintStats, "Print performance statistics.")
	fs.BoolVar(&cfg.DirectInput, "m", cfg.DirectInput, "INPUT is the matrix itself, not a file.")
	fs.BoolVar(&cfg.Help, "h", cfg.Help, "Print help.")
	fs.BoolVar(&cfg.Help, "help", cfg.Help, "Print help.")
	fs.BoolVar(&cfg.FormatHelp, "f", cfg.FormatHelp, "Print the expected matrix format.")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Cross-check the result against a float64 determinant.")
	fs.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "Relative tolerance of -verify.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this textfile.")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "TOML configuration file.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error.")
	fs.BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "Human-readable development logs.")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "Significant digits kept by arithmetic.")
	fs.IntVar(&cfg.Digits, "digits", cfg.Digits, "Significant digits of the printed determinant.")
	fs.StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter, "Row delimiter of the matrix text format.")
	fs.StringVar(&cfg.Barrier, "barrier", cfg.Barrier, "Worker barrier: block or spin.")
}

// LoadFile decodes the TOML file at path over cfg. Unknown keys are errors.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

// configPath finds the config file before the real flag pass: -config in
// args wins over GEMDET_CONFIG.
func configPath(name string, args []string) string {
	scratch := flag.NewFlagSet(name, flag.ContinueOnError)
	scratch.SetOutput(io.Discard)
	var scratchCfg Config
	Bind(scratch, &scratchCfg)
	if err := scratch.Parse(args); err == nil && scratchCfg.ConfigFile != "" {
		return scratchCfg.ConfigFile
	}

	return os.Getenv("GEMDET_CONFIG")
}

// splitInput cuts args before the first negative-number argument that is
// not the value of a preceding non-boolean flag.
func splitInput(fs *flag.FlagSet, args []string) ([]string, []string) {
	var scratchCfg Config
	scratch := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	Bind(scratch, &scratchCfg)

	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !looksNumeric(arg) {
			continue
		}
		if i > 0 && takesValue(scratch, args[i-1]) {
			continue
		}

		return args[:i], args[i:]
	}

	return args, nil
}

// looksNumeric matches "-<digit>" and "-.<digit>".
func looksNumeric(arg string) bool {
	s := strings.TrimPrefix(arg, "-")
	if s == arg || s == "" {
		return false
	}
	s = strings.TrimPrefix(s, ".")

	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// takesValue reports whether arg is a flag that consumes the next argument.
func takesValue(fs *flag.FlagSet, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	f := fs.Lookup(strings.TrimLeft(arg, "-"))
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}

	return true
}
