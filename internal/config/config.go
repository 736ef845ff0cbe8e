// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitlabel - Commitlabel relabels commit history by the project areas each commit touches.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package config resolves commitlabel settings from flags, environment and an
// optional config file.
//
// Precedence: flag > COMMITLABEL_* environment variable > config file > default.
package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bartekus/commitlabel/internal/commitlog"
)

// EnvPrefix is the prefix for environment overrides, e.g. COMMITLABEL_INPUT.
const EnvPrefix = "COMMITLABEL"

// Keys shared by flags, environment variables and config files.
const (
	KeyConfig      = "config"
	KeyInput       = "input"
	KeyOutput      = "output"
	KeyFormat      = "format"
	KeySeparator   = "separator"
	KeyRules       = "rules"
	KeyCRLF        = "crlf"
	KeySerialComma = "serial-comma"
	KeyVerbose     = "verbose"
	KeyLogLevel    = "log-level"
)

// Defaults.
const (
	DefaultInput  = "/tmp/commit_log.txt"
	DefaultOutput = "new-names.csv"
	FormatCSV     = "csv"
	FormatMD      = "markdown"
	// StdoutPath selects standard output instead of a file.
	StdoutPath = "-"
)

// Config holds resolved settings for a labeling run.
type Config struct {
	Input       string
	Output      string
	Format      string
	Separator   string
	Rules       string
	CRLF        bool
	SerialComma bool
	Verbose     bool
	LogLevel    string
}

// New returns a Viper instance with defaults and environment lookup configured.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyInput, DefaultInput)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyFormat, FormatCSV)
	v.SetDefault(KeySeparator, commitlog.DefaultSeparator)
	v.SetDefault(KeyCRLF, true)
	v.SetDefault(KeySerialComma, true)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every flag in fs to the Viper key of the same name,
// except the flags named in skip.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, skip ...string) error {
	var result error
	fs.VisitAll(func(f *pflag.Flag) {
		if slices.Contains(skip, f.Name) {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}

// ReadFile merges the config file named by the "config" key, if any.
func ReadFile(v *viper.Viper) error {
	path := v.GetString(KeyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", path)
	}
	return nil
}

// Load resolves and validates a Config from v.
func Load(v *viper.Viper) (Config, error) {
	if err := ReadFile(v); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Input:       v.GetString(KeyInput),
		Output:      v.GetString(KeyOutput),
		Format:      strings.ToLower(v.GetString(KeyFormat)),
		Separator:   v.GetString(KeySeparator),
		Rules:       v.GetString(KeyRules),
		CRLF:        v.GetBool(KeyCRLF),
		SerialComma: v.GetBool(KeySerialComma),
		Verbose:     v.GetBool(KeyVerbose),
		LogLevel:    v.GetString(KeyLogLevel),
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var result error
	if c.Input == "" {
		result = multierror.Append(result, errors.New("input path is empty"))
	}
	if c.Output == "" {
		result = multierror.Append(result, errors.New("output path is empty"))
	}
	switch c.Format {
	case FormatCSV, FormatMD:
	default:
		result = multierror.Append(result, fmt.Errorf("invalid format %q (must be %q or %q)", c.Format, FormatCSV, FormatMD))
	}
	if utf8.RuneCountInString(c.Separator) != 1 {
		result = multierror.Append(result, fmt.Errorf("separator must be a single character, got %q", c.Separator))
	} else if c.Separator == "\n" || c.Separator == "\r" {
		result = multierror.Append(result, errors.New("separator cannot be a line break"))
	}
	return result
}

// ToStdout reports whether output goes to standard output.
func (c Config) ToStdout() bool {
	return c.Output == StdoutPath
}
