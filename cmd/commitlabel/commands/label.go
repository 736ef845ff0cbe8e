// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/bartekus/commitlabel/cmd/commitlabel/internal/clierr"
	"github.com/bartekus/commitlabel/internal/commitlog"
	"github.com/bartekus/commitlabel/internal/config"
	"github.com/bartekus/commitlabel/internal/logging"
	"github.com/bartekus/commitlabel/internal/relabel"
)

// NewLabelCommand returns the `commitlabel label` command.
func NewLabelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Write synthesized names for every commit in a commit log",
		Long: `Read a commit log made of blank-line separated blocks, each starting with
"<hash>|<message>" followed by one changed file path per line, and write a
table of commit_hash, original_message and new_name.

Every flag can also be set through a COMMITLABEL_* environment variable
(e.g. COMMITLABEL_SERIAL_COMMA=false) or the file given by --config.`,
		Args: cobra.NoArgs,
		RunE: runLabel,
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().Bool(config.KeyCRLF, true, "terminate CSV lines with \\r\\n (--crlf=false for \\n)")
	cmd.Flags().String(config.KeyFormat, config.FormatCSV, "output format: csv or markdown")
	cmd.Flags().StringP(config.KeyInput, "i", config.DefaultInput, "commit log to read")
	cmd.Flags().String(config.KeyLogLevel, "info", "log level: debug, info, warn or error")
	cmd.Flags().StringP(config.KeyOutput, "o", config.DefaultOutput, "table to write, or - for stdout")
	cmd.Flags().String(config.KeyRules, "", "YAML file replacing the built-in classification rules")
	cmd.Flags().String(config.KeySeparator, commitlog.DefaultSeparator, "character separating hash from message")
	cmd.Flags().Bool(config.KeySerialComma, true, "use a comma before \"and\" when listing three or more areas")

	return cmd
}

func runLabel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))
	defer func() { _ = log.Sync() }()

	if _, err := relabel.New(cfg, commitlog.NewFileSource(cfg.Input, cfg.Separator), log, cmd.OutOrStdout()).Run(); err != nil {
		return exitError("label", err)
	}
	return nil
}

// loadConfig resolves settings from cmd's flags, the environment and the
// config file. Flags named in skip are command-local and not bound.
func loadConfig(cmd *cobra.Command, skip ...string) (config.Config, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags(), skip...); err != nil {
		return config.Config{}, clierr.Wrap(clierr.CodeUsage, cmd.Name()+": binding flags", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, clierr.Wrap(clierr.CodeUsage, cmd.Name()+": invalid configuration", err)
	}
	return cfg, nil
}

// exitError maps pipeline failures to process exit codes.
func exitError(name string, err error) error {
	switch {
	case errors.Is(err, relabel.ErrInput):
		return clierr.Wrap(clierr.CodeInput, name, err)
	case errors.Is(err, relabel.ErrOutput):
		return clierr.Wrap(clierr.CodeOutput, name, err)
	case errors.Is(err, relabel.ErrRules):
		return clierr.Wrap(clierr.CodeUsage, name, err)
	default:
		return clierr.Wrap(clierr.CodeFailure, name, err)
	}
}
