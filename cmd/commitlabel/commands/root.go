// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitlabel - Commitlabel relabels commit history by the project areas each commit touches.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitlabel/internal/config"
)

// NewRootCmd constructs the commitlabel root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("COMMITLABEL_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "commitlabel",
		Short:         "Commitlabel - descriptive names for commit history",
		Long:          "Commitlabel classifies commits by the project areas their files touch and writes a table of synthesized commit names.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP(config.KeyVerbose, "v", false, "enable verbose output")
	cmd.PersistentFlags().String(config.KeyConfig, "", "path to a YAML config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of commitlabel",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commitlabel version %s\n", version)
		},
	})

	cmd.AddCommand(NewLabelCommand())
	cmd.AddCommand(NewRulesCommand())

	return cmd
}
