// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitlabel/cmd/commitlabel/internal/clierr"
	"github.com/bartekus/commitlabel/internal/classify"
	"github.com/bartekus/commitlabel/internal/config"
	"github.com/bartekus/commitlabel/internal/projection"
	"github.com/bartekus/commitlabel/internal/relabel"
)

// NewRulesCommand returns the `commitlabel rules` command.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the classification rules in evaluation order",
		Long:  "Print the path-prefix rules used to tag files. Paths matching no rule are tagged META.",
		Args:  cobra.NoArgs,
		RunE:  runRules,
	}

	// --format selects the listing style here, not the label table format.
	cmd.Flags().String(config.KeyFormat, "text", "output format: text or yaml")
	cmd.Flags().String(config.KeyRules, "", "YAML file replacing the built-in classification rules")

	return cmd
}

func runRules(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString(config.KeyFormat)

	cfg, err := loadConfig(cmd, config.KeyFormat)
	if err != nil {
		return err
	}

	c, err := relabel.Classifier(cfg.Rules)
	if err != nil {
		return exitError("rules", err)
	}

	switch formatFlag {
	case "text":
		rows := make([][]string, 0, len(c.Rules())+1)
		for _, r := range c.Rules() {
			rows = append(rows, []string{r.Prefix, r.Tag.String(), r.Tag.DisplayName()})
		}
		rows = append(rows, []string{"(anything else)", classify.Meta.String(), classify.Meta.DisplayName()})

		out := projection.RenderTable([]string{"prefix", "tag", "area"}, rows)
		if _, err := cmd.OutOrStdout().Write([]byte(out)); err != nil {
			return fmt.Errorf("writing text output: %w", err)
		}
		return nil

	case "yaml":
		if err := classify.EncodeRules(cmd.OutOrStdout(), c.Rules()); err != nil {
			return fmt.Errorf("writing yaml output: %w", err)
		}
		return nil

	default:
		return clierr.New(clierr.CodeUsage, fmt.Sprintf("invalid format: %s (must be 'text' or 'yaml')", formatFlag))
	}
}
