package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/config"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/rules"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new finance agent project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name used in replies (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(out io.Writer, dir, name string) error {
	// Create directory structure.
	for _, d := range []string{"data", "rules"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write agent.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "agent.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the default category rule table.
	if err := rules.Save(filepath.Join(dir, "rules", "category-rules.yaml"), rules.Default()); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	// Write data/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "data", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Fprintf(out, "Initialized finance agent project at %s\n", dir)
	fmt.Fprintf(out, "Drop your bank CSV exports into %s and run 'finagent chat'.\n", filepath.Join(dir, "data"))
	return nil
}
