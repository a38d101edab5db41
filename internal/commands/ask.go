package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/config"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/logger"
)

func newAskCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logger.New(zerolog.WarnLevel)

			sess, err := newSession(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			reply := sess.Respond(cmd.Context(), strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "agent.yaml", "path to agent.yaml")

	return cmd
}
