package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/config"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/logger"
)

func newChatCommand() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat with the finance assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := logger.New(level)

			return runChat(cmd.Context(), cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "agent.yaml", "path to agent.yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runChat(ctx context.Context, cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer) error {
	sess, err := newSession(ctx, cfg, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n\n", sess.Welcome())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			fmt.Fprintln(out, "Bye 👋")
			break
		}

		fmt.Fprintf(out, "\n%s\n\n", sess.Respond(ctx, text))
	}
	return scanner.Err()
}
