package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alvinbaena/pwd-advisor/internal/feedback"
	"github.com/alvinbaena/pwd-advisor/internal/tui"
	"github.com/spf13/cobra"
)

var (
	tuiCmd = &cobra.Command{
		Use:   "tui",
		Short: "Interactive password checker with live feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tuiCommand(cmd.Context())
		},
	}
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func tuiCommand(ctx context.Context) error {
	s, err := loadServices()
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, feedback.NewDispatcher(s.evaluator, s.suggester, s.policy), s.policy)
}
