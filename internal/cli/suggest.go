package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	suggestCmd = &cobra.Command{
		Use:   "suggest",
		Short: "Print a suggested strong password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return suggestCommand(cmd.Context())
		},
	}
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func suggestCommand(ctx context.Context) error {
	s, err := loadServices()
	if err != nil {
		return err
	}
	defer s.close()

	suggestion, err := s.suggester.Suggest(ctx)
	if err != nil {
		return err
	}

	log.Info().Msgf("Suggested Strong Password: %s", suggestion.SuggestedPassword)
	return nil
}
