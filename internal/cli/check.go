// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"time"

	"github.com/alvinbaena/pwd-advisor/internal/feedback"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	suggestCommandInput = ":suggest"
	resetCommandInput   = ":reset"
	settleTimeout       = time.Minute
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [password]",
		Short: "Check the strength of a password",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return checkCommand(cmd.Context(), "")
			} else {
				return checkCommand(cmd.Context(), args[0])
			}
		},
	}
)

func init() {
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode.")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(ctx context.Context, password string) error {
	s, err := loadServices()
	if err != nil {
		return err
	}
	defer s.close()

	watcher := newViewWatcher()
	controller, err := feedback.NewController(s.evaluator, s.suggester, watcher, feedback.Options{
		Policy:            s.policy,
		Workers:           s.workers,
		RequestsPerSecond: s.rateLimit,
	})
	if err != nil {
		return err
	}
	controller.Start()
	defer controller.Stop()

	// The initial render must not be mistaken for the result of the first action.
	if _, err = submit(ctx, watcher, func() {}); err != nil {
		return err
	}

	if !interactive {
		v, err := submit(ctx, watcher, func() { controller.OnPasswordChanged(password) })
		if err != nil {
			return err
		}
		printView(v)
		return nil
	}

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return errors.New("please enter a password")
			}
			return nil
		},
	}

	log.Info().Msgf("Running interactive session. Type %s for a suggestion, %s to start over. ^C to exit",
		suggestCommandInput, resetCommandInput)
	if err = runInteractiveSession(ctx, prompt, controller, watcher); err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			log.Info().Msgf("Goodbye")
		} else {
			log.Error().Err(err).Msgf("Error during interactive session")
		}
		// No return to avoid the default cobra error message
		return nil
	}

	return nil
}

func runInteractiveSession(ctx context.Context, prompt promptui.Prompt, controller *feedback.Controller, watcher *viewWatcher) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		var action func()
		switch result {
		case suggestCommandInput:
			if !watcher.current().SuggestButtonVisible {
				log.Warn().Msg("Check a password before asking for a suggestion")
				continue
			}
			action = controller.OnSuggestRequested
		case resetCommandInput:
			action = controller.OnCheckAnotherRequested
		default:
			action = func() { controller.OnPasswordChanged(result) }
		}

		v, err := submit(ctx, watcher, action)
		if err != nil {
			log.Error().Err(err).Msg("Error waiting for feedback")
			continue
		}
		printView(v)
	}
}

// submit triggers an action on the controller and waits for the feedback it causes.
func submit(ctx context.Context, watcher *viewWatcher, action func()) (feedback.View, error) {
	ctx, cancel := context.WithTimeout(ctx, settleTimeout)
	defer cancel()

	mark := watcher.mark()
	action()
	return watcher.wait(ctx, mark)
}

func printView(v feedback.View) {
	if v.Error != "" {
		log.Error().Msg(v.Error)
	}

	if !v.FeedbackVisible {
		if v.Error != "" {
			return
		}
		log.Info().Msg("Enter a password to check")
		return
	}

	if v.Revealed {
		log.Info().Msgf("Password: %s", v.Input)
	}
	for _, c := range v.Criteria {
		log.Info().Msg(c.Text)
	}
	log.Info().Msgf("Time to crack: %s (%s)", v.CrackingTime, v.Risk)
	log.Info().Msg(v.Strength.Label)
	if v.SuggestionVisible {
		log.Info().Msg(v.Suggestion)
	}
}
