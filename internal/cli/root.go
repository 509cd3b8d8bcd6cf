// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"time"

	"github.com/alvinbaena/pwd-advisor/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwdadvisor [COMMAND] [OPTIONS]",
		Short: "Real-time password strength feedback",
		Long: "Check how strong a password is while you type it. Feedback comes from a password evaluation " +
			"service, which this command can also serve.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Init(configFile)
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	flags.BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	flags.Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
	flags.StringVar(&configFile, "config", "", "Optional configuration file (yaml, toml or json)")
	flags.BoolVar(&local, "local", false, "Evaluate passwords in-process instead of calling the evaluation service")

	flags.String("service-url", "http://localhost:8080", "Base URL of the password evaluation service")
	flags.Duration("timeout", 10*time.Second, "Timeout of a single request to the evaluation service")
	flags.Int("retries", 0, "Retries for failed requests to the evaluation service")
	flags.Bool("cache", false, "Cache evaluation results for the session")
	flags.String("policy", "latest", "What to do with late responses: latest drops them, all applies them")
	flags.Int("workers", 4, "Concurrent requests to the evaluation service")
	flags.Int("rate-limit", 0, "Requests per second the check command sends to the evaluation service, 0 for no limit")

	viper.BindPFlag("SERVICE_URL", flags.Lookup("service-url"))
	viper.BindPFlag("TIMEOUT", flags.Lookup("timeout"))
	viper.BindPFlag("RETRIES", flags.Lookup("retries"))
	viper.BindPFlag("CACHE", flags.Lookup("cache"))
	viper.BindPFlag("POLICY", flags.Lookup("policy"))
	viper.BindPFlag("WORKERS", flags.Lookup("workers"))
	viper.BindPFlag("RATE_LIMIT", flags.Lookup("rate-limit"))
}

func Execute() error {
	return rootCmd.Execute()
}
