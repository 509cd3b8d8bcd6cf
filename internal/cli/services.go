package cli

import (
	"fmt"

	"github.com/alvinbaena/pwd-advisor/internal/config"
	"github.com/alvinbaena/pwd-advisor/internal/feedback"
	"github.com/alvinbaena/pwd-advisor/internal/service"
	"github.com/alvinbaena/pwd-advisor/internal/util"
	"github.com/alvinbaena/pwd-advisor/pkg/client"
	"github.com/rs/zerolog/log"
)

type services struct {
	evaluator client.Evaluator
	suggester client.Suggester
	policy    feedback.Policy
	workers   int
	rateLimit int
	close     func()
}

// loadServices reads the client configuration and builds the evaluator and suggester the
// feedback controller talks to.
func loadServices() (*services, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	util.ApplyCliSettings(verbose || cfg.Debug, profile, pprofPort)

	policy, err := feedback.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	s := &services{policy: policy, workers: cfg.Workers, rateLimit: cfg.RateLimit, close: func() {}}
	if local {
		log.Debug().Msg("evaluating passwords in-process")
		svc := service.New()
		s.evaluator, s.suggester = svc, svc
	} else {
		log.Debug().Msgf("using evaluation service at %s", cfg.ServiceURL)
		c := client.New(client.Options{
			BaseURL: cfg.ServiceURL,
			Timeout: cfg.Timeout,
			Retries: cfg.Retries,
		})
		s.evaluator, s.suggester = c, c
	}

	if cfg.Cache {
		cached, err := client.NewCachingEvaluator(s.evaluator, cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("error creating evaluation cache: %w", err)
		}
		s.evaluator = cached
		s.close = cached.Close
	}

	return s, nil
}
