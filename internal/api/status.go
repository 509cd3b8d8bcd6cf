package api

import (
	"sync/atomic"
	"time"

	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Status counts what the server did since it started.
type Status struct {
	evaluations uint64
	suggestions uint64
	failures    uint64
	weak        uint64
	medium      uint64
	strong      uint64
	start       time.Time
}

func NewStatus() *Status {
	return &Status{start: time.Now()}
}

func (s *Status) Evaluated(strength advisor.Strength) {
	atomic.AddUint64(&s.evaluations, 1)
	switch strength {
	case advisor.Weak:
		atomic.AddUint64(&s.weak, 1)
	case advisor.Medium:
		atomic.AddUint64(&s.medium, 1)
	case advisor.Strong:
		atomic.AddUint64(&s.strong, 1)
	}
}

func (s *Status) Suggested() {
	atomic.AddUint64(&s.suggestions, 1)
}

func (s *Status) Failed() {
	atomic.AddUint64(&s.failures, 1)
}

func (s *Status) health() healthResponse {
	return healthResponse{
		Status:      "ok",
		Uptime:      time.Since(s.start).Round(time.Second).String(),
		Evaluations: atomic.LoadUint64(&s.evaluations),
		Suggestions: atomic.LoadUint64(&s.suggestions),
		Failures:    atomic.LoadUint64(&s.failures),
		Strengths: map[string]uint64{
			string(advisor.Weak):   atomic.LoadUint64(&s.weak),
			string(advisor.Medium): atomic.LoadUint64(&s.medium),
			string(advisor.Strong): atomic.LoadUint64(&s.strong),
		},
	}
}

// Report logs the counters, normally once on shutdown.
func (s *Status) Report() {
	h := s.health()
	p := message.NewPrinter(language.English)

	log.Info().Msgf("served %s evaluations and %s suggestions in %v", p.Sprintf("%d", h.Evaluations), p.Sprintf("%d", h.Suggestions), time.Since(s.start))
	log.Info().Msgf("strengths weak: %s, medium: %s, strong: %s",
		p.Sprintf("%d", h.Strengths[string(advisor.Weak)]),
		p.Sprintf("%d", h.Strengths[string(advisor.Medium)]),
		p.Sprintf("%d", h.Strengths[string(advisor.Strong)]))
	if h.Failures > 0 {
		log.Warn().Msgf("%s requests failed", p.Sprintf("%d", h.Failures))
	}
}
