package client

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// leveledLogger routes retryablehttp logs into zerolog. Retryablehttp is chatty at
// debug, so its debug output is only visible with trace enabled.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Error().Fields(keysAndValues).Msg(msg)
}

func (leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.WithLevel(zerolog.TraceLevel).Fields(keysAndValues).Msg(msg)
}

func (leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	log.Warn().Fields(keysAndValues).Msg(msg)
}
