package logger

import (
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// gocronLogger forwards gocron's key/value logging to zerolog.
type gocronLogger struct {
	log zerolog.Logger
}

// NewGocron adapts log to gocron.Logger.
func NewGocron(log zerolog.Logger) gocron.Logger {
	return &gocronLogger{log: log.With().Str("component", "gocron").Logger()}
}

func (l *gocronLogger) Debug(msg string, args ...any) {
	l.log.Debug().Fields(toFields(args)).Msg(msg)
}

func (l *gocronLogger) Info(msg string, args ...any) {
	l.log.Info().Fields(toFields(args)).Msg(msg)
}

func (l *gocronLogger) Warn(msg string, args ...any) {
	l.log.Warn().Fields(toFields(args)).Msg(msg)
}

func (l *gocronLogger) Error(msg string, args ...any) {
	l.log.Error().Fields(toFields(args)).Msg(msg)
}

func toFields(args []any) map[string]any {
	fields := make(map[string]any, len(args)/2+1)

	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			fields["value"] = args[i]
			break
		}

		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}
		fields[key] = args[i+1]
	}

	return fields
}
