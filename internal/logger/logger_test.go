package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "debug", want: zerolog.DebugLevel},
		{in: " WARN ", want: zerolog.WarnLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in, zerolog.InfoLevel))
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", FormatJSON, &buf)

	log.Info().Msg("hidden")
	log.Warn().Err(errors.New("boom")).Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "boom", line["err"])
	assert.Contains(t, line, "time")
}

func TestNewGocron(t *testing.T) {
	var buf bytes.Buffer
	log := NewGocron(zerolog.New(&buf))

	log.Error("job failed", "job", "announcement-tick", "attempt", 2, "dangling")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "job failed", line["message"])
	assert.Equal(t, "gocron", line["component"])
	assert.Equal(t, "announcement-tick", line["job"])
	assert.EqualValues(t, 2, line["attempt"])
	assert.Equal(t, "dangling", line["value"])
}
