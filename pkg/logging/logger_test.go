package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent_AttachesFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Configure(Config{Output: &bytes.Buffer{}}) })

	l := WithComponent("scheduler")
	l.Info().Int(FieldCycle, 3).Msg("break due")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scheduler", entry[FieldComponent])
	assert.Equal(t, "eye-guard", entry["service"])
	assert.EqualValues(t, 3, entry[FieldCycle])
	assert.Equal(t, "break due", entry["message"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Configure(Config{Output: &bytes.Buffer{}}) })

	l := Base()
	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "loud", Output: &buf})
	t.Cleanup(func() { Configure(Config{Output: &bytes.Buffer{}}) })

	l := Base()
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
