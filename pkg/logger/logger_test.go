package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", "JSON", &buf)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.WithField("rover", "curiosity").Debug("moved")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "moved", line["msg"])
	assert.Equal(t, "curiosity", line["rover"])
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New("loud", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.Debug("hidden")
	assert.Empty(t, buf.String())
	l.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitReplacesGlobal(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	var buf bytes.Buffer
	l := Init("warn", "text", &buf)
	assert.Same(t, l, Log)
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())

	Log.Warn("low battery")
	assert.Contains(t, buf.String(), "low battery")
}
