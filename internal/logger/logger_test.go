package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(prev) })
	return buf
}

func TestWithContext(t *testing.T) {
	buf := captureOutput(t)
	Setup("debug")

	ctx := ContextWithRequestID(ContextWithUser(context.Background(), "gh|42"), "req-1")
	WithContext(ctx).WithField("deployment_id", "d-1").Info("resolved")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "gh|42", line["user"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "d-1", line["deployment_id"])
	assert.Equal(t, "resolved", line["msg"])
}

func TestWithContextWithoutUser(t *testing.T) {
	buf := captureOutput(t)
	Setup("info")

	WithContext(context.Background()).Info("tick")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "system", line["user"])
	_, hasRequestID := line["request_id"]
	assert.False(t, hasRequestID)
}

func TestSetupLevels(t *testing.T) {
	for level, want := range map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"bogus": logrus.InfoLevel,
	} {
		Setup(level)
		assert.Equal(t, want, logrus.GetLevel(), level)
	}
}
