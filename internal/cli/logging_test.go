package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{level: "debug", wantDebug: true, wantWarn: true},
		{level: "warn", wantDebug: false, wantWarn: true},
		{level: "error", wantDebug: false, wantWarn: false},
		{level: "bogus", wantDebug: false, wantWarn: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level, false)
			logger.Debug("debug record")
			logger.Warn("warn record")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug record")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn record")))
		})
	}
}

func TestNewLogger_ColorHandler(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "info", true).Info("hello", "player_id", 7)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "player_id")
}

func TestNewLogger_SessionIDsDiffer(t *testing.T) {
	var a, b bytes.Buffer
	newLogger(&a, "info", false).Info("x")
	newLogger(&b, "info", false).Info("x")
	assert.Contains(t, a.String(), "session=")
	assert.NotEqual(t, sessionID(), sessionID())
}
