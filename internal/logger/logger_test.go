package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	log := New("debug", "console")
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be enabled")
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := New("chatty", "json")
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be disabled")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info level to be enabled")
	}
}
