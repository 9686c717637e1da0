package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFallback(t *testing.T) {
	Set(nil)
	if Logger() == nil {
		t.Fatal("Expected a fallback logger")
	}
}

func TestSet(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))
	defer Set(nil)

	Logger().Info("hello")
	if logs.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", logs.Len())
	}
}

func TestInit(t *testing.T) {
	defer Set(nil)
	if err := Init(true); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Logger() == nil {
		t.Error("Expected logger after Init")
	}
}
