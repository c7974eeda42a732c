package logger

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewCarriesPrefix(t *testing.T) {
	l := New("ipc")
	if got := l.GetPrefix(); got != "ipc" {
		t.Errorf("prefix = %q, want ipc", got)
	}
}

func TestNewWithConfig(t *testing.T) {
	l := NewWithConfig("cli", log.DebugLevel, false, false, log.TextFormatter)
	if got := l.GetPrefix(); got != "cli" {
		t.Errorf("prefix = %q, want cli", got)
	}
	if got := l.GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}
}
