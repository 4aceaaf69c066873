package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/keabank/internal/config"
	"github.com/pterm/pterm"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]pterm.LogLevel{
		"":      pterm.LogLevelWarn,
		"DEBUG": pterm.LogLevelDebug,
		"info":  pterm.LogLevelInfo,
		"off":   pterm.LogLevelDisabled,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("unknown level accepted")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "keabank.log")

	l, closeLog, err := New(config.LogConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New err=%v", err)
	}
	l.Info("account created", l.Args("account", "123456"))
	l.Debug("hidden")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "account created") || !strings.Contains(out, "123456") {
		t.Fatalf("log line missing: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %s", out)
	}
}
