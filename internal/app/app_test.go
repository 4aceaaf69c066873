package app

import (
	"testing"

	"github.com/hance08/keabank/internal/config"
	"github.com/hance08/keabank/internal/store"
)

func TestOpenBackend(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Storage.Dir = t.TempDir()

	fileBackend, err := OpenBackend(cfg)
	if err != nil {
		t.Fatalf("file backend err=%v", err)
	}
	if _, ok := fileBackend.Accounts.(*store.FileAccountStore); !ok {
		t.Fatalf("accounts = %T, want *store.FileAccountStore", fileBackend.Accounts)
	}
	if _, ok := fileBackend.Transactions.(*store.FileTransactionLog); !ok {
		t.Fatalf("transactions = %T, want *store.FileTransactionLog", fileBackend.Transactions)
	}

	cfg.Storage.Backend = "sqlite"
	sqliteBackend, err := OpenBackend(cfg)
	if err != nil {
		t.Fatalf("sqlite backend err=%v", err)
	}
	defer func() { _ = sqliteBackend.Close() }()
	if _, ok := sqliteBackend.Accounts.(store.Recorder); !ok {
		t.Fatal("sqlite backend should record atomically")
	}

	cfg.Storage.Backend = "postgres"
	if _, err := OpenBackend(cfg); err == nil {
		t.Fatal("unknown backend accepted")
	}
}

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Storage.Dir = t.TempDir()
	cfg.Log.Level = "off"

	a, cleanup, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp err=%v", err)
	}
	defer cleanup()

	if a.Service == nil || a.Service.Banking == nil || a.Service.Session == nil {
		t.Fatal("services not wired")
	}
}
