package config

import (
	"path/filepath"
	"testing"
)

func TestStoragePaths(t *testing.T) {
	dir := t.TempDir()
	cfg := NewDefault()
	cfg.Storage.Dir = dir

	accounts, err := cfg.AccountsPath()
	if err != nil || accounts != filepath.Join(dir, "accounts.json") {
		t.Fatalf("AccountsPath() = %q, %v", accounts, err)
	}

	txs, err := cfg.TransactionsPath()
	if err != nil || txs != filepath.Join(dir, "transactions.csv") {
		t.Fatalf("TransactionsPath() = %q, %v", txs, err)
	}

	abs := filepath.Join(t.TempDir(), "elsewhere.db")
	cfg.Storage.DBFile = abs
	db, err := cfg.DBPath()
	if err != nil || db != abs {
		t.Fatalf("DBPath() = %q, %v; absolute paths must be kept", db, err)
	}
}

func TestDefaultsMatchNewDefault(t *testing.T) {
	d := Defaults()
	if d["storage.backend"] != "file" || d["log.level"] != "warn" {
		t.Fatalf("unexpected defaults %v", d)
	}
}
