package service

import (
	"testing"

	"github.com/hance08/keabank/internal/config"
	"github.com/hance08/keabank/internal/logger"
	"github.com/hance08/keabank/internal/store"
	"github.com/shopspring/decimal"
)

func newMemoryService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	backend := store.Backend{Accounts: mem, Transactions: mem, Close: func() error { return nil }}
	return NewService(backend, config.NewDefault(), logger.Discard()), mem
}

// sequence returns a number generator that yields the given numbers in order
// and then repeats the last one
func sequence(numbers ...string) func() string {
	i := 0
	return func() string {
		n := numbers[min(i, len(numbers)-1)]
		i++
		return n
	}
}

func mustCreate(t *testing.T, svc *Service, name, deposit, password string) string {
	t.Helper()
	number, err := svc.Account.CreateAccount(name, decimal.RequireFromString(deposit), password)
	if err != nil {
		t.Fatalf("CreateAccount(%s) err=%v", name, err)
	}
	return number
}

func mustLogin(t *testing.T, svc *Service, number, password string) *Session {
	t.Helper()
	s, err := svc.Session.Authenticate(number, password)
	if err != nil {
		t.Fatalf("Authenticate(%s) err=%v", number, err)
	}
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
