package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/keabank/internal/config"
	"github.com/hance08/keabank/internal/logger"
	"github.com/hance08/keabank/internal/model"
	"github.com/hance08/keabank/internal/store"
)

func TestDepositIncreasesBalanceAndLogsOnce(t *testing.T) {
	svc, mem := newMemoryService(t)
	number := mustCreate(t, svc, "Alice", "100", "pw")
	s := mustLogin(t, svc, number, "pw")

	balance, err := svc.Banking.Deposit(s, dec("0.10"))
	if err != nil {
		t.Fatalf("Deposit err=%v", err)
	}
	if !balance.Equal(dec("100.10")) {
		t.Fatalf("balance=%s want 100.10", balance)
	}
	if !mem.Snapshot()[number].Balance.Equal(dec("100.10")) {
		t.Fatal("stored balance not updated")
	}

	txs, _ := svc.Banking.Transactions(s)
	if len(txs) != 1 || txs[0].Type != model.TypeDeposit || !txs[0].Amount.Equal(dec("0.10")) {
		t.Fatalf("unexpected log %+v", txs)
	}
}

func TestWithdraw(t *testing.T) {
	svc, mem := newMemoryService(t)
	number := mustCreate(t, svc, "Alice", "100", "pw")
	s := mustLogin(t, svc, number, "pw")

	balance, err := svc.Banking.Withdraw(s, dec("99.99"))
	if err != nil {
		t.Fatalf("Withdraw err=%v", err)
	}
	if !balance.Equal(dec("0.01")) {
		t.Fatalf("balance=%s want 0.01", balance)
	}

	txs, _ := svc.Banking.Transactions(s)
	if len(txs) != 1 || txs[0].Type != model.TypeWithdraw {
		t.Fatalf("unexpected log %+v", txs)
	}

	if _, err := svc.Banking.Withdraw(s, dec("0.02")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if !mem.Snapshot()[number].Balance.Equal(dec("0.01")) {
		t.Fatal("balance changed by refused withdrawal")
	}
	if mem.Len() != 1 {
		t.Fatalf("log has %d rows, want 1", mem.Len())
	}
}

func TestNonPositiveAmountsAreRejected(t *testing.T) {
	svc, mem := newMemoryService(t)
	number := mustCreate(t, svc, "Alice", "100", "pw")
	s := mustLogin(t, svc, number, "pw")

	for _, amount := range []string{"0", "-5"} {
		if _, err := svc.Banking.Deposit(s, dec(amount)); !errors.Is(err, ErrValidation) {
			t.Fatalf("Deposit(%s): want ErrValidation, got %v", amount, err)
		}
		if _, err := svc.Banking.Withdraw(s, dec(amount)); !errors.Is(err, ErrValidation) {
			t.Fatalf("Withdraw(%s): want ErrValidation, got %v", amount, err)
		}
	}
	if mem.Len() != 0 {
		t.Fatal("rejected amounts were logged")
	}
}

func TestTransactionsAreScopedToSessionAccount(t *testing.T) {
	svc, _ := newMemoryService(t)
	a := mustCreate(t, svc, "Alice", "100", "pa")
	b := mustCreate(t, svc, "Bob", "100", "pb")

	sa := mustLogin(t, svc, a, "pa")
	for _, amount := range []string{"1", "2"} {
		if _, err := svc.Banking.Deposit(sa, dec(amount)); err != nil {
			t.Fatal(err)
		}
	}

	sb := mustLogin(t, svc, b, "pb")
	if _, err := svc.Banking.Withdraw(sb, dec("50")); err != nil {
		t.Fatal(err)
	}

	sa = mustLogin(t, svc, a, "pa")
	if _, err := svc.Banking.Withdraw(sa, dec("3")); err != nil {
		t.Fatal(err)
	}

	txs, err := svc.Banking.Transactions(sa)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		typ    model.TransactionType
		amount string
	}{
		{model.TypeDeposit, "1"},
		{model.TypeDeposit, "2"},
		{model.TypeWithdraw, "3"},
	}
	if len(txs) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(txs), len(want))
	}
	for i, w := range want {
		if txs[i].AccountNumber != a || txs[i].Type != w.typ || !txs[i].Amount.Equal(dec(w.amount)) {
			t.Fatalf("transaction #%d = %+v, want %s %s", i, txs[i], w.typ, w.amount)
		}
	}
}

func TestStorageFailuresPropagate(t *testing.T) {
	svc, mem := newMemoryService(t)
	number := mustCreate(t, svc, "Alice", "100", "pw")
	s := mustLogin(t, svc, number, "pw")

	mem.SaveErr = fmt.Errorf("disk full: %w", store.ErrStorageWrite)
	if _, err := svc.Banking.Deposit(s, dec("5")); !errors.Is(err, store.ErrStorageWrite) {
		t.Fatalf("want ErrStorageWrite, got %v", err)
	}
	if mem.Len() != 0 {
		t.Fatal("transaction logged although the balance was not saved")
	}

	mem.SaveErr = nil
	mem.AppendErr = fmt.Errorf("read-only: %w", store.ErrStorageWrite)
	if _, err := svc.Banking.Deposit(s, dec("5")); !errors.Is(err, store.ErrStorageWrite) {
		t.Fatalf("want ErrStorageWrite, got %v", err)
	}
}

func TestMissingAccountIsReported(t *testing.T) {
	svc, mem := newMemoryService(t)
	number := mustCreate(t, svc, "Alice", "100", "pw")
	s := mustLogin(t, svc, number, "pw")

	// the store was replaced underneath the session
	if err := mem.Save(nil); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Banking.Balance(s); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	if _, err := svc.Banking.Deposit(s, dec("1")); !errors.Is(err, store.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func openBackend(t *testing.T, kind string) store.Backend {
	t.Helper()
	dir := t.TempDir()

	switch kind {
	case "file":
		return store.Backend{
			Accounts:     store.NewFileAccountStore(filepath.Join(dir, "accounts.json")),
			Transactions: store.NewFileTransactionLog(filepath.Join(dir, "transactions.csv")),
			Close:        func() error { return nil },
		}
	case "sqlite":
		db, err := store.NewStore(filepath.Join(dir, "keabank.db"))
		if err != nil {
			t.Fatalf("NewStore err=%v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		return store.Backend{Accounts: db, Transactions: db, Close: db.Close}
	}

	t.Fatalf("unknown backend %s", kind)
	return store.Backend{}
}

func TestAliceScenario(t *testing.T) {
	for _, kind := range []string{"file", "sqlite"} {
		t.Run(kind, func(t *testing.T) {
			svc := NewService(openBackend(t, kind), config.NewDefault(), logger.Discard())
			svc.Account.newNumber = sequence("123456")
			svc.Banking.now = func() time.Time { return time.Date(2025, 1, 4, 17, 8, 30, 0, time.Local) }

			acc := mustCreate(t, svc, "Alice", "100.0", "pw1")
			if acc != "123456" {
				t.Fatalf("account=%s want 123456", acc)
			}
			s := mustLogin(t, svc, acc, "pw1")

			balance, err := svc.Banking.Deposit(s, dec("50"))
			if err != nil || !balance.Equal(dec("150")) {
				t.Fatalf("Deposit = %s, %v; want 150", balance, err)
			}
			assertLogLen(t, svc, s, 1)

			if _, err := svc.Banking.Withdraw(s, dec("200")); !errors.Is(err, ErrInsufficientFunds) {
				t.Fatalf("want ErrInsufficientFunds, got %v", err)
			}
			assertBalance(t, svc, s, "150")
			assertLogLen(t, svc, s, 1)

			balance, err = svc.Banking.Withdraw(s, dec("150"))
			if err != nil || !balance.IsZero() {
				t.Fatalf("Withdraw = %s, %v; want 0", balance, err)
			}
			assertLogLen(t, svc, s, 2)
			assertBalance(t, svc, s, "0")

			txs, _ := svc.Banking.Transactions(s)
			if !txs[0].Timestamp.Equal(time.Date(2025, 1, 4, 17, 8, 30, 0, time.Local)) {
				t.Fatalf("timestamp=%v", txs[0].Timestamp)
			}
		})
	}
}

func assertBalance(t *testing.T, svc *Service, s *Session, want string) {
	t.Helper()
	balance, err := svc.Banking.Balance(s)
	if err != nil {
		t.Fatalf("Balance err=%v", err)
	}
	if !balance.Equal(dec(want)) {
		t.Fatalf("balance=%s want %s", balance, want)
	}
}

func assertLogLen(t *testing.T, svc *Service, s *Session, want int) {
	t.Helper()
	txs, err := svc.Banking.Transactions(s)
	if err != nil {
		t.Fatalf("Transactions err=%v", err)
	}
	if len(txs) != want {
		t.Fatalf("log has %d rows, want %d", len(txs), want)
	}
}
