package store

import "github.com/hance08/keabank/internal/model"

// AccountRepository persists the whole account mapping keyed by account number.
// Every operation loads it fresh and writes it back in full.
type AccountRepository interface {
	Load() (map[string]*model.Account, error)
	Save(accounts map[string]*model.Account) error
}

// TransactionRepository is an append-only transaction log.
type TransactionRepository interface {
	Append(tx model.Transaction) error
	// ListByAccount returns the account's transactions in append order
	ListByAccount(accountNumber string) ([]model.Transaction, error)
}

// Recorder is implemented by backends that can persist the account mapping
// and a transaction record in one atomic step.
type Recorder interface {
	SaveAndAppend(accounts map[string]*model.Account, tx model.Transaction) error
}

// Backend bundles the repositories chosen at startup.
type Backend struct {
	Accounts     AccountRepository
	Transactions TransactionRepository
	Close        func() error
}
