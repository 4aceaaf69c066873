package store

import (
	"maps"

	"github.com/hance08/keabank/internal/model"
)

// MemoryStore keeps accounts and transactions in process memory.
// It copies on every Load and Save so callers see the same load-mutate-save
// semantics as the persistent backends.
type MemoryStore struct {
	accounts     map[string]model.Account
	transactions []model.Transaction

	// SaveErr and AppendErr, when set, are returned instead of persisting
	SaveErr   error
	AppendErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]model.Account)}
}

func (m *MemoryStore) Load() (map[string]*model.Account, error) {
	out := make(map[string]*model.Account, len(m.accounts))
	for number, acc := range m.accounts {
		cp := acc
		out[number] = &cp
	}
	return out, nil
}

func (m *MemoryStore) Save(accounts map[string]*model.Account) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	next := make(map[string]model.Account, len(accounts))
	for number, acc := range accounts {
		next[number] = *acc
	}
	m.accounts = next
	return nil
}

func (m *MemoryStore) Append(tx model.Transaction) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.transactions = append(m.transactions, tx)
	return nil
}

func (m *MemoryStore) ListByAccount(accountNumber string) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, tx := range m.transactions {
		if tx.AccountNumber == accountNumber {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Snapshot returns a copy of the stored accounts by value
func (m *MemoryStore) Snapshot() map[string]model.Account {
	return maps.Clone(m.accounts)
}

// Len reports how many transactions have been appended in total
func (m *MemoryStore) Len() int {
	return len(m.transactions)
}
