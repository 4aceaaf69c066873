package store

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hance08/keabank/internal/model"
	"github.com/shopspring/decimal"
)

func (s *Store) Load() (map[string]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT account_number, owner_name, password_hash, balance
        FROM accounts
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	accounts := make(map[string]*model.Account)
	for rows.Next() {
		acc := &model.Account{}
		var balance string

		if err := rows.Scan(&acc.Number, &acc.OwnerName, &acc.PasswordHash, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		acc.Balance, err = decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("invalid balance for account %s: %w", acc.Number, ErrStorageCorrupt)
		}
		if acc.Balance.IsNegative() {
			return nil, fmt.Errorf("negative balance for account %s: %w", acc.Number, ErrStorageCorrupt)
		}

		accounts[acc.Number] = acc
	}

	return accounts, rows.Err()
}

// Save upserts every account in the mapping inside one transaction.
// Accounts are never deleted, so rows missing from the mapping are left alone.
func (s *Store) Save(accounts map[string]*model.Account) error {
	return s.ExecTx(func(tx *Store) error {
		return tx.upsertAccounts(accounts)
	})
}

func (s *Store) upsertAccounts(accounts map[string]*model.Account) error {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (account_number, owner_name, password_hash, balance)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(account_number) DO UPDATE SET
            owner_name = excluded.owner_name,
            password_hash = excluded.password_hash,
            balance = excluded.balance;
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL : %w: %v", ErrStorageWrite, err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, number := range slices.Sorted(maps.Keys(accounts)) {
		acc := accounts[number]
		if _, err := stmt.Exec(number, acc.OwnerName, acc.PasswordHash, acc.Balance.String()); err != nil {
			return fmt.Errorf("failed to save account %s: %w: %v", number, ErrStorageWrite, err)
		}
	}

	return nil
}
