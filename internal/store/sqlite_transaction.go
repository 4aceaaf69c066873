package store

import (
	"fmt"
	"time"

	"github.com/hance08/keabank/internal/constants"
	"github.com/hance08/keabank/internal/model"
	"github.com/shopspring/decimal"
)

func (s *Store) Append(tx model.Transaction) error {
	_, err := s.db.Exec(`
        INSERT INTO transactions (account_number, type, amount, created_at)
        VALUES (?, ?, ?, ?);
    `, tx.AccountNumber, string(tx.Type), tx.Amount.String(), tx.Timestamp.Format(constants.DateTimeFormat))
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w: %v", ErrStorageWrite, err)
	}

	return nil
}

// ListByAccount returns transactions ordered by insertion id (append order)
func (s *Store) ListByAccount(accountNumber string) ([]model.Transaction, error) {
	rows, err := s.db.Query(`
        SELECT account_number, type, amount, created_at
        FROM transactions
        WHERE account_number = ?
        ORDER BY id
    `, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var txType, amount, createdAt string

		if err := rows.Scan(&tx.AccountNumber, &txType, &amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if tx.Type, err = model.ParseTransactionType(txType); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", amount, ErrStorageCorrupt)
		}
		if tx.Timestamp, err = time.ParseInLocation(constants.DateTimeFormat, createdAt, time.Local); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", createdAt, ErrStorageCorrupt)
		}

		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// SaveAndAppend commits the balance change and its transaction record together.
func (s *Store) SaveAndAppend(accounts map[string]*model.Account, tx model.Transaction) error {
	return s.ExecTx(func(txStore *Store) error {
		if err := txStore.upsertAccounts(accounts); err != nil {
			return err
		}
		return txStore.Append(tx)
	})
}
