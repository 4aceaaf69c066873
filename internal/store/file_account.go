package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hance08/keabank/internal/model"
	"github.com/hance08/keabank/internal/validation"
	"github.com/shopspring/decimal"
)

// accountRecord is the on-disk shape of one account, keyed by account number.
type accountRecord struct {
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Balance  json.Number `json:"balance"`
}

// FileAccountStore keeps the account mapping in an indented JSON file.
type FileAccountStore struct {
	path string
}

func NewFileAccountStore(path string) *FileAccountStore {
	return &FileAccountStore{path: path}
}

func (s *FileAccountStore) Path() string {
	return s.path
}

// Load reads the account mapping. A missing file means no accounts yet.
func (s *FileAccountStore) Load() (map[string]*model.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]*model.Account), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records map[string]accountRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w: %v", s.path, ErrStorageCorrupt, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%s does not hold an account mapping: %w", s.path, ErrStorageCorrupt)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the account mapping in %s: %w", s.path, ErrStorageCorrupt)
	}

	accounts := make(map[string]*model.Account, len(records))
	for number, rec := range records {
		if err := validation.ValidateAccountNumber(number); err != nil {
			return nil, fmt.Errorf("invalid account key %q: %w", number, ErrStorageCorrupt)
		}

		balance, err := decimal.NewFromString(rec.Balance.String())
		if err != nil {
			return nil, fmt.Errorf("invalid balance for account %s: %w", number, ErrStorageCorrupt)
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("negative balance for account %s: %w", number, ErrStorageCorrupt)
		}

		accounts[number] = &model.Account{
			Number:       number,
			OwnerName:    rec.Name,
			PasswordHash: rec.Password,
			Balance:      balance,
		}
	}

	return accounts, nil
}

// Save rewrites the whole mapping. It writes a sibling temp file first and
// renames it over the store so a failed write never truncates existing data.
func (s *FileAccountStore) Save(accounts map[string]*model.Account) error {
	records := make(map[string]accountRecord, len(accounts))
	for number, acc := range accounts {
		records[number] = accountRecord{
			Name:     acc.OwnerName,
			Password: acc.PasswordHash,
			Balance:  json.Number(acc.Balance.String()),
		}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("can not create directory for %s: %w: %v", s.path, ErrStorageWrite, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w: %v", tmp, ErrStorageWrite, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w: %v", s.path, ErrStorageWrite, err)
	}

	return nil
}
