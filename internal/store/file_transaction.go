package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/hance08/keabank/internal/constants"
	"github.com/hance08/keabank/internal/model"
	"github.com/shopspring/decimal"
)

// FileTransactionLog is an append-only CSV log with a single header row.
type FileTransactionLog struct {
	path string
}

func NewFileTransactionLog(path string) *FileTransactionLog {
	return &FileTransactionLog{path: path}
}

func (l *FileTransactionLog) Path() string {
	return l.path
}

// Append writes one row, emitting the header first when the file is new or empty.
func (l *FileTransactionLog) Append(tx model.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("can not create directory for %s: %w: %v", l.path, ErrStorageWrite, err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w: %v", l.path, ErrStorageWrite, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w: %v", l.path, ErrStorageWrite, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(constants.TransactionLogHeader); err != nil {
			return fmt.Errorf("failed to write header: %w: %v", ErrStorageWrite, err)
		}
	}

	row := []string{
		tx.AccountNumber,
		string(tx.Type),
		tx.Amount.String(),
		tx.Timestamp.Format(constants.DateTimeFormat),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write transaction: %w: %v", ErrStorageWrite, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w: %v", l.path, ErrStorageWrite, err)
	}

	return nil
}

// ListByAccount scans the whole log. A missing log is an empty history.
func (l *FileTransactionLog) ListByAccount(accountNumber string) ([]model.Transaction, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", l.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(constants.TransactionLogHeader)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w: %v", l.path, ErrStorageCorrupt, err)
	}
	if !slices.Equal(header, constants.TransactionLogHeader) {
		return nil, fmt.Errorf("unexpected header in %s: %w", l.path, ErrStorageCorrupt)
	}

	var transactions []model.Transaction
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w: %v", l.path, ErrStorageCorrupt, err)
		}

		if row[0] != accountNumber {
			continue
		}

		tx, err := parseTransactionRow(row)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("line %d of %s: %w: %v", line, l.path, ErrStorageCorrupt, err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func parseTransactionRow(row []string) (model.Transaction, error) {
	txType, err := model.ParseTransactionType(row[1])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(row[2])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q", row[2])
	}

	ts, err := time.ParseInLocation(constants.DateTimeFormat, row[3], time.Local)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date %q", row[3])
	}

	return model.Transaction{
		AccountNumber: row[0],
		Type:          txType,
		Amount:        amount,
		Timestamp:     ts,
	}, nil
}
