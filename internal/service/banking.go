package service

import (
	"fmt"
	"time"

	"github.com/hance08/keabank/internal/model"
	"github.com/hance08/keabank/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// BankingService runs the per-account operations for an authenticated session.
// Each call loads the account mapping, applies one change and saves it back.
type BankingService struct {
	accounts     store.AccountRepository
	transactions store.TransactionRepository
	logger       *pterm.Logger
	now          func() time.Time
}

func NewBankingService(accounts store.AccountRepository, transactions store.TransactionRepository, logger *pterm.Logger) *BankingService {
	return &BankingService{
		accounts:     accounts,
		transactions: transactions,
		logger:       logger,
		now:          time.Now,
	}
}

func (bs *BankingService) Deposit(s *Session, amount decimal.Decimal) (decimal.Decimal, error) {
	return bs.apply(s, model.TypeDeposit, amount)
}

func (bs *BankingService) Withdraw(s *Session, amount decimal.Decimal) (decimal.Decimal, error) {
	return bs.apply(s, model.TypeWithdraw, amount)
}

func (bs *BankingService) Balance(s *Session) (decimal.Decimal, error) {
	if !s.Active() {
		return decimal.Zero, ErrNotAuthenticated
	}

	accounts, err := bs.accounts.Load()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load accounts: %w", err)
	}

	acc, ok := accounts[s.AccountNumber()]
	if !ok {
		return decimal.Zero, fmt.Errorf("account %s: %w", s.AccountNumber(), store.ErrRecordNotFound)
	}
	return acc.Balance, nil
}

// Transactions returns the session account's history in append order
func (bs *BankingService) Transactions(s *Session) ([]model.Transaction, error) {
	if !s.Active() {
		return nil, ErrNotAuthenticated
	}

	txs, err := bs.transactions.ListByAccount(s.AccountNumber())
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction history: %w", err)
	}
	return txs, nil
}

func (bs *BankingService) apply(s *Session, txType model.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !s.Active() {
		return decimal.Zero, ErrNotAuthenticated
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	}

	accounts, err := bs.accounts.Load()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load accounts: %w", err)
	}

	acc, ok := accounts[s.AccountNumber()]
	if !ok {
		return decimal.Zero, fmt.Errorf("account %s: %w", s.AccountNumber(), store.ErrRecordNotFound)
	}

	switch txType {
	case model.TypeDeposit:
		acc.Balance = acc.Balance.Add(amount)
	case model.TypeWithdraw:
		if acc.Balance.LessThan(amount) {
			return acc.Balance, ErrInsufficientFunds
		}
		acc.Balance = acc.Balance.Sub(amount)
	}

	tx := model.Transaction{
		AccountNumber: acc.Number,
		Type:          txType,
		Amount:        amount,
		Timestamp:     bs.now().Truncate(time.Second),
	}

	if err := bs.persist(accounts, tx); err != nil {
		return decimal.Zero, err
	}

	bs.logger.Info("balance changed", bs.logger.Args(
		"account", acc.Number,
		"type", string(txType),
		"amount", amount.String(),
		"balance", acc.Balance.String(),
	))
	return acc.Balance, nil
}

// persist saves the mapping and then appends the log entry. For file storage
// a crash between the two leaves the balance updated without a log row.
func (bs *BankingService) persist(accounts map[string]*model.Account, tx model.Transaction) error {
	if rec, ok := bs.accounts.(store.Recorder); ok && bs.sharesBackend() {
		if err := rec.SaveAndAppend(accounts, tx); err != nil {
			return fmt.Errorf("failed to record %s: %w", tx.Type, err)
		}
		return nil
	}

	if err := bs.accounts.Save(accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	if err := bs.transactions.Append(tx); err != nil {
		return fmt.Errorf("balance saved but failed to log %s: %w", tx.Type, err)
	}
	return nil
}

func (bs *BankingService) sharesBackend() bool {
	tr, ok := bs.transactions.(store.AccountRepository)
	return ok && tr == bs.accounts
}
