package service

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/hance08/keabank/internal/constants"
	"github.com/hance08/keabank/internal/model"
	"github.com/hance08/keabank/internal/store"
	"github.com/hance08/keabank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo      store.AccountRepository
	logger    *pterm.Logger
	newNumber func() string
}

func NewAccountService(repo store.AccountRepository, logger *pterm.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger, newNumber: randomAccountNumber}
}

func randomAccountNumber() string {
	n := constants.AccountNumberMin + rand.IntN(constants.AccountNumberMax-constants.AccountNumberMin+1)
	return strconv.Itoa(n)
}

// CreateAccount opens an account and returns its number. The number is drawn
// at random and redrawn while it collides with an existing account.
func (as *AccountService) CreateAccount(name string, initialDeposit decimal.Decimal, password string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateOwnerName(name); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if initialDeposit.IsNegative() {
		return "", fmt.Errorf("%w: initial deposit can't be negative", ErrValidation)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	accounts, err := as.repo.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load accounts: %w", err)
	}

	number, err := as.freeNumber(accounts)
	if err != nil {
		return "", err
	}

	accounts[number] = &model.Account{
		Number:       number,
		OwnerName:    name,
		PasswordHash: HashPassword(password),
		Balance:      initialDeposit,
	}

	if err := as.repo.Save(accounts); err != nil {
		return "", fmt.Errorf("failed to save account: %w", err)
	}

	as.logger.Info("account created", as.logger.Args("account", number, "initial_deposit", initialDeposit.String()))
	return number, nil
}

func (as *AccountService) freeNumber(accounts map[string]*model.Account) (string, error) {
	for range constants.MaxAccountNumberAttempts {
		number := as.newNumber()
		if _, taken := accounts[number]; !taken {
			return number, nil
		}
		as.logger.Debug("account number collision", as.logger.Args("account", number))
	}
	return "", fmt.Errorf("%w after %d attempts", ErrAccountNumberExhausted, constants.MaxAccountNumberAttempts)
}
