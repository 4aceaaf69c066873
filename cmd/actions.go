package cmd

import (
	"github.com/hance08/keabank/internal/service"
	"github.com/hance08/keabank/internal/ui/prompts"
	"github.com/hance08/keabank/internal/ui/views"
	"github.com/hance08/keabank/internal/validation"
	"github.com/shopspring/decimal"
)

// authenticate prompts for whatever credentials were not given as flags
func authenticate(svc *service.Service, accountNumber string) (*service.Session, error) {
	var err error
	if accountNumber == "" {
		accountNumber, err = prompts.PromptAccountNumber()
		if err != nil {
			return nil, err
		}
	}

	password, err := prompts.PromptPassword("Enter your password:")
	if err != nil {
		return nil, err
	}

	return svc.Session.Authenticate(accountNumber, password)
}

func createAccount(svc *service.Service, name string, deposit decimal.Decimal, password string) error {
	number, err := svc.Account.CreateAccount(name, deposit, password)
	if err != nil {
		return err
	}

	return views.RenderAccountCreated(views.AccountCreatedItem{
		Number:    number,
		OwnerName: name,
		Balance:   deposit,
	})
}

// amountOrPrompt parses the flag value, or asks for an amount when it is empty
func amountOrPrompt(flagValue string, prompt func() (string, error)) (decimal.Decimal, error) {
	if flagValue == "" {
		input, err := prompt()
		if err != nil {
			return decimal.Zero, err
		}
		flagValue = input
	}
	return validation.ParsePositiveAmount(flagValue)
}

func deposit(svc *service.Service, session *service.Session, amountFlag string) error {
	amount, err := amountOrPrompt(amountFlag, prompts.PromptDepositAmount)
	if err != nil {
		return err
	}

	balance, err := svc.Banking.Deposit(session, amount)
	if err != nil {
		return err
	}

	views.RenderBalanceChange("Deposit", balance)
	return nil
}

func withdraw(svc *service.Service, session *service.Session, amountFlag string) error {
	amount, err := amountOrPrompt(amountFlag, prompts.PromptWithdrawAmount)
	if err != nil {
		return err
	}

	balance, err := svc.Banking.Withdraw(session, amount)
	if err != nil {
		return err
	}

	views.RenderBalanceChange("Withdrawal", balance)
	return nil
}

func runBalance(svc *service.Service, session *service.Session) error {
	balance, err := svc.Banking.Balance(session)
	if err != nil {
		return err
	}

	views.RenderBalance(balance)
	return nil
}

func runHistory(svc *service.Service, session *service.Session) error {
	txs, err := svc.Banking.Transactions(session)
	if err != nil {
		return err
	}

	return views.NewTransactionListView().Render(session.AccountNumber(), txs)
}
