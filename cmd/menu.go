package cmd

import (
	"fmt"

	"github.com/hance08/keabank/internal/errhandler"
	"github.com/hance08/keabank/internal/service"
	"github.com/hance08/keabank/internal/ui"
	"github.com/hance08/keabank/internal/ui/prompts"
	"github.com/hance08/keabank/internal/validation"
	"github.com/pterm/pterm"
)

// menuRunner is the interactive loop. A failed action is reported and the
// loop goes on. Exit or cancelling a menu ends it, and a menu prompt that
// cannot be shown at all is returned as an error.
type menuRunner struct {
	svc   *service.Service
	admin bool

	mainMenu    func() (string, error)
	accountMenu func(accountNumber string) (string, error)
}

func newMenuRunner(svc *service.Service, admin bool) *menuRunner {
	return &menuRunner{
		svc:         svc,
		admin:       admin,
		mainMenu:    prompts.PromptMainMenu,
		accountMenu: prompts.PromptAccountMenu,
	}
}

func (r *menuRunner) Run() error {
	for {
		pterm.Println()
		ui.PrintL1Title("Welcome to the Banking System")
		if r.admin {
			pterm.Info.Println("Admin mode")
		}

		session, err := r.svc.Session.Current()
		loggedIn := err == nil

		var choice string
		if loggedIn {
			choice, err = r.accountMenu(session.AccountNumber())
		} else {
			choice, err = r.mainMenu()
		}
		if err != nil {
			if errhandler.IsInterrupt(err) {
				r.farewell()
				return nil
			}
			return fmt.Errorf("failed to show menu: %w", err)
		}

		if choice == prompts.MenuExit {
			r.farewell()
			return nil
		}

		if err := r.dispatch(session, choice); err != nil {
			errhandler.Report(err)
		}
	}
}

func (r *menuRunner) farewell() {
	pterm.Println(pterm.Yellow("Thank you for using the Banking System!"))
}

func (r *menuRunner) dispatch(session *service.Session, choice string) error {
	switch choice {
	case prompts.MenuCreateAccount:
		return r.createAccount()
	case prompts.MenuLogin:
		return r.login()
	case prompts.MenuDeposit:
		return deposit(r.svc, session, "")
	case prompts.MenuWithdraw:
		return withdraw(r.svc, session, "")
	case prompts.MenuViewBalance:
		return runBalance(r.svc, session)
	case prompts.MenuViewTransactions:
		return runHistory(r.svc, session)
	case prompts.MenuLogout:
		pterm.Println(pterm.Yellow("Logging out..."))
		r.svc.Session.Logout(session)
	}
	return nil
}

func (r *menuRunner) createAccount() error {
	ui.PrintL2Title("Create Account")

	name, err := prompts.PromptOwnerName()
	if err != nil {
		return err
	}

	depositInput, err := prompts.PromptInitialDeposit()
	if err != nil {
		return err
	}
	deposit, err := validation.ParseInitialDeposit(depositInput)
	if err != nil {
		return err
	}

	password, err := prompts.PromptPassword("Enter your password:")
	if err != nil {
		return err
	}

	return createAccount(r.svc, name, deposit, password)
}

func (r *menuRunner) login() error {
	ui.PrintL2Title("Login")

	if _, err := authenticate(r.svc, ""); err != nil {
		return err
	}

	pterm.Success.Println("Login successful!")
	return nil
}
