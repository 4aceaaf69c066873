package cmd

import (
	"github.com/hance08/keabank/internal/service"
	"github.com/spf13/cobra"
)

type bankingFlags struct {
	Account string
	Amount  string
}

// sessionRunner logs in for a single command and logs out afterwards
type sessionRunner struct {
	flags *bankingFlags
	run   func(svc *service.Service, session *service.Session) error
}

func (r *sessionRunner) Run() error {
	svc := application.Service

	session, err := authenticate(svc, r.flags.Account)
	if err != nil {
		return err
	}
	defer svc.Session.Logout(session)

	return r.run(svc, session)
}

func newSessionCmd(use, short, long string, withAmount bool, run func(*service.Service, *service.Session, *bankingFlags) error) *cobra.Command {
	flags := &bankingFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{
				flags: flags,
				run: func(svc *service.Service, session *service.Session) error {
					return run(svc, session, flags)
				},
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account number (prompted when omitted)")
	if withAmount {
		cmd.Flags().StringVarP(&flags.Amount, "amount", "m", "", "Amount (prompted when omitted)")
	}

	return cmd
}

func NewDepositCmd() *cobra.Command {
	return newSessionCmd(
		"deposit",
		"Deposit money into an account",
		`Deposit money into an account. The password is always prompted.

Example: keabank deposit -a 123456 -m 50`,
		true,
		func(svc *service.Service, session *service.Session, flags *bankingFlags) error {
			return deposit(svc, session, flags.Amount)
		},
	)
}

func NewWithdrawCmd() *cobra.Command {
	return newSessionCmd(
		"withdraw",
		"Withdraw money from an account",
		`Withdraw money from an account. Withdrawals above the balance are refused.

Example: keabank withdraw -a 123456 -m 20.50`,
		true,
		func(svc *service.Service, session *service.Session, flags *bankingFlags) error {
			return withdraw(svc, session, flags.Amount)
		},
	)
}

func NewBalanceCmd() *cobra.Command {
	return newSessionCmd(
		"balance",
		"Show the current balance of an account",
		`Show the current balance of an account.`,
		false,
		func(svc *service.Service, session *service.Session, _ *bankingFlags) error {
			return runBalance(svc, session)
		},
	)
}

func NewHistoryCmd() *cobra.Command {
	cmd := newSessionCmd(
		"history",
		"Show the transaction history of an account",
		`Show every deposit and withdrawal of an account in the order they happened.`,
		false,
		func(svc *service.Service, session *service.Session, _ *bankingFlags) error {
			return runHistory(svc, session)
		},
	)
	cmd.Aliases = []string{"transactions", "tx"}
	return cmd
}
