package cmd

import (
	"fmt"

	"github.com/hance08/keabank/internal/ui/prompts"
	"github.com/hance08/keabank/internal/validation"
	"github.com/spf13/cobra"
)

type accountCreateFlags struct {
	Name    string
	Deposit string
}

func NewAccountCmd() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage bank accounts",
		Long:  `Open new bank accounts.`,
	}

	accountCmd.AddCommand(NewAccountCreateCmd())

	return accountCmd
}

func NewAccountCreateCmd() *cobra.Command {
	flags := &accountCreateFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new bank account and print its generated 6 digit account number.
Missing values are asked for interactively; the password is always prompted.

Example: keabank account create -n Alice -d 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountCreate(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account holder name")
	cmd.Flags().StringVarP(&flags.Deposit, "deposit", "d", "", "Initial deposit (defaults to 0)")

	return cmd
}

func runAccountCreate(flags *accountCreateFlags) error {
	name := flags.Name
	if name == "" {
		var err error
		if name, err = prompts.PromptOwnerName(); err != nil {
			return err
		}
	} else if err := validation.ValidateOwnerName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	depositInput := flags.Deposit
	if depositInput == "" && flags.Name == "" {
		var err error
		if depositInput, err = prompts.PromptInitialDeposit(); err != nil {
			return err
		}
	}
	deposit, err := validation.ParseInitialDeposit(depositInput)
	if err != nil {
		return fmt.Errorf("invalid initial deposit: %w", err)
	}

	password, err := prompts.PromptPassword("Enter your password:")
	if err != nil {
		return err
	}

	return createAccount(application.Service, name, deposit, password)
}
