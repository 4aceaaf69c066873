package prompts

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/keabank/internal/ui"
	"github.com/hance08/keabank/internal/validation"
)

// PromptOwnerName prompts for the account holder's name
func PromptOwnerName() (string, error) {
	return PromptInput("Enter your name:", "", validation.ValidateOwnerName)
}

// PromptInitialDeposit prompts for the opening balance (Enter for 0)
func PromptInitialDeposit() (string, error) {
	return PromptAmount("Enter your initial deposit:", "Press Enter for 0", validation.ValidateInitialDeposit)
}

// PromptAccountNumber prompts for a 6 digit account number
func PromptAccountNumber() (string, error) {
	return PromptInput("Enter your account number:", "", validation.ValidateAccountNumber)
}

// PromptPassword reads a password without echoing it to the terminal
func PromptPassword(message string) (string, error) {
	var password string

	prompt := &survey.Password{Message: message}
	validator := func(val interface{}) error {
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("password must be a string")
		}
		return validation.ValidatePassword(s)
	}

	if err := survey.AskOne(prompt, &password, survey.WithValidator(validator), ui.IconOption()); err != nil {
		return "", err
	}
	return password, nil
}
