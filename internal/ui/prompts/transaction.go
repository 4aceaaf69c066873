package prompts

import (
	"github.com/hance08/keabank/internal/validation"
)

func PromptDepositAmount() (string, error) {
	return PromptAmount("Enter amount to deposit:", "Up to 2 decimal places", validation.ValidatePositiveAmount)
}

func PromptWithdrawAmount() (string, error) {
	return PromptAmount("Enter amount to withdraw:", "Up to 2 decimal places", validation.ValidatePositiveAmount)
}
