package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/keabank/internal/constants"
	"github.com/shopspring/decimal"
)

var maxAmount = decimal.New(1, 15)

// ParseAmount parses a money amount with at most two fractional digits.
// Sign rules are left to the callers below.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number format")
	}

	if !amount.Equal(amount.Truncate(constants.AmountScale)) {
		return decimal.Zero, fmt.Errorf("amount can have at most %d decimal places", constants.AmountScale)
	}

	if amount.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("amount too large")
	}

	return amount, nil
}

// ParsePositiveAmount is used for deposits and withdrawals
func ParsePositiveAmount(input string) (decimal.Decimal, error) {
	amount, err := ParseAmount(input)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than 0")
	}
	return amount, nil
}

// ParseInitialDeposit accepts zero, and an empty input counts as zero
func ParseInitialDeposit(input string) (decimal.Decimal, error) {
	if strings.TrimSpace(input) == "" {
		return decimal.Zero, nil
	}

	amount, err := ParseAmount(input)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("initial deposit can't be negative")
	}
	return amount, nil
}

func ValidatePositiveAmount(input string) error {
	_, err := ParsePositiveAmount(input)
	return err
}

func ValidateInitialDeposit(input string) error {
	_, err := ParseInitialDeposit(input)
	return err
}
