package utils

import (
	"github.com/hance08/keabank/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with a fixed two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(constants.AmountScale)
}
