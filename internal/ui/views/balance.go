package views

import (
	"github.com/hance08/keabank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderBalance(balance decimal.Decimal) {
	pterm.Info.Printf("Current balance: %s\n", pterm.Blue(utils.FormatAmount(balance)))
}

// RenderBalanceChange reports the outcome of a deposit or withdrawal
func RenderBalanceChange(action string, balance decimal.Decimal) {
	pterm.Success.Printf("%s successful! New balance: %s\n", action, utils.FormatAmount(balance))
}
