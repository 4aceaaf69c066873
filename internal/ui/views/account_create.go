package views

import (
	"github.com/hance08/keabank/internal/ui"
	"github.com/hance08/keabank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountCreatedItem struct {
	Number    string
	OwnerName string
	Balance   decimal.Decimal
}

func RenderAccountCreated(data AccountCreatedItem) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), data.Number},
		{pterm.Blue("Name"), data.OwnerName},
		{pterm.Blue("Balance"), utils.FormatAmount(data.Balance)},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("Account created successfully! Your Account number is %s.\n", data.Number)

	return nil
}
