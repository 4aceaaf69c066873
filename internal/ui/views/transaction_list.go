package views

import (
	"github.com/hance08/keabank/internal/constants"
	"github.com/hance08/keabank/internal/model"
	"github.com/hance08/keabank/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(accountNumber string, items []model.Transaction) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transaction history found.")
		return nil
	}

	pterm.DefaultSection.Printf("Transaction History for %s", accountNumber)

	tableData := pterm.TableData{
		{"Date", "Type", "Amount"},
	}

	for _, item := range items {
		txType := string(item.Type)
		amount := utils.FormatAmount(item.Amount)

		switch item.Type {
		case model.TypeDeposit:
			txType = pterm.Green(txType)
			amount = pterm.Green("+" + amount)
		case model.TypeWithdraw:
			txType = pterm.Red(txType)
			amount = pterm.Red("-" + amount)
		}

		tableData = append(tableData, []string{
			item.Timestamp.Format(constants.DateTimeFormat),
			txType,
			amount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
