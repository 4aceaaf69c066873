package model

import "github.com/shopspring/decimal"

type Account struct {
	Number       string
	OwnerName    string
	PasswordHash string
	Balance      decimal.Decimal
}
