package service

import (
	"github.com/hance08/keabank/internal/config"
	"github.com/hance08/keabank/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Account *AccountService
	Session *SessionManager
	Banking *BankingService
	Config  *config.Config
}

func NewService(backend store.Backend, cfg *config.Config, logger *pterm.Logger) *Service {
	return &Service{
		Account: NewAccountService(backend.Accounts, logger),
		Session: NewSessionManager(backend.Accounts, logger),
		Banking: NewBankingService(backend.Accounts, backend.Transactions, logger),
		Config:  cfg,
	}
}
