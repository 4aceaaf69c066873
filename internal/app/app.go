package app

import (
	"errors"
	"fmt"

	"github.com/hance08/keabank/internal/config"
	"github.com/hance08/keabank/internal/constants"
	"github.com/hance08/keabank/internal/logger"
	"github.com/hance08/keabank/internal/service"
	"github.com/hance08/keabank/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Backend store.Backend
	Logger  *pterm.Logger
}

// NewApp builds the logger, opens the configured storage backend and wires
// the services, then returns the App with its cleanup func
func NewApp(cfg *config.Config) (*App, func(), error) {
	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	backend, err := OpenBackend(cfg)
	if err != nil {
		_ = closeLog()
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Debug("storage ready", log.Args("backend", cfg.Storage.Backend))

	svc := service.NewService(backend, cfg, log)

	cleanup := func() {
		if err := backend.Close(); err != nil {
			fmt.Printf("Error closing storage: %v\n", err)
		}
		_ = closeLog()
	}

	return &App{
		Service: svc,
		Backend: backend,
		Logger:  log,
	}, cleanup, nil
}

// OpenBackend selects the account store and transaction log implementation
func OpenBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Storage.Backend {
	case constants.BackendFile, "":
		accountsPath, err := cfg.AccountsPath()
		if err != nil {
			return store.Backend{}, err
		}
		txPath, err := cfg.TransactionsPath()
		if err != nil {
			return store.Backend{}, err
		}
		return store.Backend{
			Accounts:     store.NewFileAccountStore(accountsPath),
			Transactions: store.NewFileTransactionLog(txPath),
			Close:        func() error { return nil },
		}, nil

	case constants.BackendSQLite:
		dbPath, err := cfg.DBPath()
		if err != nil {
			return store.Backend{}, err
		}
		db, err := store.NewStore(dbPath)
		if err != nil {
			return store.Backend{}, err
		}
		return store.Backend{
			Accounts:     db,
			Transactions: db,
			Close:        db.Close,
		}, nil

	default:
		return store.Backend{}, errors.New("unknown storage backend '" + cfg.Storage.Backend + "' (must be file or sqlite)")
	}
}
