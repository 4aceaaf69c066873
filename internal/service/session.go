package service

import (
	"fmt"

	"github.com/hance08/keabank/internal/store"
	"github.com/pterm/pterm"
)

// Session binds the process to one authenticated account until logout.
type Session struct {
	accountNumber string
	active        bool
}

func (s *Session) AccountNumber() string {
	if s == nil {
		return ""
	}
	return s.accountNumber
}

func (s *Session) Active() bool {
	return s != nil && s.active
}

// SessionManager tracks the single current session: Anonymous until a
// successful Authenticate, back to Anonymous on Logout.
type SessionManager struct {
	repo    store.AccountRepository
	logger  *pterm.Logger
	current *Session
}

func NewSessionManager(repo store.AccountRepository, logger *pterm.Logger) *SessionManager {
	return &SessionManager{repo: repo, logger: logger}
}

// Authenticate checks the credentials against the account store. An unknown
// account and a wrong password produce the same ErrInvalidCredentials.
func (sm *SessionManager) Authenticate(accountNumber, password string) (*Session, error) {
	accounts, err := sm.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	acc, ok := accounts[accountNumber]
	if !ok || !passwordMatches(password, acc.PasswordHash) {
		sm.logger.Info("login failed", sm.logger.Args("account", accountNumber))
		return nil, ErrInvalidCredentials
	}

	if sm.current != nil {
		sm.current.active = false
	}
	sm.current = &Session{accountNumber: accountNumber, active: true}

	sm.logger.Info("login", sm.logger.Args("account", accountNumber))
	return sm.current, nil
}

// Logout invalidates the session. It is a no-op for nil or already closed sessions.
func (sm *SessionManager) Logout(s *Session) {
	if !s.Active() {
		return
	}
	s.active = false
	if sm.current == s {
		sm.current = nil
	}
	sm.logger.Info("logout", sm.logger.Args("account", s.accountNumber))
}

// Current returns the active session or ErrNotAuthenticated
func (sm *SessionManager) Current() (*Session, error) {
	if !sm.current.Active() {
		return nil, ErrNotAuthenticated
	}
	return sm.current, nil
}
