package errhandler

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/keabank/internal/service"
	"github.com/hance08/keabank/internal/store"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether the user cancelled a prompt (Ctrl-C / Esc)
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// Describe turns an error into the message shown to the user. Every error
// kind gets its own wording so failures stay distinguishable.
func Describe(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid account number or password."
	case errors.Is(err, service.ErrNotAuthenticated):
		return "You must log in first."
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient balance."
	case errors.Is(err, service.ErrValidation):
		return fmt.Sprintf("Invalid input: %v", err)
	case errors.Is(err, service.ErrAccountNumberExhausted):
		return "Could not allocate a new account number, please try again."
	case errors.Is(err, store.ErrStorageCorrupt):
		return fmt.Sprintf("Stored data is unreadable: %v", err)
	case errors.Is(err, store.ErrStorageWrite):
		return fmt.Sprintf("Could not save data: %v", err)
	case errors.Is(err, store.ErrRecordNotFound):
		return fmt.Sprintf("Account not found: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// Report prints the error and returns, leaving the caller's loop running
func Report(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return
	}
	pterm.Error.Println(Describe(err))
}
