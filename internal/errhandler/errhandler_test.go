package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/keabank/internal/service"
	"github.com/hance08/keabank/internal/store"
)

func TestDescribeGivesEachKindItsOwnMessage(t *testing.T) {
	kinds := []error{
		service.ErrValidation,
		service.ErrInvalidCredentials,
		service.ErrNotAuthenticated,
		service.ErrInsufficientFunds,
		service.ErrAccountNumberExhausted,
		store.ErrStorageCorrupt,
		store.ErrStorageWrite,
		store.ErrRecordNotFound,
		errors.New("something else"),
	}

	seen := make(map[string]error)
	for _, kind := range kinds {
		msg := Describe(fmt.Errorf("wrapped: %w", kind))
		if prev, ok := seen[msg]; ok {
			t.Fatalf("%v and %v share message %q", prev, kind, msg)
		}
		seen[msg] = kind
	}
}

func TestIsInterrupt(t *testing.T) {
	if !IsInterrupt(terminal.InterruptErr) || !IsInterrupt(fmt.Errorf("x: %w", huh.ErrUserAborted)) {
		t.Fatal("interrupts not recognised")
	}
	if IsInterrupt(service.ErrInsufficientFunds) {
		t.Fatal("ordinary error treated as interrupt")
	}
}
