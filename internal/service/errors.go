package service

import "errors"

var (
	ErrValidation             = errors.New("invalid input")
	ErrInvalidCredentials     = errors.New("invalid account number or password")
	ErrNotAuthenticated       = errors.New("not logged in")
	ErrInsufficientFunds      = errors.New("insufficient balance")
	ErrAccountNumberExhausted = errors.New("no free account number available")
)
