package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hance08/keabank/internal/constants"
)

// ValidateOwnerName validates the account holder's name
func ValidateOwnerName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("name can't be empty")
	}

	if utf8.RuneCountInString(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateAccountNumber checks the 6 ASCII digit account number format
func ValidateAccountNumber(number string) error {
	if len(number) != constants.AccountNumberDigits {
		return fmt.Errorf("account number must be %d digits", constants.AccountNumberDigits)
	}

	for _, c := range number {
		if c < '0' || c > '9' {
			return fmt.Errorf("account number must contain only digits")
		}
	}
	return nil
}

// ValidatePassword only rejects empty input; strength rules are not enforced
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password can't be empty")
	}
	return nil
}
