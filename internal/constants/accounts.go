package constants

const (
	MaxNameLen = 100

	// AccountNumberMin and AccountNumberMax bound the 6 digit account numbers
	AccountNumberMin    = 100000
	AccountNumberMax    = 999999
	AccountNumberDigits = 6

	// MaxAccountNumberAttempts caps the collision retry loop when opening an account
	MaxAccountNumberAttempts = 64

	// AmountScale is the number of fractional digits accepted for money input
	AmountScale = 2
)

const (
	DefaultAccountsFile     = "accounts.json"
	DefaultTransactionsFile = "transactions.csv"
	DefaultDBFile           = "keabank.db"

	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
