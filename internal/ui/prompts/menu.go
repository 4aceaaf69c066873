package prompts

const (
	MenuCreateAccount    = "Create Account"
	MenuLogin            = "Login"
	MenuExit             = "Exit"
	MenuDeposit          = "Deposit Money"
	MenuWithdraw         = "Withdraw Money"
	MenuViewBalance      = "View Balance"
	MenuViewTransactions = "View Transactions"
	MenuLogout           = "Logout"
)

// PromptMainMenu shows the menu for a visitor who is not logged in
func PromptMainMenu() (string, error) {
	options := []string{MenuCreateAccount, MenuLogin, MenuExit}
	return PromptSelect("Enter your selection:", options, MenuLogin)
}

// PromptAccountMenu shows the menu for a logged in account
func PromptAccountMenu(accountNumber string) (string, error) {
	options := []string{
		MenuDeposit,
		MenuWithdraw,
		MenuViewBalance,
		MenuViewTransactions,
		MenuLogout,
	}
	return PromptSelect("Account "+accountNumber+" - enter your selection:", options, MenuViewBalance)
}
