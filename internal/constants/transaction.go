package constants

// Date Layout
const DateTimeFormat = "2006-01-02 15:04:05"

// TransactionLogHeader is written once when the transaction log is created
var TransactionLogHeader = []string{"Account Number", "Transaction Type", "Amount", "Date"}
