package model

// Setting keys recognised by the borrowing rules. Values are stored as
// strings and parsed on every read, so rule changes apply immediately.
const (
	SettingMaxLoans      = "MAX_LOANS"       // active loans per borrower
	SettingLoanDays      = "LOAN_DAYS"       // days added by a renewal
	SettingPenaltyPerDay = "PENALTY_PER_DAY" // currency per overdue day
)

// Defaults used when a key is absent or unparseable.
const (
	DefaultMaxLoans      = 5
	DefaultLoanDays      = 14
	DefaultPenaltyPerDay = 1.0
)
