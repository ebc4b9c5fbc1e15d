package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account by the kind of money it holds.
type AccountType string

const (
	AccountBank       AccountType = "bank"
	AccountCredit     AccountType = "credit"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
	AccountWallet     AccountType = "wallet"
)

// Account represents a financial account within the core domain.
// Balance is a denormalized running total of all transaction effects posted
// against the account. It is written exclusively by the ledger and goal
// services; every other package treats it as read-only.
type Account struct {
	AccountID    string          `json:"accountID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"`
	Color        string          `json:"color"`
	Icon         string          `json:"icon"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
