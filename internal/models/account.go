package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the kind of account.
type AccountType string

const (
	Bank       AccountType = "bank"
	Credit     AccountType = "credit"
	Cash       AccountType = "cash"
	Investment AccountType = "investment"
	Wallet     AccountType = "wallet"
)

// Account represents a financial account row.
type Account struct {
	AccountID    string          `db:"account_id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	AccountType  AccountType     `db:"account_type"`
	Balance      decimal.Decimal `db:"balance"`
	CurrencyCode string          `db:"currency_code"`
	Color        string          `db:"color"`
	Icon         string          `db:"icon"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
