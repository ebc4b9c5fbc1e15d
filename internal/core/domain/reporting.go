package domain

import "github.com/shopspring/decimal"

// AccountStats aggregates balances across a user's accounts.
type AccountStats struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	AccountCount     int             `json:"accountCount"`
}

// TransactionStats aggregates a user's transactions over the current calendar
// month.
type TransactionStats struct {
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses  decimal.Decimal `json:"monthlyExpenses"`
	Savings          decimal.Decimal `json:"savings"`
	TransactionCount int             `json:"transactionCount"`
}
