package models

// CategoryType defines whether a category classifies expenses or income.
type CategoryType string

const (
	ExpenseCategory CategoryType = "expense"
	IncomeCategory  CategoryType = "income"
)

// Category represents a transaction category row.
type Category struct {
	CategoryID string       `db:"category_id"`
	UserID     string       `db:"user_id"`
	Name       string       `db:"name"`
	Type       CategoryType `db:"category_type"`
	Color      string       `db:"color"`
	Icon       string       `db:"icon"`
	ParentID   *string      `db:"parent_id"`
	IsDefault  bool         `db:"is_default"`
	Order      int          `db:"sort_order"`
	AuditFields
}
