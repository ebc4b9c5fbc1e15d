package domain

// CategoryType splits categories between the expense and income sides.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// Category is reference data used for transaction classification and budget
// matching. The ledger engine never mutates categories.
type Category struct {
	CategoryID string       `json:"categoryID"`
	UserID     string       `json:"userID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color"`
	Icon       string       `json:"icon"`
	ParentID   *string      `json:"parentID,omitempty"`
	IsDefault  bool         `json:"isDefault"`
	Order      int          `json:"order"`
	AuditFields
}

// DefaultCategory describes one of the categories seeded for every new user.
type DefaultCategory struct {
	Name  string
	Type  CategoryType
	Color string
	Icon  string
}

// DefaultExpenseCategories are seeded in order for each new user.
var DefaultExpenseCategories = []DefaultCategory{
	{Name: "Food & Dining", Type: CategoryExpense, Color: "#ef4444", Icon: "utensils"},
	{Name: "Transportation", Type: CategoryExpense, Color: "#3b82f6", Icon: "car"},
	{Name: "Shopping", Type: CategoryExpense, Color: "#8b5cf6", Icon: "shopping-bag"},
	{Name: "Entertainment", Type: CategoryExpense, Color: "#ec4899", Icon: "film"},
	{Name: "Bills & Utilities", Type: CategoryExpense, Color: "#f59e0b", Icon: "zap"},
	{Name: "Healthcare", Type: CategoryExpense, Color: "#10b981", Icon: "heart-pulse"},
	{Name: "Housing", Type: CategoryExpense, Color: "#06b6d4", Icon: "home"},
	{Name: "Travel", Type: CategoryExpense, Color: "#0ea5e9", Icon: "plane"},
	{Name: "Education", Type: CategoryExpense, Color: "#6366f1", Icon: "graduation-cap"},
	{Name: "Personal Care", Type: CategoryExpense, Color: "#d946ef", Icon: "sparkles"},
	{Name: "Other Expenses", Type: CategoryExpense, Color: "#64748b", Icon: "more-horizontal"},
}

// DefaultIncomeCategories are seeded in order for each new user, after the
// expense defaults.
var DefaultIncomeCategories = []DefaultCategory{
	{Name: "Salary", Type: CategoryIncome, Color: "#10b981", Icon: "briefcase"},
	{Name: "Freelance", Type: CategoryIncome, Color: "#06b6d4", Icon: "laptop"},
	{Name: "Investments", Type: CategoryIncome, Color: "#8b5cf6", Icon: "trending-up"},
	{Name: "Gifts", Type: CategoryIncome, Color: "#ec4899", Icon: "gift"},
	{Name: "Rental Income", Type: CategoryIncome, Color: "#f59e0b", Icon: "building"},
	{Name: "Other Income", Type: CategoryIncome, Color: "#64748b", Icon: "plus-circle"},
}
