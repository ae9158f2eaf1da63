package models

// FinancialRecord is the full snapshot served by /api/financial-data and the
// source of truth for chat answers.
type FinancialRecord struct {
	Assets       map[string]float64 `json:"assets"`      // e.g. "cash", "property"
	Liabilities  map[string]float64 `json:"liabilities"` // e.g. "homeLoan"
	Transactions []Transaction      `json:"transactions"`
	EPFBalance   EPFBalance         `json:"epfBalance"`
	CreditScore  CreditScore        `json:"creditScore"`
	Investments  map[string]float64 `json:"investments"` // e.g. "mutualFunds"
}

// Transaction is a single ledger entry. Amount keeps its sign: income entries
// are positive, expenses negative.
type Transaction struct {
	ID       int     `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Amount   float64 `json:"amount"`
	Category string  `json:"category"` // e.g. "Salary", "Loan EMI"
	Type     string  `json:"type"`     // "income" or "expense"
}

// EPFBalance holds the provident fund position and the latest monthly
// contributions.
type EPFBalance struct {
	Balance              float64 `json:"balance"`
	EmployeeContribution float64 `json:"employeeContribution"`
	EmployerContribution float64 `json:"employerContribution"`
}

type CreditScore struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"` // e.g. "Excellent"
}
