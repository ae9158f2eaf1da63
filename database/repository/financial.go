package repository

import (
	"finsight/models"
)

// FinancialRepository exposes the read-only financial snapshot.
type FinancialRepository interface {
	GetAll() models.FinancialRecord
}

type memoryFinancialRepo struct {
	record models.FinancialRecord
}

// NewMemoryFinancialRepo returns a FinancialRepository backed by the fixed
// in-memory dataset. The record is seeded once and never mutated afterwards,
// so it is safe for any number of concurrent readers.
func NewMemoryFinancialRepo() FinancialRepository {
	return &memoryFinancialRepo{record: seedRecord()}
}

func (r *memoryFinancialRepo) GetAll() models.FinancialRecord {
	return r.record
}

func seedRecord() models.FinancialRecord {
	return models.FinancialRecord{
		Assets: map[string]float64{
			"cash":        25000,
			"bankBalance": 350000,
			"property":    4500000,
			"otherAssets": 80000,
		},
		Liabilities: map[string]float64{
			"homeLoan":       3200000,
			"carLoan":        450000,
			"creditCardDebt": 75000,
			"otherDebts":     20000,
		},
		Transactions: []models.Transaction{
			{ID: 1, Date: "2025-07-01", Amount: 85000, Category: "Salary", Type: "income"},
			{ID: 2, Date: "2025-07-03", Amount: -32000, Category: "Loan EMI", Type: "expense"},
			{ID: 3, Date: "2025-07-08", Amount: -12500, Category: "Groceries", Type: "expense"},
			{ID: 4, Date: "2025-07-15", Amount: 15000, Category: "Dividend", Type: "income"},
			{ID: 5, Date: "2025-07-20", Amount: -4500, Category: "Utilities", Type: "expense"},
			{ID: 6, Date: "2025-07-26", Amount: -9800, Category: "Dining", Type: "expense"},
		},
		EPFBalance: models.EPFBalance{
			Balance:              1275000,
			EmployeeContribution: 7200,
			EmployerContribution: 7200,
		},
		CreditScore: models.CreditScore{
			Score:  765,
			Rating: "Excellent",
		},
		Investments: map[string]float64{
			"mutualFunds":   650000,
			"stocks":        320000,
			"fixedDeposits": 500000,
			"ppf":           280000,
		},
	}
}
