package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRecordTotals(t *testing.T) {
	rec := NewMemoryFinancialRepo().GetAll()

	var assets float64
	for _, v := range rec.Assets {
		assets += v
	}
	var liabilities float64
	for _, v := range rec.Liabilities {
		liabilities += v
	}

	assert.Equal(t, 4955000.0, assets)
	assert.Equal(t, 3745000.0, liabilities)
}

func TestSeededRecordShape(t *testing.T) {
	rec := NewMemoryFinancialRepo().GetAll()

	assert.Len(t, rec.Assets, 4)
	assert.Len(t, rec.Liabilities, 4)
	require.Len(t, rec.Transactions, 6)
	assert.Equal(t, "income", rec.Transactions[0].Type)
	assert.Equal(t, 85000.0, rec.Transactions[0].Amount)
	assert.Equal(t, 1275000.0, rec.EPFBalance.Balance)
	assert.Equal(t, 765, rec.CreditScore.Score)
	assert.Equal(t, "Excellent", rec.CreditScore.Rating)
	assert.Len(t, rec.Investments, 4)
}

func TestGetAllIsStable(t *testing.T) {
	repo := NewMemoryFinancialRepo()
	assert.Equal(t, repo.GetAll(), repo.GetAll())
}
