package handlers

import (
	"net/http"

	"finsight/database/repository"

	"github.com/gin-gonic/gin"
)

// FinancialDataHandler serves the fixed financial dataset.
type FinancialDataHandler struct {
	Repo repository.FinancialRepository
}

// NewFinancialDataHandler returns a FinancialDataHandler reading from repo.
func NewFinancialDataHandler(repo repository.FinancialRepository) *FinancialDataHandler {
	return &FinancialDataHandler{Repo: repo}
}

// GetFinancialData handles GET /api/financial-data.
func (h *FinancialDataHandler) GetFinancialData(c *gin.Context) {
	c.JSON(http.StatusOK, h.Repo.GetAll())
}
