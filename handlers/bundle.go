// File: finsight/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Financial data endpoints
	GetFinancialDataHandler gin.HandlerFunc

	// AI endpoints
	ChatHandler gin.HandlerFunc
}
