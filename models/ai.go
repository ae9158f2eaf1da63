package models

// PermissionMap flags which record categories the caller consents to share
// with the model. Keys are category names ("assets", "creditScore", ...); a
// missing key counts as denied.
type PermissionMap map[string]bool

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Query       string        `json:"query"`       // user's question, free text
	Permissions PermissionMap `json:"permissions"` // per-category consent flags
}

// ChatResponse is what the handler returns to the frontend.
type ChatResponse struct {
	Response string `json:"response"` // model reply, passed through verbatim
}

// FilteredRecord is the permission-scoped view of a FinancialRecord. Denied
// categories stay unset and drop out of the serialized prompt entirely.
type FilteredRecord struct {
	Assets       map[string]float64 `json:"assets,omitempty"`
	Liabilities  map[string]float64 `json:"liabilities,omitempty"`
	Transactions []Transaction      `json:"transactions,omitempty"`
	EPFBalance   *EPFBalance        `json:"epfBalance,omitempty"`
	CreditScore  *CreditScore       `json:"creditScore,omitempty"`
	Investments  map[string]float64 `json:"investments,omitempty"`
}

// Summary carries the aggregates derived from a filtered view, never from the
// full record.
type Summary struct {
	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"`
	NetWorth         float64 `json:"calculatedNetWorth"`
}
