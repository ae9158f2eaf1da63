package ai

import "finsight/models"

// FilterRecord builds the permission-scoped view of a record. Each known
// category is copied in full when its flag is true and left unset otherwise.
// Keys outside the known category set are ignored.
func FilterRecord(rec models.FinancialRecord, perms models.PermissionMap) models.FilteredRecord {
	var view models.FilteredRecord
	if perms["assets"] {
		view.Assets = rec.Assets
	}
	if perms["liabilities"] {
		view.Liabilities = rec.Liabilities
	}
	if perms["transactions"] {
		view.Transactions = rec.Transactions
	}
	if perms["epfBalance"] {
		epf := rec.EPFBalance
		view.EPFBalance = &epf
	}
	if perms["creditScore"] {
		cs := rec.CreditScore
		view.CreditScore = &cs
	}
	if perms["investments"] {
		view.Investments = rec.Investments
	}
	return view
}

// Summarize derives the aggregate figures from a filtered view. A category the
// caller denied contributes zero.
func Summarize(view models.FilteredRecord) models.Summary {
	var s models.Summary
	for _, v := range view.Assets {
		s.TotalAssets += v
	}
	for _, v := range view.Liabilities {
		s.TotalLiabilities += v
	}
	s.NetWorth = s.TotalAssets - s.TotalLiabilities
	return s
}
