package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"finsight/models"
)

// assistantPreamble is the fixed instruction block sent ahead of the data.
// The %s slot carries the reference date.
const assistantPreamble = `You are a personal finance assistant. Answer the user's question using ONLY the financial data provided below. All amounts are in Indian Rupees (₹). Today's date is %s.

Rules:
- Ground every statement strictly in the provided data. If the data needed to answer is not present, say that the user has not shared that information.
- The summary block already contains totalAssets, totalLiabilities and calculatedNetWorth computed from the shared data. Reuse these figures exactly as given. Do not recompute or contradict them.
- Keep the answer concise and conversational.`

// promptData is the serialized payload: the permission-scoped view with the
// precomputed summary attached.
type promptData struct {
	models.FilteredRecord
	Summary models.Summary `json:"summary"`
}

// renderPrompt assembles the full provider prompt from the filtered view, its
// summary, the user's question and the reference date. Output is deterministic
// for identical inputs.
func renderPrompt(view models.FilteredRecord, summary models.Summary, query, refDate string) (string, error) {
	payload, err := json.MarshalIndent(promptData{FilteredRecord: view, Summary: summary}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal prompt payload: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, assistantPreamble, refDate)
	sb.WriteString("\n\nFinancial data:\n")
	sb.Write(payload)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(query)
	return sb.String(), nil
}
