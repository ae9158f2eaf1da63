// File: finsight/services/intelligence/interface.go
package ai

import (
	"context"
	"strings"
	"time"

	"finsight/database/repository"
	"finsight/models"
)

// TextGenerator is the capability the assistant needs from a generation
// provider: one prompt in, one completion out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AssistantService answers free-text questions about the stored financial
// record, scoped to the categories the caller consented to share.
type AssistantService interface {
	Answer(ctx context.Context, query string, perms models.PermissionMap) (string, error)
}

// DefaultAssistantService implements AssistantService on top of the financial
// repository and a TextGenerator.
type DefaultAssistantService struct {
	Repo      repository.FinancialRepository
	Generator TextGenerator
}

// Answer validates the request, filters the record by the caller's
// permissions, derives the summary from that filtered view, renders the
// prompt and forwards it to the generator in a single call. The provider
// reply comes back verbatim.
func (s *DefaultAssistantService) Answer(ctx context.Context, query string, perms models.PermissionMap) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", NewInvalidRequestError("query must not be empty")
	}
	if perms == nil {
		return "", NewInvalidRequestError("permissions must be provided")
	}

	view := FilterRecord(s.Repo.GetAll(), perms)
	summary := Summarize(view)
	refDate := time.Now().Format("2 January 2006")
	prompt, err := renderPrompt(view, summary, query, refDate)
	if err != nil {
		return "", err
	}

	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	return text, nil
}
