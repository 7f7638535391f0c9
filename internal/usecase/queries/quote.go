package queries

import (
	"context"

	"octo-connect/internal/domain/credential"
	"octo-connect/internal/usecase/shared"
)

type QuoteQueries interface {
	Search(ctx context.Context, cred credential.Credential, productIDs, optionIDs []string) ([]shared.QuoteView, error)
}

type quoteQueriesImpl struct{}

func NewQuoteQueries() QuoteQueries {
	return &quoteQueriesImpl{}
}

// Search is an explicit not-implemented stub: the supplier integration has
// no quoting endpoint, so the result is always empty rather than a guess at
// real quoting behavior.
func (q *quoteQueriesImpl) Search(_ context.Context, _ credential.Credential, _, _ []string) ([]shared.QuoteView, error) {
	return []shared.QuoteView{}, nil
}
