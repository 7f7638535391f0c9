package request

import (
	"octo-connect/internal/usecase/queries"
)

// SearchProductsRequest carries an open filter payload: "productId" selects
// a single product, any other field becomes a predicate filter applied after
// translation.
type SearchProductsRequest struct {
	Credential Credential     `json:"credential" binding:"required"`
	Payload    map[string]any `json:"payload"`
}

func (r SearchProductsRequest) Filter() queries.ProductFilter {
	if r.Payload == nil {
		return queries.ProductFilter{}
	}
	return queries.ProductFilter(r.Payload)
}

type SearchQuoteRequest struct {
	Credential Credential   `json:"credential" binding:"required"`
	Payload    QuotePayload `json:"payload"`
}

type QuotePayload struct {
	ProductIDs []string `json:"productIds"`
	OptionIDs  []string `json:"optionIds"`
}
