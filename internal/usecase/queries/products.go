package queries

import (
	"context"
	"encoding/json"

	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra"
	"octo-connect/internal/infra/octo"
	"octo-connect/internal/pkg/errs"
	"octo-connect/internal/pkg/wildcard"
	"octo-connect/internal/usecase/shared"
)

// ProductFilter carries the host's catalog filter fields. "productId"
// selects a single product; every other string-valued field is matched as a
// wildcard pattern against the translated product. Non-string values never
// exclude a product; they are preserved as-is rather than silently fixed.
type ProductFilter map[string]any

type ProductQueries interface {
	Search(ctx context.Context, cred credential.Credential, filter ProductFilter) ([]shared.ProductView, error)
	GetForBooking(ctx context.Context, cred credential.Credential, productID string) (shared.ProductView, error)
}

type productQueriesImpl struct {
	supplier   shared.SupplierGateway
	translator shared.Translator
}

func NewProductQueries(supplier shared.SupplierGateway, translator shared.Translator) ProductQueries {
	return &productQueriesImpl{
		supplier:   supplier,
		translator: translator,
	}
}

func (p *productQueriesImpl) Search(ctx context.Context, cred credential.Credential, filter ProductFilter) ([]shared.ProductView, error) {
	raw, err := p.fetch(ctx, cred, filter)
	if err != nil {
		return nil, err
	}

	products := make([]shared.ProductView, 0, len(raw))
	for _, rp := range raw {
		view, translateErr := p.translator.Product(rp)
		if translateErr != nil {
			return nil, translateErr
		}
		products = append(products, view)
	}

	extra := extraFilters(filter)
	if len(extra) == 0 {
		return products, nil
	}

	filtered := make([]shared.ProductView, 0, len(products))
	for _, product := range products {
		if matchesFilters(product, extra) {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

func (p *productQueriesImpl) GetForBooking(ctx context.Context, cred credential.Credential, productID string) (shared.ProductView, error) {
	raw, err := p.supplier.Product(ctx, cred, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.ProductView{}, errs.Mark(err, errs.ErrProductNotFound)
		}
		return shared.ProductView{}, errs.Wrap(err, "failed to fetch product")
	}
	return p.translator.Product(raw)
}

func (p *productQueriesImpl) fetch(ctx context.Context, cred credential.Credential, filter ProductFilter) ([]octo.Product, error) {
	if id, ok := filter["productId"].(string); ok && id != "" {
		product, err := p.supplier.Product(ctx, cred, id)
		if err != nil {
			return nil, err
		}
		return []octo.Product{product}, nil
	}
	return p.supplier.Products(ctx, cred)
}

func extraFilters(filter ProductFilter) ProductFilter {
	extra := ProductFilter{}
	for k, v := range filter {
		if k == "productId" {
			continue
		}
		extra[k] = v
	}
	return extra
}

func matchesFilters(product shared.ProductView, filters ProductFilter) bool {
	fields := productFields(product)
	for key, value := range filters {
		pattern, isString := value.(string)
		if !isString {
			continue
		}
		if !wildcard.Match(pattern, fields[key]) {
			return false
		}
	}
	return true
}

// productFields flattens the translated product into its top-level string
// fields so filters address the same names the host sees.
func productFields(product shared.ProductView) map[string]string {
	data, err := json.Marshal(product)
	if err != nil {
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}
	return fields
}
