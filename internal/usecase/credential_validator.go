package usecase

import (
	"context"

	"octo-connect/internal/domain/credential"
	"octo-connect/internal/usecase/shared"
)

type CredentialValidator interface {
	Validate(ctx context.Context, cred credential.Credential) bool
}

type credentialValidatorImpl struct {
	supplier shared.SupplierGateway
}

func NewCredentialValidator(supplier shared.SupplierGateway) CredentialValidator {
	return &credentialValidatorImpl{supplier: supplier}
}

// Validate probes the catalog with the supplied key. Any failure is
// semantically equivalent to an invalid credential, never an error.
func (v *credentialValidatorImpl) Validate(ctx context.Context, cred credential.Credential) bool {
	products, err := v.supplier.Products(ctx, cred)
	return err == nil && len(products) > 0
}
