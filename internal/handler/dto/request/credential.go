package request

import (
	"octo-connect/internal/domain/credential"
)

// Credential is the supplier API key the host sends with every call. It is
// forwarded to the supplier and never stored.
type Credential struct {
	APIKey string `json:"apiKey" binding:"required"`
}

func (c Credential) ToDomain() credential.Credential {
	return credential.New(c.APIKey)
}

type ValidateCredentialRequest struct {
	Credential Credential `json:"credential" binding:"required"`
}
