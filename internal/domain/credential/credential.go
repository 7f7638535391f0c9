package credential

import (
	"errors"
	"regexp"
)

var ErrInvalidAPIKey = errors.New("api key must be in canonical uuid format")

// apiKeyPattern is the canonical UUID form the supplier issues keys in.
var apiKeyPattern = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)

// Credential authenticates one call against the supplier. It is supplied by
// the host per request and never persisted.
type Credential struct {
	APIKey string
}

func New(apiKey string) Credential {
	return Credential{APIKey: apiKey}
}

func (c Credential) Validate() error {
	if !apiKeyPattern.MatchString(c.APIKey) {
		return ErrInvalidAPIKey
	}
	return nil
}

// TemplateField describes one credential field so the host can render and
// validate its credential-entry UI without this connector's code.
type TemplateField struct {
	Type        string `json:"type"`
	Pattern     string `json:"regExp"`
	Description string `json:"description"`
}

func Template() map[string]TemplateField {
	return map[string]TemplateField{
		"apiKey": {
			Type:        "text",
			Pattern:     apiKeyPattern.String(),
			Description: "the Api Key generated from your supplier account, should be in uuid format",
		},
	}
}
