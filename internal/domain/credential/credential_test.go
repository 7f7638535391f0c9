//go:build unit

package credential_test

import (
	"testing"

	"octo-connect/internal/domain/credential"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_Validate(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		valid  bool
	}{
		{name: "canonical uuid", apiKey: "0a1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d", valid: true},
		{name: "uppercase rejected", apiKey: "0A1B2C3D-4E5F-6A7B-8C9D-0E1F2A3B4C5D", valid: false},
		{name: "missing dashes", apiKey: "0a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d", valid: false},
		{name: "too short", apiKey: "0a1b2c3d-4e5f", valid: false},
		{name: "empty", apiKey: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := credential.New(tt.apiKey).Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, credential.ErrInvalidAPIKey)
		})
	}
}

func TestTemplate(t *testing.T) {
	tpl := credential.Template()
	field, ok := tpl["apiKey"]
	require.True(t, ok)
	assert.Equal(t, "text", field.Type)
	assert.NotEmpty(t, field.Pattern)
	assert.NotEmpty(t, field.Description)
}
