//go:build unit

package intenttoken_test

import (
	"testing"
	"time"

	"octo-connect/internal/pkg/clock"
	"octo-connect/internal/pkg/intenttoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims() intenttoken.Claims {
	return intenttoken.Claims{
		ProductID:      "prod-1",
		OptionID:       "opt-1",
		AvailabilityID: "2026-08-30T10:00:00+02:00",
		Units: []intenttoken.Unit{
			{ID: "adult", Quantity: 2},
			{ID: "child", Quantity: 1},
		},
		Currency: "EUR",
	}
}

func TestSigner_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	signer := intenttoken.NewSigner("secret", 6*time.Hour, clk)

	token, err := signer.Encode(testClaims())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := signer.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, "prod-1", decoded.ProductID)
	assert.Equal(t, "opt-1", decoded.OptionID)
	assert.Equal(t, "2026-08-30T10:00:00+02:00", decoded.AvailabilityID)
	assert.Equal(t, "EUR", decoded.Currency)
	require.Len(t, decoded.Units, 2)
	assert.Equal(t, intenttoken.Unit{ID: "adult", Quantity: 2}, decoded.Units[0])
	assert.Equal(t, clk.Now().Unix(), decoded.IssuedAt.Unix())
	assert.Equal(t, clk.Now().Add(6*time.Hour).Unix(), decoded.ExpiresAt.Unix())
}

func TestSigner_Expired(t *testing.T) {
	clk := clock.NewMockClock(time.Now().Add(-7 * time.Hour))
	signer := intenttoken.NewSigner("secret", 6*time.Hour, clk)

	token, err := signer.Encode(testClaims())
	require.NoError(t, err)

	_, err = signer.Decode(token)
	assert.ErrorIs(t, err, intenttoken.ErrExpiredToken)
}

func TestSigner_WrongSecret(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	signer := intenttoken.NewSigner("secret", 6*time.Hour, clk)
	other := intenttoken.NewSigner("different", 6*time.Hour, clk)

	token, err := signer.Encode(testClaims())
	require.NoError(t, err)

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, intenttoken.ErrInvalidToken)
}

func TestSigner_Garbage(t *testing.T) {
	signer := intenttoken.NewSigner("secret", 6*time.Hour, clock.NewMockClock(time.Now()))

	_, err := signer.Decode("not-a-token")
	assert.ErrorIs(t, err, intenttoken.ErrInvalidToken)
}
