// Package intenttoken encodes a selected availability slot into a signed,
// expiring token. The host carries the token between the availability call
// and the booking call, so no pending selection is ever stored server-side.
package intenttoken

import (
	"errors"
	"time"

	"octo-connect/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Unit mirrors the supplier's unit selection shape so the decoded claims can
// be replayed to the create-booking call verbatim.
type Unit struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type Claims struct {
	ProductID      string `json:"productId"`
	OptionID       string `json:"optionId"`
	AvailabilityID string `json:"availabilityId"`
	Units          []Unit `json:"units"`
	Currency       string `json:"currency,omitempty"`
	jwt.RegisteredClaims
}

type Signer struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewSigner(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Signer {
	return &Signer{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}
}

func (s *Signer) Encode(claims Claims) (string, error) {
	now := s.clock.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Signer) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
