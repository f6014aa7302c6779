package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token is expired")
)

// Payload identifies the client holding the token.
type Payload struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrTokenExpired
	}

	return nil
}

func NewPayload(subject string, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	expiredAt := issuedAt.Add(duration)

	payload := &Payload{
		ID:        tokenID,
		Subject:   subject,
		IssuedAt:  issuedAt,
		ExpiredAt: expiredAt,
	}

	return payload, nil
}

type CustomClaims struct {
	ID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

func (p *Payload) GetJWTClaims() *CustomClaims {
	return &CustomClaims{
		p.ID,
		jwt.RegisteredClaims{
			Subject:   p.Subject,
			ExpiresAt: jwt.NewNumericDate(p.ExpiredAt),
			IssuedAt:  jwt.NewNumericDate(p.IssuedAt)},
	}
}

func (c *CustomClaims) GetPayload() *Payload {
	return &Payload{
		ID:        c.ID,
		Subject:   c.Subject,
		IssuedAt:  c.IssuedAt.Time,
		ExpiredAt: c.ExpiresAt.Time,
	}
}
