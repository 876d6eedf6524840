package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret  = errors.New("jwt secret is empty")
	ErrInvalidToken = errors.New("invalid token")
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the caller resolved from a verified token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	const op = "auth.NewTokenIssuer"

	if secret == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptySecret)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%s: token ttl must be positive, got %s", op, ttl)
	}

	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token with subject userID and the email claim.
func (i *TokenIssuer) Issue(userID uuid.UUID, email string) (string, error) {
	const op = "auth.Issue"

	now := i.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// Parse verifies signature and expiry of tokenStr and resolves its identity.
// Every failure wraps ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenStr string) (Identity, error) {
	const op = "auth.Parse"

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}
	if !token.Valid {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%s: %w: bad subject: %v", op, ErrInvalidToken, err)
	}

	return Identity{UserID: userID, Email: claims.Email}, nil
}
