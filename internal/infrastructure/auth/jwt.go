package auth

import (
	"errors"
	"strings"
	"time"

	"marketplace_escrow/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens. The subject claim is
// the user id.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer, now: time.Now}
}

func (s *TokenService) Issue(actor entities.Actor, ttl time.Duration) (string, error) {
	if strings.TrimSpace(actor.ID) == "" {
		return "", errors.New("actor id required")
	}
	now := s.now()
	claims := &Claims{
		Name:  actor.Name,
		Email: actor.Email,
		Role:  actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) Validate(tokenString string) (entities.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return entities.Actor{}, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return entities.Actor{}, ErrInvalidToken
	}
	return entities.Actor{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  strings.ToLower(claims.Role),
	}, nil
}
