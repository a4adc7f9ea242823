package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"

	appErrors "github.com/baccarifarah/spendLog/internal/errors"
)

// Claims is the slice of the identity provider's access token the API
// cares about. Subject is the opaque user id every row is scoped by.
type Claims struct {
	Subject string
	Email   string
}

type Service struct {
	secret   []byte
	audience string
}

func NewService(jwtSecret, audience string) *Service {
	return &Service{secret: []byte(jwtSecret), audience: audience}
}

// VerifyToken validates a bearer token issued by the identity provider
// and extracts the claims. Tokens are HS256; anything else is rejected
// before signature verification.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, appErrors.NewAuthError("TOKEN_MISSING", "Authorization token not provided")
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(s.audience))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil || !token.Valid {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Invalid or expired token").WithError(err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token has no subject")
	}

	email, _ := claims["email"].(string)

	return &Claims{Subject: subject, Email: email}, nil
}
