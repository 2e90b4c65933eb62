package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// IdentityVerifier validates caller-supplied HS256 bearer tokens.
// Tokens are issued by an external identity provider sharing the secret;
// this service never mints them.
type IdentityVerifier struct {
	secret []byte
	issuer string
}

// NewIdentityVerifier creates a verifier.
// secret must be at least 32 characters for HS256 security.
func NewIdentityVerifier(secret string, issuer string) *IdentityVerifier {
	return &IdentityVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Claims is the token payload: the account ID as subject plus its role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// ValidateAccessToken parses and validates a token.
// Returns the account ID and role if valid. An unknown role is rejected.
func (v *IdentityVerifier) ValidateAccessToken(tokenString string) (uuid.UUID, domain.UserRole, error) {
	if tokenString == "" {
		return uuid.Nil, "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("invalid token claims")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := domain.UserRole(claims.Role)
	if role == "" {
		role = domain.UserRoleMember
	}
	if !role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("invalid role %q", claims.Role)
	}

	return id, role, nil
}
