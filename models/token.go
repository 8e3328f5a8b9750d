package models

import "github.com/golang-jwt/jwt/v5"

// Token is a bearer token issued by the admin/auth service.
type Token struct {
	jwt.RegisteredClaims

	// Token is the parsed JWT.
	Token *jwt.Token `json:"-"`
	// SignedString is the compact serialized form, set when the token is generated.
	SignedString string `json:"-"`
	// UserID is the subject of the token.
	UserID string `json:"-"`
}
