package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by an access token.
type Claims struct {
	AccountID int64  `json:"aid"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a new access token for the account.
	Issue(accountID int64, username string) (string, *Claims, error)

	// Verify checks the signature first and the expiry second.
	Verify(tokenString string) (*Claims, error)
}
