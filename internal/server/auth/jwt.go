// Package auth signs and verifies the session cookie token. The token only
// binds a browser to its workspace; it carries no identity.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the standard registered claims plus the workspace ID.
type Claims struct {
	jwt.RegisteredClaims
	WorkspaceID string
}

func GenerateToken(workspaceID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		WorkspaceID: workspaceID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetWorkspaceIDFromToken verifies tokenString and returns the workspace ID
// it carries. Expired tokens yield common.ErrTokenExpired; anything else that
// fails verification wraps common.ErrInvalidToken.
func GetWorkspaceIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.WorkspaceID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.WorkspaceID, nil
}
