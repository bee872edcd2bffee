package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/obolotin/ledgerboard/internal/common"
)

// Claims carries the authenticated identity inside the session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Email  string
}

// GenerateSessionToken signs an HS256 token for the verified user. How the
// token travels (cookie, header) is the caller's concern.
func GenerateSessionToken(userID, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseSessionToken validates a session token and returns its claims.
// Any invalid, forged, or expired token yields common.ErrInvalidToken.
func ParseSessionToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
