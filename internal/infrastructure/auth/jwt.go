// Package auth issues and verifies the operator tokens the HTTP API
// requires. Operators are provisioned elsewhere; this service only trusts
// tokens signed with the shared secret.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"titledesk/internal/shared/biztime"
)

type Claims struct {
	OperatorID   uint   `json:"operator_id"`
	OperatorName string `json:"operator_name"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret        []byte
	expiryMinutes int
}

func NewJWTService(secret string, expiryMinutes int) *JWTService {
	if expiryMinutes <= 0 {
		expiryMinutes = 8 * 60
	}
	return &JWTService{
		secret:        []byte(secret),
		expiryMinutes: expiryMinutes,
	}
}

func (s *JWTService) Generate(operatorID uint, operatorName string) (string, error) {
	now := biztime.NowUTC()

	claims := &Claims{
		OperatorID:   operatorID,
		OperatorName: operatorName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.OperatorID == 0 {
		return nil, fmt.Errorf("token carries no operator")
	}

	return claims, nil
}
