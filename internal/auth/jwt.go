package auth

import (
	"time"

	"pos-terminal/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCustomClaims struct {
	OperatorID uint                `json:"operator_id"`
	Email      string              `json:"email"`
	Role       models.OperatorRole `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, op *models.Operator) (string, error) {
	claims := &JWTCustomClaims{
		OperatorID: op.ID,
		Email:      op.Email,
		Role:       op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // 1 gün
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
