package helper

import (
	"errors"
	"fmt"
	"makkanya_dashboard/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken signs claim with secret for ttl.
func GenerateAccessToken(tokenClaim model.TokenClaim, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("empty jwt secret")
	}
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = tokenClaim.Subject
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(ttl).Unix()

	return token.SignedString([]byte(secret))
}

func ParseToken(tokenString, secret string) (model.TokenClaim, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return model.TokenClaim{}, err
	}
	if !token.Valid {
		return model.TokenClaim{}, errors.New("invalid token")
	}

	claim := model.TokenClaim{}
	claim.Subject, _ = claims.GetSubject()
	claim.Role, _ = claims["role"].(string)
	return claim, nil
}
