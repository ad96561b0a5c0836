package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrTokenMismatch = errors.New("token does not grant this field")

// FieldClaims grant the bearer the right to click on one field.
type FieldClaims struct {
	FieldID string `json:"field_id"`
	jwt.RegisteredClaims
}

type JWT struct {
	secret        []byte
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
	now           func() time.Time
}

func NewJWT(secret string, lifetime time.Duration) *JWT {
	return &JWT{
		secret:        []byte(secret),
		signingMethod: jwt.SigningMethodHS256,
		tokenLifetime: lifetime,
		now:           time.Now,
	}
}

func (j *JWT) Sign(fieldID uuid.UUID) (string, error) {
	now := j.now()
	claims := FieldClaims{
		FieldID: fieldID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenLifetime)),
		},
	}
	return jwt.NewWithClaims(j.signingMethod, claims).SignedString(j.secret)
}

func (j *JWT) ParseWithClaims(tokenString string, claims jwt.Claims) (*jwt.Token, error) {
	return jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return j.secret, nil
		},
		jwt.WithValidMethods([]string{j.signingMethod.Alg()}),
		jwt.WithTimeFunc(j.now),
	)
}

// Verify checks that tokenString is valid and was issued for fieldID.
func (j *JWT) Verify(tokenString string, fieldID uuid.UUID) error {
	var claims FieldClaims
	if _, err := j.ParseWithClaims(tokenString, &claims); err != nil {
		return err
	}
	if claims.FieldID != fieldID.String() {
		return fmt.Errorf("%w: %s", ErrTokenMismatch, fieldID)
	}
	return nil
}
