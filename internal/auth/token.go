// Package auth inspects admin JWTs on the client side. The backend is the
// only party that verifies signatures; the client decodes claims purely to
// tell the administrator their session expired before wasting a request.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired means the stored admin token is past its expiry claim.
var ErrExpired = errors.New("admin token expired")

// Claims is the subset of the admin JWT the client cares about.
type Claims struct {
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Inspect decodes a JWT without verifying its signature and returns the
// claims. It fails on malformed tokens and on tokens past their expiry.
func Inspect(token string) (Claims, error) {
	return inspectAt(token, time.Now())
}

func inspectAt(token string, now time.Time) (Claims, error) {
	parser := jwt.NewParser()
	var claims jwt.MapClaims
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	out := Claims{}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	} else if v, ok := claims["sub"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
		if now.After(exp.Time) {
			return out, ErrExpired
		}
	}
	return out, nil
}
