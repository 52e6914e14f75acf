// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (key derivation, cookie
// signing) from the domain logic. It is injected into the session manager
// through the [session.TokenCodec] interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, expired or foreign session tokens.
var ErrInvalidToken = errors.New("sec: invalid session token")

// sessionKeyInfo binds the derived key to the cookie use case.
const sessionKeyInfo = "locallibrary/session-cookie/v1"

// SessionClaims is the payload of the session cookie.
//
// The session ID travels as the standard 'jti' claim; nothing else about the
// visitor is stored client-side.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionSigner handles generation and verification of session tokens using HS256.
type SessionSigner struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

// NewSessionSigner derives the signing key from the configured secret.
func NewSessionSigner(secret, issuer string, ttl time.Duration) (*SessionSigner, error) {
	key, err := DeriveKey(secret, sessionKeyInfo, 32)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to derive session key: %w", err)
	}

	return &SessionSigner{key: key, issuer: issuer, ttl: ttl}, nil
}

// Sign creates a signed token naming the given session.
func (signer *SessionSigner) Sign(sessionID string) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    signer.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(signer.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(signer.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// Verify validates the token signature, issuer and expiry and returns the session ID.
func (signer *SessionSigner) Verify(tokenString string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return signer.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(signer.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.ID == "" {
		return "", ErrInvalidToken
	}

	return claims.ID, nil
}
