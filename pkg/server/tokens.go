/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spjmurray/go-util/pkg/set"
)

const issuer = "catroweb-auth-fake"

var ErrTokenRevoked = errors.New("token has been revoked")

// tokenIssuer issues and verifies HS256 signed bearer tokens.
type tokenIssuer struct {
	key []byte
	ttl time.Duration

	lock    sync.Mutex
	revoked set.Set[string]
}

func newTokenIssuer(key string, ttl time.Duration) *tokenIssuer {
	secret := []byte(key)

	if len(secret) == 0 {
		secret = make([]byte, 32)
		_, _ = rand.Read(secret)
	}

	return &tokenIssuer{
		key:     secret,
		ttl:     ttl,
		revoked: set.New[string](),
	}
}

// issue returns a signed token and an opaque refresh token for the user.
// The subject is the user id rather than the reusable username.
func (t *tokenIssuer) issue(userID string) (string, string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", "", fmt.Errorf("signing token: %w", err)
	}

	refresh := make([]byte, 32)
	_, _ = rand.Read(refresh)

	return token, hex.EncodeToString(refresh), nil
}

// verify checks the signature, expiry and revocation status of a token.
func (t *tokenIssuer) verify(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer)); err != nil {
		return nil, err
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.revoked.Contains(claims.ID) {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

func (t *tokenIssuer) revoke(claims *jwt.RegisteredClaims) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.revoked.Add(claims.ID)
}
