// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token is an issued or verified API bearer token. UserID mirrors the
// numeric "sub" claim; none of the fields are serialized.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"` // compact JWS form sent to clients
	UserID       int64  `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
