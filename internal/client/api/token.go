package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// TokenClaims is the decoded token payload. Decoding happens without
// signature verification: the client only needs the embedded identity and
// expiry to decide whether a stored token is worth presenting; the server
// remains the authority on validity.
type TokenClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Exp    int64  `json:"exp"`
}

var errMalformedToken = errors.New("malformed token")

// DecodeClaims extracts the payload of a three-segment token.
func DecodeClaims(token string) (*TokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errMalformedToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errMalformedToken
	}

	claims := &TokenClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, errMalformedToken
	}

	return claims, nil
}

// TokenValid reports whether token decodes and has not expired yet.
func TokenValid(token string) bool {
	claims, err := DecodeClaims(token)
	if err != nil {
		return false
	}
	return time.Now().Unix() < claims.Exp
}
