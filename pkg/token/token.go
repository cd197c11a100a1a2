// Package token implements the admin console's placeholder session token:
// base64("<uid>:<username>:<epoch-ms>"), unsigned, valid for two hours.
// This is not a security boundary and must be replaced with real session
// infrastructure before any public deployment.
package token

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const TTL = 2 * time.Hour

// Issue builds a token for the given username. The uid is fixed at 1:
// the back office has a single bootstrap account.
func Issue(username string) string {
	payload := fmt.Sprintf("1:%s:%d", username, time.Now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// Validate reports whether the token is well formed and younger than TTL,
// returning the embedded username. Malformed tokens are simply invalid.
func Validate(tok string) (string, bool) {
	return validateAt(tok, time.Now())
}

func validateAt(tok string, now time.Time) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return "", false
	}
	parts := strings.SplitN(string(raw), ":", 3)
	if len(parts) != 3 {
		return "", false
	}
	issuedMs, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", false
	}
	issued := time.UnixMilli(issuedMs)
	if now.Sub(issued) >= TTL {
		return "", false
	}
	return parts[1], true
}
