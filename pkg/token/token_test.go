package token

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenIssuedAt(username string, at time.Time) string {
	payload := fmt.Sprintf("1:%s:%d", username, at.UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestIssueAndValidate(t *testing.T) {
	tok := Issue("admin")
	username, ok := Validate(tok)
	require.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestValidateExpiry(t *testing.T) {
	t0 := time.Now()
	tok := tokenIssuedAt("admin", t0)

	username, ok := validateAt(tok, t0.Add(119*time.Minute))
	assert.True(t, ok)
	assert.Equal(t, "admin", username)

	_, ok = validateAt(tok, t0.Add(121*time.Minute))
	assert.False(t, ok)
}

func TestValidateMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("no-separators")),
		base64.StdEncoding.EncodeToString([]byte("1:admin:not-a-number")),
	}
	for _, tok := range cases {
		_, ok := Validate(tok)
		assert.False(t, ok, "token %q should be invalid", tok)
	}
}

func TestValidateEmailUsername(t *testing.T) {
	tok := tokenIssuedAt("admin@example.com", time.Now())
	username, ok := Validate(tok)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", username)
}
