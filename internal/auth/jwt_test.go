package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "revelve-identity")
	tok, err := tm.Generate("user-42", time.Minute)
	require.NoError(t, err)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", "revelve-identity")
	tok, err := tm.Generate("user-42", time.Minute)
	require.NoError(t, err)

	other := NewTokenManager("different", "revelve-identity")
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	minted := NewTokenManager("secret", "somebody-else")
	tok, err := minted.Generate("user-42", time.Minute)
	require.NoError(t, err)

	tm := NewTokenManager("secret", "revelve-identity")
	_, err = tm.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", "revelve-identity")
	tok, err := tm.Generate("user-42", -time.Minute)
	require.NoError(t, err)

	_, err = tm.Parse(tok)
	assert.Error(t, err)
}
