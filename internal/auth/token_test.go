package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	tok, err := IssueToken("s3cret", "nkcli", time.Minute)
	require.NoError(t, err)

	sub, err := ParseToken("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, "nkcli", sub)
}

func TestParseToken_Rejects(t *testing.T) {
	tok, err := IssueToken("secret-A", "nkcli", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret-B", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("secret-A", "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := IssueToken("secret-A", "nkcli", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken("secret-A", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueToken_EmptySecret(t *testing.T) {
	_, err := IssueToken("", "nkcli", time.Minute)
	assert.Error(t, err)
}
