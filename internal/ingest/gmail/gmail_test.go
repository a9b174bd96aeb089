package gmail

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromFileDecodesSavedToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	payload := `{
		"access_token": "ya29.test",
		"token_type": "Bearer",
		"refresh_token": "1//refresh",
		"expiry": "2026-01-02T15:04:05Z"
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	tok, err := tokenFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ya29.test", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, "1//refresh", tok.RefreshToken)
	assert.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), tok.Expiry.UTC())
}

func TestTokenFromFileMissing(t *testing.T) {
	_, err := tokenFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestTokenFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := tokenFromFile(path)
	assert.Error(t, err)
}
