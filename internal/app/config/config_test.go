package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServiceAccount_InlineWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sa.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"client_email":"file@example.iam.gserviceaccount.com","private_key":"FILE"}`), 0o600))

	account := loadServiceAccount("inline@example.iam.gserviceaccount.com", "", path)

	assert.Equal(t, "inline@example.iam.gserviceaccount.com", account.ClientEmail)
	assert.Equal(t, "FILE", account.PrivateKey)
	assert.True(t, account.HasCredentials())
}

func TestLoadServiceAccount_UnescapesNewlines(t *testing.T) {
	account := loadServiceAccount("a@b", `-----BEGIN KEY-----\nabc\n-----END KEY-----`, "")
	assert.Equal(t, "-----BEGIN KEY-----\nabc\n-----END KEY-----", account.PrivateKey)
}

func TestLoadServiceAccount_MissingFile(t *testing.T) {
	account := loadServiceAccount("", "", filepath.Join(t.TempDir(), "missing.json"))
	assert.False(t, account.HasCredentials())
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, splitCSV(" https://a.example, ,https://b.example "))
	assert.Nil(t, splitCSV(""))
}
