package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	t.Run("plain host is kept", func(t *testing.T) {
		creds := NewCredentials("ct", "cs", "at", "akab-host.luna.akamaiapis.net")
		assert.Equal(t, "akab-host.luna.akamaiapis.net", creds.Host)
	})

	t.Run("scheme prefix is stripped", func(t *testing.T) {
		creds := NewCredentials("ct", "cs", "at", "https://akab-host.luna.akamaiapis.net")
		assert.Equal(t, "akab-host.luna.akamaiapis.net", creds.Host)
	})

	t.Run("trailing slash is stripped", func(t *testing.T) {
		creds := NewCredentials("ct", "cs", "at", "https://akab-host.luna.akamaiapis.net/")
		assert.Equal(t, "akab-host.luna.akamaiapis.net", creds.Host)
	})
}

func TestCredentialsValidate(t *testing.T) {
	valid := func() *Credentials {
		return NewCredentials("ct", "cs", "at", "h.example.com")
	}

	t.Run("valid credentials", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	tests := []struct {
		field string
		zero  func(*Credentials)
	}{
		{"client_token", func(c *Credentials) { c.ClientToken = "" }},
		{"client_secret", func(c *Credentials) { c.ClientSecret = "" }},
		{"access_token", func(c *Credentials) { c.AccessToken = "" }},
		{"host", func(c *Credentials) { c.Host = "" }},
	}

	for _, tc := range tests {
		t.Run("missing "+tc.field, func(t *testing.T) {
			creds := valid()
			tc.zero(creds)

			err := creds.Validate()
			require.ErrorIs(t, err, ErrMissingCredential)
			assert.Contains(t, err.Error(), tc.field)
		})
	}

	t.Run("whitespace-only field is missing", func(t *testing.T) {
		creds := valid()
		creds.AccessToken = "   "

		err := creds.Validate()
		require.ErrorIs(t, err, ErrMissingCredential)
		assert.Contains(t, err.Error(), "access_token")
	})

	t.Run("non-UTF-8 secret", func(t *testing.T) {
		creds := valid()
		creds.ClientSecret = string([]byte{0xff, 0xfe, 0xfd})

		err := creds.Validate()
		require.ErrorIs(t, err, ErrInvalidEncoding)
		assert.Contains(t, err.Error(), "client_secret")
	})
}

func TestCredentialsMaxBody(t *testing.T) {
	t.Run("zero means default", func(t *testing.T) {
		creds := &Credentials{}
		assert.Equal(t, DefaultMaxBody, creds.maxBody())
	})

	t.Run("negative means default", func(t *testing.T) {
		creds := &Credentials{MaxBody: -1}
		assert.Equal(t, DefaultMaxBody, creds.maxBody())
	})

	t.Run("explicit value wins", func(t *testing.T) {
		creds := &Credentials{MaxBody: 2048}
		assert.Equal(t, 2048, creds.maxBody())
	})
}
