package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	s := New("super-secret")
	usuarioID := "42"
	rol := "ADMINISTRADOR"

	tok, err := s.GenerateJWT(usuarioID, rol, time.Hour)
	require.NoError(t, err, "GenerateJWT should not error")
	require.NotEmpty(t, tok, "token must not be empty")

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err, "ValidateToken should not error for fresh token")
	require.NotNil(t, claims)

	assert.Equal(t, usuarioID, claims.UsuarioID)
	assert.Equal(t, rol, claims.Rol)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now().Add(-1*time.Second)))
}

func TestValidateToken_Table(t *testing.T) {
	makeToken := func(secret string, exp time.Duration) string {
		s := New(secret)
		tok, err := s.GenerateJWT("7", "CLIENTE", exp)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		secret string
		token  string
		ok     bool
	}{
		{
			name:   "valid token",
			secret: "k1",
			token:  makeToken("k1", 5*time.Minute),
			ok:     true,
		},
		{
			name:   "invalid secret (signature mismatch)",
			secret: "k2",
			token:  makeToken("k1", 5*time.Minute),
		},
		{
			name:   "expired token",
			secret: "k1",
			token:  makeToken("k1", -1*time.Minute),
		},
		{
			name:   "malformed token string",
			secret: "k1",
			token:  "not-a-jwt",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.secret)

			claims, err := s.ValidateToken(tt.token)
			if tt.ok {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "7", claims.UsuarioID)
				assert.Equal(t, "CLIENTE", claims.Rol)
			} else {
				require.Error(t, err)
				assert.EqualError(t, err, "invalid token")
				assert.Nil(t, claims)
			}
		})
	}
}
