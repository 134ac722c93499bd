package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := Generate("secreto", "user-MASTER-1", "Master", "MASTER", "feria-pos", 5)
	require.NoError(t, err)

	claims, err := Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "user-MASTER-1", claims.UserID)
	assert.Equal(t, "Master", claims.Username)
	assert.Equal(t, "MASTER", claims.Role)
	assert.Equal(t, "feria-pos", claims.Issuer)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := Generate("secreto", "u", "n", "ADMIN", "feria-pos", 5)
	require.NoError(t, err)

	_, err = Parse("otro", tok)
	assert.Error(t, err, "firma con otro secreto")

	expired, err := Generate("secreto", "u", "n", "ADMIN", "feria-pos", -1)
	require.NoError(t, err)
	_, err = Parse("secreto", expired)
	assert.Error(t, err, "token expirado")

	_, err = Generate("", "u", "n", "ADMIN", "feria-pos", 5)
	assert.Error(t, err)
	_, err = Parse("", tok)
	assert.Error(t, err)
}
