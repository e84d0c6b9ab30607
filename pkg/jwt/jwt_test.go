package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/farmacia-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse_ConFranquicia(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 11, 3, "staff", "farmacia-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(11), claims.UserID)
	assert.Equal(t, int64(3), claims.FranchiseID)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "11", claims.Subject)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, 0, "admin", "farmacia-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, 0, "admin", "farmacia-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, 0, "admin", "farmacia-test", 60)
	assert.Error(t, err)
}
