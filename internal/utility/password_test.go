package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube/internal/common"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("MatKhau123!")
	require.NoError(t, err)
	require.NotEqual(t, "MatKhau123!", hash)

	assert.NoError(t, ComparePassword(hash, "MatKhau123!"))
	assert.ErrorIs(t, ComparePassword(hash, "MatKhauSai"), common.ErrInvalidCredentials)
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := HashPassword("MatKhau123!")
	require.NoError(t, err)
	h2, err := HashPassword("MatKhau123!")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
