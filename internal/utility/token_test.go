package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube/internal/common"
)

const testSecret = "test-secret-khong-dung-production"

func TestCreateAndParseToken(t *testing.T) {
	token, err := CreateToken("64f1a2b3c4d5e6f7a8b9c0d1", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", userID)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := CreateToken("64f1a2b3c4d5e6f7a8b9c0d1", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("64f1a2b3c4d5e6f7a8b9c0d1", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret-khac")
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("khong.phai.jwt", testSecret)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}
