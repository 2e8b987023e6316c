package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		require.NotNil(t, keeper)
		defer func() {
			assert.NoError(t, keeper.Close())
		}()

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok)
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})

	t.Run("Error_UnlinkedCloudScheme", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "awskms://alias/shop")
		assert.Nil(t, keeper)
		assert.ErrorContains(t, err, `unsupported key URI scheme "awskms"`)
	})

	t.Run("Error_EmptyURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "")
		assert.Error(t, err)
		assert.Nil(t, keeper)
	})
}

func TestKMSService_SessionKeyRoundTrip(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()
	keyURI := generateLocalSecretsURI(t)

	keeper, err := kmsService.OpenKeeper(ctx, keyURI)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, keeper.Close())
	}()

	sessionKey := make([]byte, cryptoDomain.SymmetricKeySize)
	_, err = rand.Read(sessionKey)
	require.NoError(t, err)

	ciphertext, err := keeper.Encrypt(ctx, sessionKey)
	require.NoError(t, err)
	assert.NotEqual(t, sessionKey, ciphertext)

	// A second keeper for the same URI must unwrap the key.
	other, err := kmsService.OpenKeeper(ctx, keyURI)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, other.Close())
	}()

	decrypted, err := other.Decrypt(ctx, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, sessionKey, decrypted)

	t.Run("wrong key fails", func(t *testing.T) {
		wrong, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, wrong.Close())
		}()

		_, err = wrong.Decrypt(ctx, ciphertext)
		assert.Error(t, err)
	})
}
