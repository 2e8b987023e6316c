package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
	cryptoService "github.com/ourshop/shop/internal/crypto/service"
)

// RunCreateSymmetricKey generates a 16 byte session key and prints it wrapped by the
// KMS key at kmsKeyURI. The output is ready to paste into .env so every instance
// shares one session key. The raw key is zeroed before returning.
//
// For local development use kmsKeyURI="base64key://<32-byte-base64-key>".
func RunCreateSymmetricKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	w io.Writer,
	kmsKeyURI string,
) error {
	if kmsKeyURI == "" {
		return fmt.Errorf("--kms-key-uri is required")
	}

	key := make([]byte, cryptoDomain.SymmetricKeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate symmetric key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt symmetric key with KMS: %w", err)
	}

	_, err = fmt.Fprintf(w,
		"# Copy these environment variables to your .env file or secrets manager\nKMS_KEY_URI=%q\nSYMMETRIC_KEY_CIPHERTEXT=%q\n",
		kmsKeyURI,
		base64.StdEncoding.EncodeToString(ciphertext),
	)
	if err != nil {
		return err
	}

	logger.Info("symmetric key created")
	return nil
}
