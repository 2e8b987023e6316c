package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoService "github.com/ourshop/shop/internal/crypto/service"
)

// RunEnsureKeyPair creates the RSA key pair when the key directory does not exist,
// checks that both files parse and belong together, and prints the public key.
// An existing directory is left untouched.
func RunEnsureKeyPair(
	ctx context.Context,
	store cryptoService.KeyPairStore,
	logger *slog.Logger,
	w io.Writer,
) error {
	logger.Info("ensuring key pair", slog.String("dir", store.Dir()))

	if err := store.EnsureKeyPair(ctx); err != nil {
		return fmt.Errorf("failed to ensure key pair: %w", err)
	}

	if _, err := store.LoadKeyPair(); err != nil {
		return fmt.Errorf("failed to load key pair: %w", err)
	}

	der, err := store.PublicKeyDER()
	if err != nil {
		return fmt.Errorf("failed to read public key: %w", err)
	}

	if _, err := fmt.Fprintf(w, "KEYSTORE_PATH=%q\n", store.Dir()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "PUBLIC_KEY=%q\n", base64.StdEncoding.EncodeToString(der)); err != nil {
		return err
	}

	logger.Info("key pair ready", slog.String("dir", store.Dir()))
	return nil
}
