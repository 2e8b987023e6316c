package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// keyLockTimeout bounds the wait for another process bootstrapping the same directory.
const keyLockTimeout = 10 * time.Second

// keyPairStore keeps the key pair under dir. Presence of dir means the pair exists.
type keyPairStore struct {
	dir         string
	logger      *slog.Logger
	lockTimeout time.Duration
	mu          sync.Mutex
}

// NewKeyPairStore creates a store rooted at dir.
func NewKeyPairStore(dir string, logger *slog.Logger) KeyPairStore {
	return &keyPairStore{
		dir:         dir,
		logger:      logger,
		lockTimeout: keyLockTimeout,
	}
}

func (s *keyPairStore) Dir() string {
	return s.dir
}

// EnsureKeyPair generates the pair into a temporary sibling directory and renames it
// into place, so a crash never leaves a directory with missing key files. Concurrent
// callers in this process are serialized by a mutex; other processes by a file lock
// on "<dir>.lock".
func (s *keyPairStore) EnsureKeyPair(ctx context.Context) error {
	if s.dir == "" {
		return fmt.Errorf("%w: keystore path is empty", cryptoDomain.ErrKeySetup)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := dirExists(s.dir)
	if err != nil {
		return fmt.Errorf("%w: failed to stat keystore: %w", cryptoDomain.ErrKeySetup, err)
	}
	if exists {
		return nil
	}

	parent := filepath.Dir(s.dir)
	if err := os.MkdirAll(parent, 0o700); err != nil {
		return fmt.Errorf("%w: failed to create keystore parent: %w", cryptoDomain.ErrKeySetup, err)
	}

	fileLock := flock.New(s.dir + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("%w: failed to acquire keystore lock: %w", cryptoDomain.ErrKeySetup, err)
	}
	if !locked {
		return fmt.Errorf("%w: keystore lock timeout after %v", cryptoDomain.ErrKeySetup, s.lockTimeout)
	}
	defer func() { _ = fileLock.Unlock() }()

	// Another process may have finished while we waited for the lock.
	exists, err = dirExists(s.dir)
	if err != nil {
		return fmt.Errorf("%w: failed to stat keystore: %w", cryptoDomain.ErrKeySetup, err)
	}
	if exists {
		return nil
	}

	if err := s.generate(parent); err != nil {
		return fmt.Errorf("%w: %w", cryptoDomain.ErrKeySetup, err)
	}

	if s.logger != nil {
		s.logger.Info("generated rsa key pair", slog.String("keystore", s.dir))
	}
	return nil
}

func (s *keyPairStore) generate(parent string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, cryptoDomain.RSAKeyBits)
	if err != nil {
		return fmt.Errorf("failed to generate rsa key pair: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return fmt.Errorf("failed to marshal private key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}

	tmpDir, err := os.MkdirTemp(parent, filepath.Base(s.dir)+".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	if err := os.WriteFile(filepath.Join(tmpDir, cryptoDomain.PrivateKeyFileName), privDER, 0o600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, cryptoDomain.PublicKeyFileName), pubDER, 0o644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	if err := os.Rename(tmpDir, s.dir); err != nil {
		return fmt.Errorf("failed to move key pair into place: %w", err)
	}
	return nil
}

func (s *keyPairStore) LoadKeyPair() (*cryptoDomain.KeyPair, error) {
	privDER, err := os.ReadFile(filepath.Join(s.dir, cryptoDomain.PrivateKeyFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read private key: %w", cryptoDomain.ErrKeySetup, err)
	}
	defer cryptoDomain.Zero(privDER)

	parsedPriv, err := x509.ParsePKCS8PrivateKey(privDER)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse private key: %w", cryptoDomain.ErrKeySetup, err)
	}
	privateKey, ok := parsedPriv.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not rsa", cryptoDomain.ErrKeySetup)
	}

	pubDER, err := s.PublicKeyDER()
	if err != nil {
		return nil, err
	}

	parsedPub, err := x509.ParsePKIXPublicKey(pubDER)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse public key: %w", cryptoDomain.ErrKeySetup, err)
	}
	publicKey, ok := parsedPub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not rsa", cryptoDomain.ErrKeySetup)
	}

	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, fmt.Errorf("%w: public key does not match private key", cryptoDomain.ErrKeySetup)
	}

	return &cryptoDomain.KeyPair{Private: privateKey, Public: publicKey}, nil
}

func (s *keyPairStore) PublicKeyDER() ([]byte, error) {
	pubDER, err := os.ReadFile(filepath.Join(s.dir, cryptoDomain.PublicKeyFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read public key: %w", cryptoDomain.ErrKeySetup, err)
	}
	return pubDER, nil
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}
	return true, nil
}
