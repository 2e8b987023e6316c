package app

import (
	"context"
	"fmt"

	credentialService "github.com/ourshop/shop/internal/credential/service"
	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
	cryptoHTTP "github.com/ourshop/shop/internal/crypto/http"
	cryptoService "github.com/ourshop/shop/internal/crypto/service"
)

// KMSService returns the KMS service used to unwrap a pre-provisioned session key.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// Hasher returns the credential hasher selected by CREDENTIAL_HASH_ALGORITHM.
func (c *Container) Hasher() (cryptoService.Hasher, error) {
	var err error
	c.hasherInit.Do(func() {
		c.hasher, err = cryptoService.NewHasher(cryptoDomain.HashAlgorithm(c.config.CredentialHashAlgorithm))
		if err != nil {
			c.initErrors["hasher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["hasher"]; exists {
		return nil, storedErr
	}
	return c.hasher, nil
}

// KeyPairStore returns the RSA key pair store rooted at KEYSTORE_PATH.
func (c *Container) KeyPairStore() cryptoService.KeyPairStore {
	c.keyPairStoreInit.Do(func() {
		c.keyPairStore = cryptoService.NewKeyPairStore(c.config.KeystorePath, c.Logger())
	})
	return c.keyPairStore
}

// SymmetricKeyProvider returns the session key provider.
func (c *Container) SymmetricKeyProvider() cryptoService.SymmetricKeyProvider {
	c.symmetricKeyProviderInit.Do(func() {
		c.symmetricKeyProvider = cryptoService.NewSymmetricKeyProvider(
			cryptoService.SymmetricKeyConfig{
				KeyFile:       c.config.SymmetricKeyFile,
				KeyCiphertext: c.config.SymmetricKeyCiphertext,
				KMSKeyURI:     c.config.KMSKeyURI,
			},
			c.KMSService(),
			c.Logger(),
		)
	})
	return c.symmetricKeyProvider
}

// CredentialCipher returns the initialized credential cipher. The key pair is created
// on first use and the session key resolved; any failure is returned to every caller.
func (c *Container) CredentialCipher() (cryptoService.CredentialCipher, error) {
	var err error
	c.credentialCipherInit.Do(func() {
		c.credentialCipher, err = c.initCredentialCipher()
		if err != nil {
			c.initErrors["credentialCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialCipher"]; exists {
		return nil, storedErr
	}
	return c.credentialCipher, nil
}

// CredentialPipeline returns the pipeline shared by the principal use cases.
func (c *Container) CredentialPipeline() (credentialService.Pipeline, error) {
	var err error
	c.credentialPipelineInit.Do(func() {
		c.credentialPipeline, err = c.initCredentialPipeline()
		if err != nil {
			c.initErrors["credentialPipeline"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialPipeline"]; exists {
		return nil, storedErr
	}
	return c.credentialPipeline, nil
}

// KeyExchangeHandler returns the session key exchange HTTP handler.
func (c *Container) KeyExchangeHandler() (*cryptoHTTP.KeyExchangeHandler, error) {
	cipher, err := c.CredentialCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential cipher for key exchange handler: %w", err)
	}
	return cryptoHTTP.NewKeyExchangeHandler(cipher, c.config.KeyExchangeLegacyEnabled, c.Logger()), nil
}

func (c *Container) initCredentialCipher() (cryptoService.CredentialCipher, error) {
	hasher, err := c.Hasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get hasher for credential cipher: %w", err)
	}

	cipher := cryptoService.NewCredentialCipher(
		c.KeyPairStore(),
		c.SymmetricKeyProvider(),
		hasher,
		c.Logger(),
	)
	if err := cipher.Init(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize credential cipher: %w", err)
	}
	return cipher, nil
}

func (c *Container) initCredentialPipeline() (credentialService.Pipeline, error) {
	cipher, err := c.CredentialCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential cipher for pipeline: %w", err)
	}
	return credentialService.NewPipeline(cipher, credentialService.NewPasswordGenerator(), c.Logger()), nil
}
