package service

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"math/big"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// minPaddingLen is the minimum run of 0xFF bytes in a PKCS#1 v1.5 type 1 block.
const minPaddingLen = 8

// wrapWithPrivateKey applies the private key operation to msg with block type 1
// padding (00 01 FF..FF 00 msg). This is the raw "sign without digest" primitive and is
// byte compatible with RSA/ECB/PKCS1Padding encryption under a private key.
func wrapWithPrivateKey(priv *rsa.PrivateKey, msg []byte) ([]byte, error) {
	envelope, err := rsa.SignPKCS1v15(nil, priv, crypto.Hash(0), msg)
	if err != nil {
		return nil, cryptoDomain.ErrEncryptionFailed
	}
	return envelope, nil
}

// unwrapWithPublicKey computes envelope^e mod n and strips the type 1 padding.
func unwrapWithPublicKey(pub *rsa.PublicKey, envelope []byte) ([]byte, error) {
	k := pub.Size()
	if len(envelope) != k {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	c := new(big.Int).SetBytes(envelope)
	if c.Cmp(pub.N) >= 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	m := new(big.Int).Exp(c, big.NewInt(int64(pub.E)), pub.N)
	em := m.FillBytes(make([]byte, k))

	if em[0] != 0x00 || em[1] != 0x01 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	i := 2
	for i < k && em[i] == 0xFF {
		i++
	}
	if i-2 < minPaddingLen || i >= k || em[i] != 0x00 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return em[i+1:], nil
}

// wrapForClient encrypts msg with RSA-OAEP (SHA-256) under a client public key.
func wrapForClient(clientPublicDER, msg []byte) ([]byte, error) {
	parsed, err := x509.ParsePKIXPublicKey(clientPublicDER)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidPublicKey
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok || pub.N.BitLen() < cryptoDomain.RSAKeyBits {
		return nil, cryptoDomain.ErrInvalidPublicKey
	}

	envelope, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, msg, nil)
	if err != nil {
		return nil, cryptoDomain.ErrEncryptionFailed
	}
	return envelope, nil
}
