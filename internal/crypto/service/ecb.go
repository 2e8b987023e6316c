package service

import (
	"bytes"
	"crypto/aes"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"
)

// encryptECB pads plaintext with PKCS#7 and encrypts each 16 byte block independently.
// Equal plaintexts yield equal ciphertexts; clients depend on that wire format.
func encryptECB(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoDomain.ErrEncryptionFailed
	}

	size := block.BlockSize()
	padded := pkcs7Pad(plaintext, size)
	out := make([]byte, len(padded))
	for start := 0; start < len(padded); start += size {
		block.Encrypt(out[start:start+size], padded[start:start+size])
	}

	return out, nil
}

// decryptECB decrypts block by block and strips PKCS#7 padding.
func decryptECB(key, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	size := block.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%size != 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	out := make([]byte, len(ciphertext))
	for start := 0; start < len(ciphertext); start += size {
		block.Decrypt(out[start:start+size], ciphertext[start:start+size])
	}

	return pkcs7Unpad(out, size)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, cryptoDomain.ErrDecryptionFailed
		}
	}

	return data[:len(data)-n], nil
}
