package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"
)

// aesBlockSize is the cipher block length of sealed passwords.
const aesBlockSize = 16

func decodeBase64Value(value any) ([]byte, bool, error) {
	s, ok := value.(string)
	if !ok {
		return nil, false, validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil, false, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false, validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return decoded, true, nil
}

// Base64 accepts standard base64. Empty strings pass; combine with Required.
var Base64 = validation.By(func(value any) error {
	_, _, err := decodeBase64Value(value)
	return err
})

// SealedCiphertext accepts base64 whose decoded length is a whole number of AES
// blocks, which every session key ciphertext is. Empty strings pass.
var SealedCiphertext = validation.By(func(value any) error {
	decoded, present, err := decodeBase64Value(value)
	if err != nil || !present {
		return err
	}
	if len(decoded) == 0 || len(decoded)%aesBlockSize != 0 {
		return validation.NewError("validation_sealed_ciphertext", "must be a whole number of cipher blocks")
	}
	return nil
})
