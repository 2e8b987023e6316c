// Package dto provides data transfer objects for the key exchange endpoints.
package dto

import (
	"encoding/base64"
	"encoding/xml"

	validation "github.com/jellydator/validation"

	customValidation "github.com/ourshop/shop/internal/validation"
)

// WrapSessionKeyRequest carries the client RSA public key the session key is wrapped
// for.
type WrapSessionKeyRequest struct {
	PublicKey string `json:"public_key"` // Base64-encoded X.509 SubjectPublicKeyInfo
}

// Validate checks if the wrap request is valid.
func (r *WrapSessionKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PublicKey,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
	)
}

// DER returns the decoded public key. Call Validate first.
func (r *WrapSessionKeyRequest) DER() ([]byte, error) {
	return base64.StdEncoding.DecodeString(r.PublicKey)
}

// SessionKeyResponse holds a base64 session key envelope.
type SessionKeyResponse struct {
	XMLName xml.Name `json:"-"   xml:"session_key"`
	Key     string   `json:"key" xml:"key"`
}

// NewSessionKeyResponse encodes envelope for the wire.
func NewSessionKeyResponse(envelope []byte) SessionKeyResponse {
	return SessionKeyResponse{Key: base64.StdEncoding.EncodeToString(envelope)}
}

// PublicKeyResponse publishes the server public key and its fingerprint.
type PublicKeyResponse struct {
	XMLName     xml.Name `json:"-"           xml:"public_key"`
	PublicKey   string   `json:"public_key"  xml:"der"`
	Fingerprint string   `json:"fingerprint" xml:"fingerprint"`
}

// NewPublicKeyResponse encodes der for the wire.
func NewPublicKeyResponse(der []byte, fingerprint string) PublicKeyResponse {
	return PublicKeyResponse{
		PublicKey:   base64.StdEncoding.EncodeToString(der),
		Fingerprint: fingerprint,
	}
}
