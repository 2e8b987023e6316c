// Package http exposes the session key exchange over REST. Read endpoints answer in
// JSON or, when the client asks for it with Accept, XML.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ourshop/shop/internal/crypto/http/dto"
	cryptoService "github.com/ourshop/shop/internal/crypto/service"
	apperrors "github.com/ourshop/shop/internal/errors"
	"github.com/ourshop/shop/internal/httputil"
	customValidation "github.com/ourshop/shop/internal/validation"
)

var offeredFormats = []string{gin.MIMEJSON, gin.MIMEXML}

// KeyExchangeHandler distributes the process session key to clients.
type KeyExchangeHandler struct {
	cipher        cryptoService.CredentialCipher
	legacyEnabled bool
	logger        *slog.Logger
}

// NewKeyExchangeHandler creates a new key exchange handler. legacyEnabled toggles the
// private key envelope endpoint.
func NewKeyExchangeHandler(
	cipher cryptoService.CredentialCipher,
	legacyEnabled bool,
	logger *slog.Logger,
) *KeyExchangeHandler {
	return &KeyExchangeHandler{
		cipher:        cipher,
		legacyEnabled: legacyEnabled,
		logger:        logger,
	}
}

// SessionKeyHandler returns the session key transformed with the server private key.
// Anyone holding the public key can recover it.
// GET /v1/keys/session - Returns 200 OK, or 404 when the legacy exchange is disabled.
func (h *KeyExchangeHandler) SessionKeyHandler(c *gin.Context) {
	if !h.legacyEnabled {
		httputil.HandleErrorGin(c, apperrors.ErrNotFound, h.logger)
		return
	}

	envelope, err := h.cipher.WrapSymmetricKeyForDistribution()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered: offeredFormats,
		Data:    dto.NewSessionKeyResponse(envelope),
	})
}

// WrapSessionKeyHandler encrypts the session key under a client public key with
// RSA-OAEP (SHA-256).
// POST /v1/keys/session/wrap - Returns 200 OK.
func (h *KeyExchangeHandler) WrapSessionKeyHandler(c *gin.Context) {
	var req dto.WrapSessionKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	der, err := req.DER()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	envelope, err := h.cipher.WrapSymmetricKeyFor(der)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewSessionKeyResponse(envelope))
}

// PublicKeyHandler publishes the server public key.
// GET /v1/keys/public - Returns 200 OK.
func (h *KeyExchangeHandler) PublicKeyHandler(c *gin.Context) {
	der, err := h.cipher.PublicKeyDER()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	fingerprint, err := h.cipher.Fingerprint()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered: offeredFormats,
		Data:    dto.NewPublicKeyResponse(der, fingerprint),
	})
}
