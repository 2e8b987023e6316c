package service

import (
	credentialDomain "github.com/ourshop/shop/internal/credential/domain"
	apperrors "github.com/ourshop/shop/internal/errors"
)

// Authenticate checks a sign-in attempt against the stored hash of an existing
// principal. Every failure except an unavailable cipher is reported as
// ErrInvalidCredentials so callers cannot tell which check failed.
func Authenticate(p Pipeline, input credentialDomain.PasswordInput, stored string, active bool) error {
	plain, err := p.OpenPassword(input)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnavailable) {
			return err
		}
		return credentialDomain.ErrInvalidCredentials
	}

	ok, err := p.Verify(plain, stored)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnavailable) {
			return err
		}
		return credentialDomain.ErrInvalidCredentials
	}
	if !ok || !active {
		return credentialDomain.ErrInvalidCredentials
	}
	return nil
}
