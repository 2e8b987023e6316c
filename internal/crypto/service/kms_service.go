package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/ourshop/shop/internal/crypto/domain"

	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSService opens keepers that wrap and unwrap the provisioned session key.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI (hashivault:// or base64key://).
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}

type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// supportedKeeperSchemes are the keeper drivers linked into the binary.
var supportedKeeperSchemes = []string{"base64key", "hashivault"}

func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	scheme, _, found := strings.Cut(keyURI, "://")
	if !found || !slices.Contains(supportedKeeperSchemes, scheme) {
		return nil, fmt.Errorf("failed to open KMS keeper: unsupported key URI scheme %q (use %s)",
			scheme, strings.Join(supportedKeeperSchemes, ", "))
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}
