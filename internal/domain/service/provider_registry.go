package service

import "authgate/internal/domain/entity"

// ProviderRegistry is the static list of enabled authentication methods.
type ProviderRegistry interface {
	// Providers returns the enabled methods in display order.
	Providers() []entity.ProviderDescriptor

	// OAuth returns the OAuth client for provider, or domainerrors.ErrProviderNotFound.
	OAuth(provider entity.ProviderType) (OAuthProvider, error)
}
