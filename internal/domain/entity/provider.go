package entity

// ProviderType identifies an authentication method.
type ProviderType string

const (
	ProviderTypeCredentials ProviderType = "credentials"
	ProviderTypeGitHub      ProviderType = "github"
	ProviderTypeGoogle      ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsOAuth reports whether the provider authenticates through a third-party identity provider.
func (p ProviderType) IsOAuth() bool {
	switch p {
	case ProviderTypeGitHub, ProviderTypeGoogle:
		return true
	default:
		return false
	}
}

// IsValid checks if the ProviderType is a known value.
func (p ProviderType) IsValid() bool {
	return p == ProviderTypeCredentials || p.IsOAuth()
}

// ProviderKind distinguishes form-based from redirect-based providers.
type ProviderKind string

const (
	ProviderKindCredentials ProviderKind = "credentials"
	ProviderKindOAuth       ProviderKind = "oauth"
)

// CredentialField describes one input of the credential form.
type CredentialField struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// ProviderDescriptor is the public description of an enabled authentication method.
type ProviderDescriptor struct {
	ID          ProviderType      `json:"id"`
	Name        string            `json:"name"`
	Kind        ProviderKind      `json:"type"`
	Credentials []CredentialField `json:"credentials,omitempty"`
}
