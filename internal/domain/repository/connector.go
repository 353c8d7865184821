package repository

import "context"

// Connector guarantees a usable directory connection. Ensure is idempotent and is called
// at the start of every authentication flow.
type Connector interface {
	Ensure(ctx context.Context) error
}
