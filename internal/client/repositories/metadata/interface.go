// Package metadata persists small key/value session fields (access token,
// username, admin flag, chat deep-link) in the client database.
package metadata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// InTx runs fn against a transactional view of the repository. All
	// writes made through it commit together or not at all.
	InTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
