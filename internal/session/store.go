package session

import "context"

// Store persists opaque session blobs by id. Load of an unknown id returns an
// error wrapping domain.ErrSessionNotFound.
type Store interface {
	Load(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, id string, blob []byte) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Name() string
}
