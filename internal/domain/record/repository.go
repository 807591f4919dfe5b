package record

import (
	"context"
)

// Repository is the record store the service reads from and publishes to.
// FetchByName returns ErrNotFound when the record does not exist.
type Repository interface {
	FetchByType(ctx context.Context, typ Type) ([]Record, error)
	FetchByName(ctx context.Context, typ Type, recordName string) (*Record, error)
	QueryByField(ctx context.Context, typ Type, field, value string) ([]Record, error)
	Create(ctx context.Context, rec *Record) (string, error)
}
