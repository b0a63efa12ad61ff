// Package storage is the durable record layer behind the order store. Each
// record is a named key holding a JSON document. The two keys below are a
// compatibility contract: any process sharing the backend must read and write
// the same shapes.
package storage

import (
	"context"
	"errors"
)

const (
	KeyOrders          = "orders"
	KeyServiceRequests = "serviceRequests"
)

var ErrNotFound = errors.New("storage: record not found")

// Change reports a write to a record made by another writer sharing the same
// backend. Own writes are never delivered.
type Change struct {
	Key   string
	Value []byte
}

type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Watch starts delivering external changes. The channel closes when ctx
	// is cancelled or the backend is closed.
	Watch(ctx context.Context) (<-chan Change, error)
	Close() error
}
