package store

import (
	"context"
	"time"
)

// Ports for outbound adapters.
type (
	// Storage is durable key-value persistence for text blobs. Get
	// reports ok=false when the key has never been written.
	Storage interface {
		Get(ctx context.Context, key string) (value string, ok bool, err error)
		Set(ctx context.Context, key, value string) error
	}

	// Clock supplies timestamps so tests can pin them.
	Clock interface {
		Now() time.Time
	}
)

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
