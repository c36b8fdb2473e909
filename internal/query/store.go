// Package query holds the read use cases. Every operation borrows exactly one
// store connection for its duration.
package query

import (
	"context"

	"github.com/divscout/divscout-api/internal/repository"
)

// Store opens a read session scoped to one pooled connection.
type Store interface {
	WithSession(ctx context.Context, fn func(repository.ReadSession) error) error
}
