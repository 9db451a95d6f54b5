package collections

import (
	"log"

	"github.com/google/uuid"
)

type config struct {
	limit  int
	logger *log.Logger
	id     uuid.UUID
}

// Option configures a LinkedList at construction or clone time.
type Option func(*config)

// WithLimit caps the number of nodes a list may hold. Allocations past the
// limit fail with ErrAllocation. Zero or a negative value means unlimited.
func WithLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.limit = n
	}
}

// WithLogger reports failed operations to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func WithID(id uuid.UUID) Option {
	return func(c *config) {
		c.id = id
	}
}
