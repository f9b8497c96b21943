package dlist

import (
	"bytes"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// UUID is a thin wrapper over github.com/google/uuid.UUID so callers need not import it.
type UUID uuid.UUID

// NilUUID is the zero-value UUID.
var NilUUID UUID

// ParseUUID converts a string to a UUID. It returns an error if the input is not a valid UUID.
func ParseUUID(id string) (UUID, error) {
	u, err := uuid.Parse(id)
	return UUID(u), err
}

// NewUUID returns a new randomly generated UUID. It retries on error with a 1ms backoff up to 10 times
// and panics only if all attempts fail.
func NewUUID() UUID {
	var id uuid.UUID
	b := retry.WithMaxRetries(10, retry.NewConstant(time.Millisecond))
	err := retry.Do(context.Background(), b, func(ctx context.Context) error {
		var err error
		if id, err = uuid.NewRandom(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Warn(err.Error() + ", gave up generating UUID")
		panic(err)
	}
	return UUID(id)
}

// IsNil reports whether the UUID equals the zero-value UUID.
func (id UUID) IsNil() bool {
	return bytes.Equal(id[:], NilUUID[:])
}

// String returns the canonical string representation of the UUID.
func (id UUID) String() string {
	return uuid.UUID(id).String()
}
