package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/nfrund/collectives/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// Backoff retries an operation with exponentially growing delays.
type Backoff struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
}

// DefaultBackoff is used when connecting at startup.
func DefaultBackoff() Backoff {
	return Backoff{
		MaxRetries: 5,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retry calls fn until it succeeds, the retries are used up or ctx is done.
func (b Backoff) Retry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= b.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == b.MaxRetries {
			break
		}

		delay := b.delay(attempt)
		slog.WarnContext(ctx, "Attempt failed, retrying",
			"attempt", attempt+1, "max_attempts", b.MaxRetries+1,
			"delay_ms", delay.Milliseconds(), "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", b.MaxRetries+1, lastErr)
}

func (b Backoff) delay(attempt int) time.Duration {
	d := float64(b.BaseDelay) * math.Pow(b.Multiplier, float64(attempt))
	if d > float64(b.MaxDelay) {
		d = float64(b.MaxDelay)
	}
	if b.Jitter {
		// up to 25% on top
		d += rand.Float64() * d * 0.25
	}
	return time.Duration(d)
}

// Connect opens the database, retrying while SurrealDB is still starting up.
func Connect(ctx context.Context, cfg config.Provider, backoff Backoff) (*surrealdb.DB, error) {
	var db *surrealdb.DB
	err := backoff.Retry(ctx, func() error {
		var err error
		db, err = NewDB(ctx, cfg)
		return err
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
