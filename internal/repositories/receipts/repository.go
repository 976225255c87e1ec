// Package receipts keeps the per-day receipt sequence counters.
package receipts

import "context"

type Repository interface {
	// Next atomically increments and returns the counter for day, starting
	// at 1 for a day without a counter.
	Next(ctx context.Context, day string) (int64, error)
	// Get returns the last issued sequence for day, or 0.
	Get(ctx context.Context, day string) (int64, error)
}
