package usecases

import (
	"context"
	"fmt"
	"slices"

	"titledesk/internal/infrastructure/lock"
)

// acquireTicketLocks serializes mapping and grouping calls touching
// overlapping tickets. Keys are taken in ascending ticket order so two calls
// over intersecting sets cannot deadlock each other.
func acquireTicketLocks(ctx context.Context, locker lock.Locker, ticketIDs []uint) (func(), error) {
	ids := append([]uint(nil), ticketIDs...)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	releases := make([]func(), 0, len(ids))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, id := range ids {
		release, err := locker.Acquire(ctx, fmt.Sprintf("batchprep:ticket:%d", id))
		if err != nil {
			releaseAll()
			return nil, fmt.Errorf("failed to acquire ticket lock: %w", err)
		}
		releases = append(releases, release)
	}

	return releaseAll, nil
}
