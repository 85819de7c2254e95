// Package mapping defines the ticket-to-county routing table. A mapping row
// pins a ticket to a county (optionally a city) and, once grouped, to a
// batch. At most one row exists per ticket.
package mapping

import (
	"time"

	"titledesk/internal/shared/errors"
)

// Mapping routes one ticket to a county/city and, after grouping, to a batch.
// BatchID is nil while the ticket is mapped but not yet batched.
type Mapping struct {
	ID        uint
	TicketID  uint
	CountyID  uint
	CityID    *uint
	BatchID   *uint
	CreatedBy uint
	CreatedAt time.Time
}

// New builds an unbatched mapping row.
func New(ticketID, countyID uint, cityID *uint, createdBy uint) (*Mapping, error) {
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket id is required")
	}
	if countyID == 0 {
		return nil, errors.NewValidationError("county id is required")
	}
	return &Mapping{
		TicketID:  ticketID,
		CountyID:  countyID,
		CityID:    cityID,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}, nil
}

// Entry is one requested (ticket, county, city) assignment.
type Entry struct {
	TicketID uint
	CountyID uint
	CityID   *uint
}

// DedupeEntries drops repeated (ticketID, cityID) pairs, keeping the first
// occurrence. Entries for the same ticket with different cities survive and
// are rejected later by validation; this only collapses exact lane repeats.
func DedupeEntries(entries []Entry) []Entry {
	type key struct {
		ticketID uint
		cityID   uint
		hasCity  bool
	}
	seen := make(map[key]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := key{ticketID: e.TicketID}
		if e.CityID != nil {
			k.cityID = *e.CityID
			k.hasCity = true
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}
