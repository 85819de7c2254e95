package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestNew(t *testing.T) {
	m, err := New(10, 2, uintPtr(5), 99)
	require.NoError(t, err)
	assert.Equal(t, uint(10), m.TicketID)
	assert.Equal(t, uint(2), m.CountyID)
	assert.Equal(t, uint(5), *m.CityID)
	assert.Nil(t, m.BatchID)

	_, err = New(0, 2, nil, 99)
	assert.Error(t, err)

	_, err = New(10, 0, nil, 99)
	assert.Error(t, err)
}

func TestDedupeEntries(t *testing.T) {
	entries := []Entry{
		{TicketID: 1, CountyID: 2, CityID: uintPtr(5)},
		{TicketID: 1, CountyID: 3, CityID: uintPtr(5)}, // repeat lane, different county: first wins
		{TicketID: 1, CountyID: 2, CityID: nil},        // same ticket, no city: kept
		{TicketID: 2, CountyID: 2, CityID: uintPtr(5)},
		{TicketID: 2, CountyID: 2, CityID: uintPtr(5)}, // exact repeat: dropped
	}

	out := DedupeEntries(entries)
	require.Len(t, out, 3)
	assert.Equal(t, uint(2), out[0].CountyID)
	assert.Nil(t, out[1].CityID)
	assert.Equal(t, uint(2), out[2].TicketID)
}

func TestDedupeEntriesEmpty(t *testing.T) {
	assert.Empty(t, DedupeEntries(nil))
}
