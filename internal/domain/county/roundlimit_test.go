package county

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundLimit(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		unlimited bool
		count     int
	}{
		{name: "finite", raw: "3", count: 3},
		{name: "zero", raw: "0", count: 0},
		{name: "many marker", raw: "many", unlimited: true},
		{name: "marker with spaces", raw: "  Many ", unlimited: true},
		{name: "legacy spelling", raw: "unlimited", unlimited: true},
		{name: "garbage becomes zero", raw: "lots", count: 0},
		{name: "negative becomes zero", raw: "-2", count: 0},
		{name: "empty", raw: "", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ParseRoundLimit(tt.raw)
			assert.Equal(t, tt.unlimited, l.IsUnlimited())
			if !tt.unlimited {
				assert.Equal(t, tt.count, l.Count())
			}
		})
	}
}

func TestRoundLimitAllows(t *testing.T) {
	assert.True(t, FiniteRounds(2).Allows(0))
	assert.True(t, FiniteRounds(2).Allows(1))
	assert.False(t, FiniteRounds(2).Allows(2))
	assert.False(t, FiniteRounds(0).Allows(0))

	assert.True(t, UnlimitedRounds().Allows(0))
	assert.True(t, UnlimitedRounds().Allows(1000))
}

func TestRoundLimitJSON(t *testing.T) {
	out, err := json.Marshal(FiniteRounds(4))
	require.NoError(t, err)
	assert.Equal(t, "4", string(out))

	out, err = json.Marshal(UnlimitedRounds())
	require.NoError(t, err)
	assert.Equal(t, `"many"`, string(out))

	var l RoundLimit
	require.NoError(t, json.Unmarshal([]byte(`"many"`), &l))
	assert.True(t, l.IsUnlimited())

	require.NoError(t, json.Unmarshal([]byte(`7`), &l))
	assert.False(t, l.IsUnlimited())
	assert.Equal(t, 7, l.Count())
}

func TestRoundLimitStorage(t *testing.T) {
	assert.Equal(t, "5", FiniteRounds(5).Storage())
	assert.Equal(t, "many", UnlimitedRounds().Storage())
}
