package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/table-booking/internal/httperr"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		es, ee, cs, ce string
		want           bool
	}{
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"candidate before", "10:00", "11:00", "09:00", "09:30", false},
		{"candidate after", "10:00", "11:00", "11:30", "12:00", false},
		{"nested", "10:00", "11:00", "10:30", "10:45", true},
		{"start inside", "10:00", "11:00", "10:30", "12:00", true},
		{"end inside", "10:00", "11:00", "09:00", "10:30", true},
		{"touching end", "10:00", "11:00", "11:00", "12:00", true},
		{"touching start", "10:00", "11:00", "09:00", "10:00", true},
		// known gap: a candidate containing the existing slot is not flagged
		{"candidate contains existing", "10:00", "11:00", "09:00", "12:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overlaps(tt.es, tt.ee, tt.cs, tt.ce)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapsIdenticalAcrossDay(t *testing.T) {
	for _, hm := range []string{"00:00", "07:15", "12:30", "23:59"} {
		got, err := Overlaps(hm, "23:59", hm, "23:59")
		require.NoError(t, err)
		assert.True(t, got, hm)
	}
}

func TestOverlapsRejectsMalformedClock(t *testing.T) {
	for _, bad := range []string{"", "25:00", "10:60", "10h30", "noon"} {
		_, err := Overlaps("10:00", "11:00", bad, "11:30")
		assert.True(t, httperr.IsValidation(err), bad)
	}
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "table#7#2024-05-01", LockKey(7, "2024-05-01"))
}
