package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 23:30 in UTC+9 is still the previous day's 14:30 in UTC.
	at := time.Date(2024, 3, 14, 23, 30, 0, 0, loc)
	require.Equal(t, "2024-03-14", DateKey(at))

	at = time.Date(2024, 3, 14, 5, 30, 0, 0, loc) // 2024-03-13T20:30Z
	require.Equal(t, "2024-03-13", DateKey(at))
}

func TestSeedDeterministic(t *testing.T) {
	d := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	require.Equal(t, Seed(d, "salt"), Seed(d, "salt"))

	// Same calendar date at a different hour maps to the same seed.
	later := time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)
	require.Equal(t, Seed(d, "salt"), Seed(later, "salt"))
}

func TestSeedVariesByDateAndSalt(t *testing.T) {
	d1 := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NotEqual(t, Seed(d1, "salt"), Seed(d2, "salt"))
	require.NotEqual(t, Seed(d1, "salt"), Seed(d1, "other_salt"))
}

func TestSeedNeverZeroOrNegative(t *testing.T) {
	d := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		require.Positive(t, Seed(d.AddDate(0, 0, i), "salt"))
	}
}
