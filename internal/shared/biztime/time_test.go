package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionStamp(t *testing.T) {
	stamp := VersionStamp(time.Date(2024, 7, 3, 9, 5, 42, 0, time.UTC))
	assert.Equal(t, int64(20240703090542), stamp)
}

func TestVersionStampNormalizesToUTC(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 09:00 KST is midnight UTC.
	stamp := VersionStamp(time.Date(2024, 7, 3, 9, 0, 0, 0, seoul))
	assert.Equal(t, int64(20240703000000), stamp)
}

func TestVersionStampIsMonotonicInTime(t *testing.T) {
	earlier := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	later := earlier.Add(time.Second)
	assert.Less(t, VersionStamp(earlier), VersionStamp(later))
}

func TestAddMonths(t *testing.T) {
	start := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	end := AddMonths(start, 1)
	assert.Equal(t, time.Date(2024, 2, 15, 3, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.UTC, end.Location())
}
