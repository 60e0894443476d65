package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUTC_MillisecondPrecision(t *testing.T) {
	now := NowUTC()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, now, FromMillis(now.UnixMilli()))
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = Init("") })

	require.NoError(t, Init("Asia/Qatar"))
	assert.Equal(t, "Asia/Qatar", Location().String())

	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-01T12:00:00+03:00", FormatLocal(ts))

	assert.Error(t, Init("Nowhere/Special"))
	assert.Equal(t, "Asia/Qatar", Location().String())
}
