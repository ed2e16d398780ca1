package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemviver/clinic-scheduler/internal/domain/schedule"
)

func newTestCache(t *testing.T) *AvailabilityCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client, zerolog.Nop())
}

func sampleDays() []schedule.DayAvailability {
	return []schedule.DayAvailability{
		{
			Date:    "2025-10-13",
			Blocked: false,
			Times: []schedule.Slot{
				{Time: "08:00", Available: true},
				{Time: "08:30", Available: false},
			},
		},
	}
}

func TestAvailabilityCache(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		c := newTestCache(t)
		key := Key("psicologia", "2025-10-13", 14)

		_, ok := c.Get(ctx, key)
		assert.False(t, ok)

		days := sampleDays()
		c.Set(ctx, key, days)

		got, ok := c.Get(ctx, key)
		require.True(t, ok)
		assert.Equal(t, days, got)
	})

	t.Run("KeysAreScoped", func(t *testing.T) {
		c := newTestCache(t)
		c.Set(ctx, Key("psicologia", "2025-10-13", 14), sampleDays())

		_, ok := c.Get(ctx, Key("consulta_geral", "2025-10-13", 14))
		assert.False(t, ok)
		_, ok = c.Get(ctx, Key("psicologia", "2025-10-14", 14))
		assert.False(t, ok)
	})

	t.Run("InvalidateDropsEverything", func(t *testing.T) {
		c := newTestCache(t)
		c.Set(ctx, Key("psicologia", "2025-10-13", 14), sampleDays())
		c.Set(ctx, Key("", "2025-10-13", 14), sampleDays())

		c.Invalidate(ctx)

		_, ok := c.Get(ctx, Key("psicologia", "2025-10-13", 14))
		assert.False(t, ok)
		_, ok = c.Get(ctx, Key("", "2025-10-13", 14))
		assert.False(t, ok)
	})

	t.Run("DisabledCacheIsNoop", func(t *testing.T) {
		c := New("", zerolog.Nop())
		assert.False(t, c.Enabled())

		assert.NotPanics(t, func() {
			c.Set(ctx, Key("x", "2025-10-13", 14), sampleDays())
			_, ok := c.Get(ctx, Key("x", "2025-10-13", 14))
			assert.False(t, ok)
			c.Invalidate(ctx)
		})
	})
}
