package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLimiter_BurstThenRefill(t *testing.T) {
	l := NewPerMinute(60, 3, time.Minute)
	require.NotNil(t, l)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(1, now), "запрос %d в пределах burst", i+1)
	}
	assert.False(t, l.Allow(1, now))
	assert.True(t, l.Allow(2, now), "другой пользователь не затронут")

	// 60 в минуту = один токен в секунду
	assert.True(t, l.Allow(1, now.Add(time.Second)))
}

func TestUserLimiter_DisabledAllowsEverything(t *testing.T) {
	var l *UserLimiter = NewPerMinute(0, 10, 0)
	assert.Nil(t, l)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow(7, time.Now()))
	}
	assert.Zero(t, l.Size())
}

func TestUserLimiter_EvictsIdle(t *testing.T) {
	l := NewPerMinute(600, 1000, time.Minute)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l.Allow(99, start)

	later := start.Add(time.Hour)
	for i := 0; i < evictEvery; i++ {
		l.Allow(1, later)
	}
	assert.Equal(t, 1, l.Size(), "неактивный пользователь вытеснен")
}
