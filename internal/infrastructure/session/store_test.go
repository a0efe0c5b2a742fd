package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type screen struct {
	counter int
}

func newTestStore(t *testing.T) *Store[screen] {
	t.Helper()
	return NewStore[screen](time.Hour, time.Hour, zap.NewNop())
}

func TestStoreCreateAndWith(t *testing.T) {
	s := newTestStore(t)

	id := s.Create(&screen{})
	require.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 1, s.Len())

	err := s.With(id, func(sc *screen) error {
		sc.counter++
		return nil
	})
	require.NoError(t, err)

	err = s.With(id, func(sc *screen) error {
		assert.Equal(t, 1, sc.counter)
		return nil
	})
	require.NoError(t, err)
}

func TestStoreMissingSession(t *testing.T) {
	s := newTestStore(t)

	err := s.With(uuid.New(), func(*screen) error { return nil })
	assert.Error(t, err)
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	id := s.Create(&screen{})

	s.Delete(id)

	assert.Equal(t, 0, s.Len())
	assert.Error(t, s.With(id, func(*screen) error { return nil }))
}

func TestStoreCleanupReapsIdleSessions(t *testing.T) {
	s := NewStore[screen](10*time.Millisecond, time.Hour, zap.NewNop())

	idle := s.Create(&screen{})
	active := s.Create(&screen{})

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.With(active, func(*screen) error { return nil }))

	s.cleanup()

	assert.Error(t, s.With(idle, func(*screen) error { return nil }))
	assert.NoError(t, s.With(active, func(*screen) error { return nil }))
}
