package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBroadcaster_Subscribe(t *testing.T) {
	t.Run("subscribe creates active subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NotNil(t, sub)
		require.NotNil(t, sub.Receive())
		assert.Equal(t, 1, b.Len())
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := <-sub.Receive()
		assert.False(t, ok)
		assert.Zero(t, b.Len())
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		require.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
		_, ok := <-sub.Receive()
		assert.False(t, ok)
	})

	t.Run("closing subscriber unsubscribes", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())
		assert.Zero(t, b.Len())
	})
}

func TestMemoryBroadcaster_Broadcast(t *testing.T) {
	t.Run("broadcast to multiple subscribers", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](10)
		defer b.Close()

		const numSubs = 5
		subs := make([]Subscriber[int], numSubs)
		for i := range numSubs {
			subs[i] = b.Subscribe(context.Background())
		}

		b.Broadcast(42)

		for i, sub := range subs {
			select {
			case received := <-sub.Receive():
				assert.Equal(t, 42, received, "subscriber %d", i)
			case <-time.After(100 * time.Millisecond):
				t.Fatalf("subscriber %d timeout", i)
			}
		}
	})

	t.Run("slow subscriber keeps latest value", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](1)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		for i := range 10 {
			b.Broadcast(i)
		}

		assert.Equal(t, 9, <-sub.Receive())
		assert.Equal(t, 1, b.Len())

		select {
		case v := <-sub.Receive():
			t.Fatalf("unexpected extra value %d", v)
		default:
		}
	})

	t.Run("buffered values keep order", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](3)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		for i := range 5 {
			b.Broadcast(i)
		}

		assert.Equal(t, 2, <-sub.Receive())
		assert.Equal(t, 3, <-sub.Receive())
		assert.Equal(t, 4, <-sub.Receive())
	})

	t.Run("broadcast after close is a no-op", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())
		assert.NotPanics(t, func() { b.Broadcast("test") })
	})
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	t.Run("close closes all subscribers", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)

		subs := make([]Subscriber[string], 3)
		for i := range subs {
			subs[i] = b.Subscribe(context.Background())
		}

		require.NoError(t, b.Close())

		for i, sub := range subs {
			_, ok := <-sub.Receive()
			assert.False(t, ok, "subscriber %d channel should be closed", i)
		}
	})

	t.Run("double close is safe", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())
	})
}
