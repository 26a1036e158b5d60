package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnauthorizedSignal(t *testing.T) {
	t.Parallel()

	t.Run("delivers to all subscribers", func(t *testing.T) {
		sig := NewUnauthorizedSignal()

		var got []UnauthorizedEvent
		sig.Subscribe(func(ev UnauthorizedEvent) { got = append(got, ev) })
		sig.Subscribe(func(ev UnauthorizedEvent) { got = append(got, ev) })

		sig.Notify(UnauthorizedEvent{Status: 401, Message: "expired"})
		require.Len(t, got, 2)
		require.Equal(t, 401, got[0].Status)
	})

	t.Run("cancel stops delivery and is idempotent", func(t *testing.T) {
		sig := NewUnauthorizedSignal()

		calls := 0
		cancel := sig.Subscribe(func(UnauthorizedEvent) { calls++ })

		sig.Notify(UnauthorizedEvent{Status: 403})
		cancel()
		cancel()
		sig.Notify(UnauthorizedEvent{Status: 403})

		require.Equal(t, 1, calls)
	})

	t.Run("notify with no subscribers", func(t *testing.T) {
		sig := NewUnauthorizedSignal()
		sig.Notify(UnauthorizedEvent{Status: 401})
	})
}
