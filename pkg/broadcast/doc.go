// Package broadcast provides type-safe one-to-many delivery of values to
// subscribers.
//
// The memory implementation is built for state snapshots: every broadcast
// value supersedes the previous one, so a subscriber whose buffer is full
// drops its oldest pending value instead of blocking the publisher or being
// disconnected. The newest value is always delivered.
//
// Basic usage:
//
//	b := broadcast.NewMemoryBroadcaster[State](1)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	b.Broadcast(state)
//
//	for st := range sub.Receive() {
//		render(st)
//	}
//
// A subscriber is removed when its context is cancelled, when it is closed,
// or when the broadcaster is closed.
package broadcast
