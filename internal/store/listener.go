package store

import (
	"context"
	"log"
	"time"
)

// ChangeFeed is the change-notification surface the listener needs from the
// backend.
type ChangeFeed interface {
	Listen(ctx context.Context, channel string, notify func()) error
}

// Listener keeps the store eventually consistent with the backend: one
// subscription for the lifetime of the service, and on any change anywhere
// in the watched schema a full re-aggregation. No diffing. Bursts of
// notifications are coalesced within the debounce window so N rapid writes
// cost one refresh instead of N.
type Listener struct {
	store    *Store
	feed     ChangeFeed
	channel  string
	debounce time.Duration
}

func NewListener(store *Store, feed ChangeFeed, channel string, debounce time.Duration) *Listener {
	return &Listener{
		store:    store,
		feed:     feed,
		channel:  channel,
		debounce: debounce,
	}
}

// Run blocks until ctx is cancelled. If the subscription fails to establish,
// the store degrades silently to its fetch-once state; no error reaches
// consumers.
func (l *Listener) Run(ctx context.Context) {
	signals := make(chan struct{}, 1)

	go func() {
		err := l.feed.Listen(ctx, l.channel, func() {
			select {
			case signals <- struct{}{}:
			default:
			}
		})
		if err != nil {
			log.Printf("store: change feed unavailable, serving without realtime updates: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			l.coalesce(ctx, signals)
			l.store.Refresh(ctx)
		}
	}
}

// coalesce waits out the debounce window, absorbing any further signals that
// arrive while it does.
func (l *Listener) coalesce(ctx context.Context, signals chan struct{}) {
	if l.debounce <= 0 {
		return
	}

	timer := time.NewTimer(l.debounce)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(l.debounce)
		case <-timer.C:
			return
		}
	}
}
