package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Listen opens a dedicated connection, subscribes to the notification channel
// fed by the schema's row-change triggers and invokes notify for every
// notification received. The payload is ignored; a notification only means
// "something changed". Listen blocks until ctx is cancelled or the
// connection drops.
func (db *DB) Listen(ctx context.Context, channel string, notify func()) error {
	conn, err := pgx.Connect(ctx, db.dsn)
	if err != nil {
		return fmt.Errorf(errFailedListenFmt, channel, err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf(errFailedListenFmt, channel, err)
	}

	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf(errFailedListenFmt, channel, err)
		}
		notify()
	}
}
