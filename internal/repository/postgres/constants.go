package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errApplicationNotFound = "casting application not found"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"
	errFailedReadCollectionFmt       = "failed to read collection %s: %w"
	errFailedUpsertModelFmt          = "failed to upsert model: %w"
	errFailedUpsertApplicationFmt    = "failed to upsert casting application: %w"
	errFailedStartTransactionFmt     = "failed to start transaction: %w"
	errFailedInsertModelFmt          = "failed to insert promoted model: %w"
	errFailedUpdateApplicationFmt    = "failed to update application status: %w"
	errFailedCommitPromotionFmt      = "failed to commit promotion: %w"
	errFailedListenFmt               = "failed to listen on channel %s: %w"
)

func errFailedParseDatabaseConfig(err error) error {
	return fmt.Errorf(errFailedParseDatabaseConfigFmt, err)
}

func errFailedCreateConnectionPool(err error) error {
	return fmt.Errorf(errFailedCreateConnectionPoolFmt, err)
}

func errFailedPingDatabase(err error) error {
	return fmt.Errorf(errFailedPingDatabaseFmt, err)
}

func errFailedStartTransaction(err error) error {
	return fmt.Errorf(errFailedStartTransactionFmt, err)
}
