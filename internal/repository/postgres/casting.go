package postgres

import (
	"context"
	"fmt"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
)

const upsertApplicationQuery = `
	INSERT INTO casting_applications (
		id, first_name, last_name, email, phone, birth_date, gender, city,
		nationality, height, weight, bust, waist, hips, shoe_size,
		experience, status, photo_urls, submitted_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	ON CONFLICT (id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		email = EXCLUDED.email,
		phone = EXCLUDED.phone,
		birth_date = EXCLUDED.birth_date,
		gender = EXCLUDED.gender,
		city = EXCLUDED.city,
		nationality = EXCLUDED.nationality,
		height = EXCLUDED.height,
		weight = EXCLUDED.weight,
		bust = EXCLUDED.bust,
		waist = EXCLUDED.waist,
		hips = EXCLUDED.hips,
		shoe_size = EXCLUDED.shoe_size,
		experience = EXCLUDED.experience,
		status = EXCLUDED.status,
		photo_urls = EXCLUDED.photo_urls,
		submitted_at = EXCLUDED.submitted_at
`

// UpsertApplication writes a casting application by identifier.
func (db *DB) UpsertApplication(ctx context.Context, a *casting.Application) error {
	_, err := db.Pool.Exec(ctx, upsertApplicationQuery,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.BirthDate,
		a.Gender, a.City, a.Nationality, a.Height, a.Weight, a.Bust,
		a.Waist, a.Hips, a.ShoeSize, a.Experience, a.Status, a.PhotoURLs,
		a.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf(errFailedUpsertApplicationFmt, err)
	}
	return nil
}

// PromoteTransaction inserts the synthesized model and flips the source
// application's status to Accepté in one transaction, so either both writes
// land or neither does.
func (db *DB) PromoteTransaction(ctx context.Context, m *model.Model, applicationID string) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return errFailedStartTransaction(err)
	}
	defer tx.Rollback(ctx)

	args, err := modelUpsertArgs(m)
	if err != nil {
		return fmt.Errorf(errFailedInsertModelFmt, err)
	}
	if _, err := tx.Exec(ctx, upsertModelQuery, args...); err != nil {
		return fmt.Errorf(errFailedInsertModelFmt, err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE casting_applications SET status = $1 WHERE id = $2`,
		casting.StatusAccepted, applicationID,
	)
	if err != nil {
		return fmt.Errorf(errFailedUpdateApplicationFmt, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(errFailedUpdateApplicationFmt, fmt.Errorf(errApplicationNotFound))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(errFailedCommitPromotionFmt, err)
	}
	return nil
}
