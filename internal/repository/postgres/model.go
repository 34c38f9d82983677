package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
)

const upsertModelQuery = `
	INSERT INTO models (
		id, name, username, password_hash, email, phone, age, height,
		gender, location, image_url, portfolio_images, categories,
		distinctions, experience, journey, is_public, quiz_scores, measurements
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		username = EXCLUDED.username,
		password_hash = EXCLUDED.password_hash,
		email = EXCLUDED.email,
		phone = EXCLUDED.phone,
		age = EXCLUDED.age,
		height = EXCLUDED.height,
		gender = EXCLUDED.gender,
		location = EXCLUDED.location,
		image_url = EXCLUDED.image_url,
		portfolio_images = EXCLUDED.portfolio_images,
		categories = EXCLUDED.categories,
		distinctions = EXCLUDED.distinctions,
		experience = EXCLUDED.experience,
		journey = EXCLUDED.journey,
		is_public = EXCLUDED.is_public,
		quiz_scores = EXCLUDED.quiz_scores,
		measurements = EXCLUDED.measurements
`

// UpsertModel writes a model by identifier, inserting or replacing the row.
func (db *DB) UpsertModel(ctx context.Context, m *model.Model) error {
	args, err := modelUpsertArgs(m)
	if err != nil {
		return fmt.Errorf(errFailedUpsertModelFmt, err)
	}

	if _, err := db.Pool.Exec(ctx, upsertModelQuery, args...); err != nil {
		return fmt.Errorf(errFailedUpsertModelFmt, err)
	}
	return nil
}

func modelUpsertArgs(m *model.Model) ([]any, error) {
	distinctions, err := json.Marshal(m.Distinctions)
	if err != nil {
		return nil, err
	}
	quizScores, err := json.Marshal(m.QuizScores)
	if err != nil {
		return nil, err
	}
	measurements, err := json.Marshal(m.Measurements)
	if err != nil {
		return nil, err
	}

	return []any{
		m.ID, m.Name, m.Username, m.PasswordHash, m.Email, m.Phone, m.Age,
		m.Height, m.Gender, m.Location, m.ImageURL, m.Portfolio, m.Categories,
		distinctions, m.Experience, m.Journey, m.IsPublic, quizScores, measurements,
	}, nil
}
