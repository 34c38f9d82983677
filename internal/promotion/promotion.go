// Package promotion converts an accepted casting application into a new
// model profile: credentials and identifiers are synthesized from the
// submitted data, and the model insert plus the application's status flip
// are committed together.
package promotion

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/store"
	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/password"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/textutil"
)

const (
	usernamePrefix   = "Man-PMM"
	placeholderImage = "https://i.ibb.co/placeholder-model.jpg"
)

var defaultCategories = []string{"Défilé", "Shooting"}

// experienceNarratives is the fixed four-way lookup keyed by the
// application's experience level.
var experienceNarratives = map[casting.ExperienceLevel]string{
	casting.ExperienceNone:         "Nouveau visage plein de potentiel, prêt à apprendre les bases du métier au sein de l'agence.",
	casting.ExperienceBeginner:     "Débutant motivé ayant déjà participé à quelques séances photo et défilés locaux.",
	casting.ExperienceIntermediate: "Mannequin en progression comptant plusieurs défilés et collaborations à son actif.",
	casting.ExperienceProfessional: "Mannequin expérimenté, rompu aux castings, défilés et campagnes professionnelles.",
}

// Backend commits the two promotion writes atomically.
type Backend interface {
	PromoteTransaction(ctx context.Context, m *model.Model, applicationID string) error
}

// Result carries everything the initiating admin screen needs. PlainPassword
// is the only place the synthesized credential exists in clear; it is handed
// to the new model once and only its hash is stored.
type Result struct {
	Model         model.Model
	Application   casting.Application
	PlainPassword string
	Snapshot      *store.Snapshot
}

type Promoter struct {
	backend Backend
	now     func() time.Time
}

func New(backend Backend) *Promoter {
	return &Promoter{backend: backend, now: time.Now}
}

// Promote validates the application against the current snapshot, synthesizes
// the model profile and commits both writes. On success the returned snapshot
// contains the new model and the application with status Accepté; the caller
// publishes it optimistically while the change listener's refresh confirms it.
func (p *Promoter) Promote(ctx context.Context, app casting.Application, snap *store.Snapshot) (*Result, error) {
	fullName := strings.TrimSpace(app.FirstName + " " + app.LastName)

	for i := range snap.Models {
		if snap.Models[i].MatchesName(fullName) {
			return nil, apperrors.DuplicateModel(fullName)
		}
	}

	year := p.now().Year()

	plain := textutil.Sanitize(app.FirstName) + strconv.Itoa(year)
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, apperrors.InternalServer("failed to generate credentials", err)
	}

	m := model.Model{
		ID:           textutil.Slugify(app.LastName, app.FirstName) + "-" + app.ID,
		Name:         fullName,
		Username:     nextUsername(snap.Models, app.FirstName),
		PasswordHash: hash,
		Email:        app.Email,
		Phone:        app.Phone,
		Age:          ageFromBirthDate(app.BirthDate, year),
		Height:       withUnit(app.Height),
		Gender:       app.Gender,
		Location:     app.City,
		ImageURL:     placeholderImage,
		Portfolio:    []string{},
		Categories:   append([]string(nil), defaultCategories...),
		Distinctions: []model.Distinction{},
		Experience:   string(app.Experience),
		Journey:      experienceNarratives[app.Experience],
		IsPublic:     false,
		QuizScores:   map[string]int{},
		Measurements: measurements(app),
	}

	if err := p.backend.PromoteTransaction(ctx, &m, app.ID); err != nil {
		return nil, err
	}

	accepted := app
	accepted.Status = casting.StatusAccepted

	next := snap.Clone()
	next.Models = append(next.Models, m)
	for i := range next.CastingApplications {
		if next.CastingApplications[i].ID == app.ID {
			next.CastingApplications[i].Status = casting.StatusAccepted
		}
	}

	return &Result{
		Model:         m,
		Application:   accepted,
		PlainPassword: plain,
		Snapshot:      next,
	}, nil
}

// nextUsername computes Man-PMM<initial><NN> where NN is one greater than the
// highest two-digit suffix already in use for that initial, starting at 01.
func nextUsername(models []model.Model, firstName string) string {
	initial := textutil.Initial(firstName)
	prefix := usernamePrefix + initial

	highest := 0
	for i := range models {
		username := models[i].Username
		if !strings.HasPrefix(username, prefix) {
			continue
		}
		suffix := username[len(prefix):]
		if len(suffix) != 2 {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%s%02d", prefix, highest+1)
}

// ageFromBirthDate subtracts the birth year from the current year. Month and
// day are ignored, a known imprecision carried over from the admin screens.
func ageFromBirthDate(birthDate string, currentYear int) int {
	if len(birthDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(birthDate[:4])
	if err != nil || year <= 0 || year > currentYear {
		return 0
	}
	return currentYear - year
}

func withUnit(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return value + " cm"
}

func measurements(app casting.Application) map[string]string {
	out := map[string]string{}
	if v := withUnit(app.Bust); v != "" {
		out["bust"] = v
	}
	if v := withUnit(app.Waist); v != "" {
		out["waist"] = v
	}
	if v := withUnit(app.Hips); v != "" {
		out["hips"] = v
	}
	if v := strings.TrimSpace(app.ShoeSize); v != "" {
		out["shoeSize"] = v
	}
	if v := strings.TrimSpace(app.Weight); v != "" {
		out["weight"] = v + " kg"
	}
	return out
}
