package promotion

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/store"
	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/password"
)

type fakeBackend struct {
	err       error
	committed []string
}

func (f *fakeBackend) PromoteTransaction(ctx context.Context, m *model.Model, applicationID string) error {
	if f.err != nil {
		return f.err
	}
	f.committed = append(f.committed, applicationID)
	return nil
}

func newPromoter(backend Backend) *Promoter {
	p := New(backend)
	p.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

func snapshotWithModels(models ...model.Model) *store.Snapshot {
	snap := &store.Snapshot{Models: models}
	return snap.Clone()
}

func TestUsernameSynthesis(t *testing.T) {
	snap := snapshotWithModels(
		model.Model{ID: "a", Name: "Jade A", Username: "Man-PMMJ01"},
		model.Model{ID: "b", Name: "Julia B", Username: "Man-PMMJ02"},
	)

	app := casting.Application{ID: "app-1", FirstName: "Jeanne", LastName: "Mba"}

	res, err := newPromoter(&fakeBackend{}).Promote(context.Background(), app, snap)
	if err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}
	if res.Model.Username != "Man-PMMJ03" {
		t.Errorf("username = %q, expected %q", res.Model.Username, "Man-PMMJ03")
	}
}

func TestUsernameStartsAtOne(t *testing.T) {
	app := casting.Application{ID: "app-1", FirstName: "Marie", LastName: "Okemba"}

	res, err := newPromoter(&fakeBackend{}).Promote(context.Background(), app, snapshotWithModels())
	if err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}
	if res.Model.Username != "Man-PMMM01" {
		t.Errorf("username = %q, expected %q", res.Model.Username, "Man-PMMM01")
	}
}

// An applicant whose name differs from an existing model only by case or
// diacritics is rejected before any write: "aicha NDONG" is a duplicate of
// "Aïcha Ndong".
func TestDuplicateNameRejectedBeforeWrite(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
	}{
		{"case and diacritics dropped", "aicha", "NDONG"},
		{"diacritics kept", "aïcha", "NDONG"},
		{"exact match", "Aïcha", "Ndong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshotWithModels(
				model.Model{ID: "aicha", Name: "Aïcha Ndong", Username: "Man-PMMA01"},
			)

			backend := &fakeBackend{}
			app := casting.Application{ID: "app-2", FirstName: tt.firstName, LastName: tt.lastName}

			_, err := newPromoter(backend).Promote(context.Background(), app, snap)
			if !apperrors.IsDuplicateModel(err) {
				t.Fatalf("expected duplicate-model error, got %v", err)
			}
			if len(backend.committed) != 0 {
				t.Errorf("backend received %d writes, expected none", len(backend.committed))
			}
			if len(snap.Models) != 1 {
				t.Errorf("models list length changed to %d", len(snap.Models))
			}
		})
	}
}

func TestPromotionUpdatesBothCollections(t *testing.T) {
	app := casting.Application{
		ID:        "app-3",
		FirstName: "Marie",
		LastName:  "Okemba",
		Status:    casting.StatusPreselected,
	}
	snap := snapshotWithModels()
	snap.CastingApplications = []casting.Application{app}

	res, err := newPromoter(&fakeBackend{}).Promote(context.Background(), app, snap)
	if err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}

	found := false
	for _, m := range res.Snapshot.Models {
		if m.ID == res.Model.ID {
			found = true
		}
	}
	if !found {
		t.Error("promoted model missing from resulting snapshot")
	}
	if got := res.Snapshot.CastingApplications[0].Status; got != casting.StatusAccepted {
		t.Errorf("application status = %q, expected %q", got, casting.StatusAccepted)
	}

	// The input snapshot is left untouched; the result is a new object.
	if len(snap.Models) != 0 {
		t.Errorf("input snapshot mutated: %d models", len(snap.Models))
	}
	if snap.CastingApplications[0].Status != casting.StatusPreselected {
		t.Errorf("input application status mutated to %q", snap.CastingApplications[0].Status)
	}
}

func TestBackendFailurePropagates(t *testing.T) {
	backendErr := errors.New("connection reset")
	app := casting.Application{ID: "app-4", FirstName: "Marie", LastName: "Okemba"}

	_, err := newPromoter(&fakeBackend{err: backendErr}).Promote(context.Background(), app, snapshotWithModels())
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error to propagate, got %v", err)
	}
}

func TestEndToEndSynthesis(t *testing.T) {
	app := casting.Application{
		ID:         "c123",
		FirstName:  "Marie",
		LastName:   "Okemba",
		BirthDate:  "2000-05-01",
		Height:     "178",
		Experience: casting.ExperienceBeginner,
	}

	res, err := newPromoter(&fakeBackend{}).Promote(context.Background(), app, snapshotWithModels())
	if err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}

	year := 2025
	if res.Model.Username != "Man-PMMM01" {
		t.Errorf("username = %q, expected Man-PMMM01", res.Model.Username)
	}
	if expected := "marie" + strconv.Itoa(year); res.PlainPassword != expected {
		t.Errorf("password = %q, expected %q", res.PlainPassword, expected)
	}
	if !password.Verify(res.PlainPassword, res.Model.PasswordHash) {
		t.Error("stored hash does not match the returned plaintext")
	}
	if res.Model.Journey != experienceNarratives[casting.ExperienceBeginner] {
		t.Errorf("journey = %q, expected the beginner narrative", res.Model.Journey)
	}
	if expected := year - 2000; res.Model.Age != expected {
		t.Errorf("age = %d, expected %d", res.Model.Age, expected)
	}
	if res.Model.Height != "178 cm" {
		t.Errorf("height = %q, expected %q", res.Model.Height, "178 cm")
	}
	if res.Model.ID != "okemba-marie-c123" {
		t.Errorf("id = %q, expected %q", res.Model.ID, "okemba-marie-c123")
	}
}

func TestAgeFromBirthDate(t *testing.T) {
	tests := []struct {
		birthDate string
		expected  int
	}{
		{"2000-05-01", 25},
		{"1999", 26},
		{"", 0},
		{"abcd-01-01", 0},
		{"2030-01-01", 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.birthDate), func(t *testing.T) {
			if got := ageFromBirthDate(tt.birthDate, 2025); got != tt.expected {
				t.Errorf("ageFromBirthDate(%q) = %d, expected %d", tt.birthDate, got, tt.expected)
			}
		})
	}
}
