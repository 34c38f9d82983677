package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/promotion"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/store"
	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/templates"
)

type fakeGateway struct {
	snapshot     *store.Snapshot
	savedApps    []casting.Application
	savedModels  []model.Model
	replacedWith *store.Snapshot
}

func newFakeGateway(snap *store.Snapshot) *fakeGateway {
	snap = snap.Clone()
	return &fakeGateway{snapshot: snap}
}

func (f *fakeGateway) Current() *store.Snapshot { return f.snapshot }
func (f *fakeGateway) Initialized() bool        { return true }

func (f *fakeGateway) SaveModel(ctx context.Context, m *model.Model) error {
	f.savedModels = append(f.savedModels, *m)
	return nil
}

func (f *fakeGateway) SaveCastingApplication(ctx context.Context, a *casting.Application) error {
	f.savedApps = append(f.savedApps, *a)
	return nil
}

func (f *fakeGateway) ReplaceSnapshot(snap *store.Snapshot) {
	f.replacedWith = snap
	f.snapshot = snap
}

type fakePromoter struct {
	result *promotion.Result
	err    error
	calls  int
}

func (f *fakePromoter) Promote(ctx context.Context, app casting.Application, snap *store.Snapshot) (*promotion.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeMailer struct {
	templateSends []string
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html string) *mailer.EmailResult {
	return &mailer.EmailResult{Success: true}
}

func (f *fakeMailer) SendTemplate(ctx context.Context, to, templateName string, data templates.Context) *mailer.EmailResult {
	f.templateSends = append(f.templateSends, templateName)
	return &mailer.EmailResult{Success: true}
}

func newContext(t *testing.T, e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSubmitForcesNewStatus(t *testing.T) {
	e := echo.New()
	gateway := newFakeGateway(&store.Snapshot{})
	mail := &fakeMailer{}
	h := NewCastingHandler(gateway, &fakePromoter{}, mail)

	c, rec := newContext(t, e, http.MethodPost, "/api/casting-applications",
		`{"firstName":"Marie","lastName":"Okemba","email":"marie@example.com","status":"Accepté"}`)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, expected 201", rec.Code)
	}
	if len(gateway.savedApps) != 1 {
		t.Fatalf("expected one saved application, got %d", len(gateway.savedApps))
	}

	saved := gateway.savedApps[0]
	if saved.Status != casting.StatusNew {
		t.Errorf("status = %q, expected %q", saved.Status, casting.StatusNew)
	}
	if saved.ID == "" {
		t.Error("no id assigned")
	}
	if len(mail.templateSends) != 1 || mail.templateSends[0] != templates.NameCastingReceipt {
		t.Errorf("receipt not sent: %v", mail.templateSends)
	}
}

func TestPromoteReplacesSnapshotAndReturnsPassword(t *testing.T) {
	e := echo.New()

	app := casting.Application{ID: "c1", FirstName: "Marie", LastName: "Okemba"}
	snap := &store.Snapshot{CastingApplications: []casting.Application{app}}
	gateway := newFakeGateway(snap)

	promoted := snap.Clone()
	promoted.Models = append(promoted.Models, model.Model{ID: "okemba-marie-c1", Name: "Marie Okemba"})
	promoted.CastingApplications[0].Status = casting.StatusAccepted

	promoter := &fakePromoter{result: &promotion.Result{
		Model:         promoted.Models[0],
		Application:   promoted.CastingApplications[0],
		PlainPassword: "marie2025",
		Snapshot:      promoted,
	}}

	h := NewCastingHandler(gateway, promoter, &fakeMailer{})

	c, rec := newContext(t, e, http.MethodPost, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Promote(c); err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["password"] != "marie2025" {
		t.Errorf("password = %v, expected marie2025", resp["password"])
	}
	if gateway.replacedWith != promoted {
		t.Error("snapshot was not replaced optimistically")
	}
}

func TestPromoteUnknownApplication(t *testing.T) {
	e := echo.New()
	gateway := newFakeGateway(&store.Snapshot{})
	promoter := &fakePromoter{}
	h := NewCastingHandler(gateway, promoter, &fakeMailer{})

	c, _ := newContext(t, e, http.MethodPost, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Promote(c)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if promoter.calls != 0 {
		t.Error("promoter invoked for unknown application")
	}
}

func TestPromoteDuplicatePropagates(t *testing.T) {
	e := echo.New()

	app := casting.Application{ID: "c1", FirstName: "Aïcha", LastName: "Ndong"}
	gateway := newFakeGateway(&store.Snapshot{CastingApplications: []casting.Application{app}})
	promoter := &fakePromoter{err: apperrors.DuplicateModel("Aïcha Ndong")}
	h := NewCastingHandler(gateway, promoter, &fakeMailer{})

	c, _ := newContext(t, e, http.MethodPost, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	err := h.Promote(c)
	if !apperrors.IsDuplicateModel(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if gateway.replacedWith != nil {
		t.Error("snapshot replaced despite failed promotion")
	}
}
