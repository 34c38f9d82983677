package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/templates"
)

type CastingHandler struct {
	gateway  Gateway
	promoter Promoter
	mailer   Mailer
}

func NewCastingHandler(gateway Gateway, promoter Promoter, mailer Mailer) *CastingHandler {
	return &CastingHandler{gateway: gateway, promoter: promoter, mailer: mailer}
}

// Submit handles the public casting form. New submissions always enter with
// status Nouveau; a receipt email is sent best-effort.
func (h *CastingHandler) Submit(c echo.Context) error {
	var app casting.Application
	if err := c.Bind(&app); err != nil {
		return apperrors.BadRequest("invalid application payload")
	}
	if app.FirstName == "" || app.LastName == "" {
		return apperrors.Validation("first and last name are required")
	}

	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	app.Status = casting.StatusNew
	if app.SubmittedAt == "" {
		app.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := h.gateway.SaveCastingApplication(c.Request().Context(), &app); err != nil {
		return err
	}

	if app.Email != "" {
		res := h.mailer.SendTemplate(c.Request().Context(), app.Email,
			templates.NameCastingReceipt, templates.Context{"firstName": app.FirstName})
		if !res.Success {
			log.Printf("casting: receipt mail to %s failed: %s", app.Email, res.Error)
		}
	}

	return c.JSON(http.StatusCreated, app)
}

// Save lets the admin screen change an application, including its status.
func (h *CastingHandler) Save(c echo.Context) error {
	var app casting.Application
	if err := c.Bind(&app); err != nil {
		return apperrors.BadRequest("invalid application payload")
	}
	if app.ID == "" {
		return apperrors.Validation("application id is required")
	}

	if err := h.gateway.SaveCastingApplication(c.Request().Context(), &app); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, app)
}

type promoteResponse struct {
	Model       any    `json:"model"`
	Application any    `json:"application"`
	Password    string `json:"password"`
}

// Promote converts an application into a model profile. The synthesized
// plaintext password appears in this response and nowhere else.
func (h *CastingHandler) Promote(c echo.Context) error {
	id := c.Param("id")
	snap := h.gateway.Current()

	var app *casting.Application
	for i := range snap.CastingApplications {
		if snap.CastingApplications[i].ID == id {
			app = &snap.CastingApplications[i]
			break
		}
	}
	if app == nil {
		return apperrors.NotFound("casting application not found")
	}

	result, err := h.promoter.Promote(c.Request().Context(), *app, snap)
	if err != nil {
		return err
	}

	// Optimistic local publish; the change listener's refresh confirms it.
	h.gateway.ReplaceSnapshot(result.Snapshot)

	return c.JSON(http.StatusOK, promoteResponse{
		Model:       result.Model,
		Application: result.Application,
		Password:    result.PlainPassword,
	})
}
