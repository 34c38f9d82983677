package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/templates"
)

// MailHandler mirrors the send-email function endpoint: a literal
// subject/html message, or one of the named receipt templates with its data.
type MailHandler struct {
	mailer Mailer
}

func NewMailHandler(mailer Mailer) *MailHandler {
	return &MailHandler{mailer: mailer}
}

type sendMailRequest struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	HTML     string            `json:"html"`
	Template string            `json:"template"`
	Data     templates.Context `json:"data"`
}

func (h *MailHandler) Send(c echo.Context) error {
	var req sendMailRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("invalid mail payload")
	}

	ctx := c.Request().Context()

	var result *mailer.EmailResult
	if req.Template != "" {
		result = h.mailer.SendTemplate(ctx, req.To, req.Template, req.Data)
	} else {
		result = h.mailer.Send(ctx, req.To, req.Subject, req.HTML)
	}

	if !result.Success {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": result.Error})
	}

	return c.JSON(http.StatusOK, map[string]bool{"sent": !result.Skipped})
}
