package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/operations"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/repository/postgres"
	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/mailer/templates"
)

// ContactHandler covers the remaining public forms: contact messages,
// booking requests and fashion-day reservations. Each write goes into its
// collection; receipts go out best-effort.
type ContactHandler struct {
	writer RecordWriter
	mailer Mailer
}

func NewContactHandler(writer RecordWriter, mailer Mailer) *ContactHandler {
	return &ContactHandler{writer: writer, mailer: mailer}
}

func (h *ContactHandler) Contact(c echo.Context) error {
	var msg operations.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return apperrors.BadRequest("invalid message payload")
	}
	if msg.Email == "" || msg.Body == "" {
		return apperrors.Validation("email and message are required")
	}

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	record := map[string]any{
		"id":        msg.ID,
		"name":      msg.Name,
		"email":     msg.Email,
		"subject":   msg.Subject,
		"body":      msg.Body,
		"createdAt": msg.CreatedAt,
	}
	if err := h.writer.UpsertRecord(c.Request().Context(), postgres.TableContactMessages, record); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, msg)
}

func (h *ContactHandler) Booking(c echo.Context) error {
	var req operations.BookingRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("invalid booking payload")
	}
	if req.ClientEmail == "" {
		return apperrors.Validation("client email is required")
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.Status == "" {
		req.Status = "Nouveau"
	}
	req.SubmittedAt = time.Now().UTC().Format(time.RFC3339)

	record := map[string]any{
		"id":          req.ID,
		"clientName":  req.ClientName,
		"clientEmail": req.ClientEmail,
		"clientPhone": req.ClientPhone,
		"modelName":   req.ModelName,
		"eventType":   req.EventType,
		"startDate":   req.StartDate,
		"endDate":     req.EndDate,
		"message":     req.Message,
		"status":      req.Status,
		"submittedAt": req.SubmittedAt,
	}
	if err := h.writer.UpsertRecord(c.Request().Context(), postgres.TableBookingRequests, record); err != nil {
		return err
	}

	res := h.mailer.SendTemplate(c.Request().Context(), req.ClientEmail,
		templates.NameBookingReceipt, templates.Context{
			"clientName": req.ClientName,
			"modelName":  req.ModelName,
		})
	if !res.Success {
		log.Printf("booking: receipt mail to %s failed: %s", req.ClientEmail, res.Error)
	}

	return c.JSON(http.StatusCreated, req)
}

func (h *ContactHandler) FashionDay(c echo.Context) error {
	var res operations.FashionDayReservation
	if err := c.Bind(&res); err != nil {
		return apperrors.BadRequest("invalid reservation payload")
	}
	if res.Email == "" {
		return apperrors.Validation("email is required")
	}

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if res.Status == "" {
		res.Status = "Nouveau"
	}
	res.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	record := map[string]any{
		"id":        res.ID,
		"name":      res.Name,
		"email":     res.Email,
		"phone":     res.Phone,
		"role":      res.Role,
		"seats":     res.Seats,
		"status":    res.Status,
		"createdAt": res.CreatedAt,
	}
	if err := h.writer.UpsertRecord(c.Request().Context(), postgres.TableFashionDayReservation, record); err != nil {
		return err
	}

	mailRes := h.mailer.SendTemplate(c.Request().Context(), res.Email,
		templates.NameFashionDayReceipt, templates.Context{
			"name":  res.Name,
			"seats": res.Seats,
		})
	if !mailRes.Success {
		log.Printf("fashion day: receipt mail to %s failed: %s", res.Email, mailRes.Error)
	}

	return c.JSON(http.StatusCreated, res)
}
