package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
)

// RecordHandler gives the admin screens CRUD over the small collections
// (news, testimonials, services, partners, payments, absences, ...) that
// have no typed repository. Records travel camelCase and are renamed to the
// backend's snake_case at the repository boundary.
type RecordHandler struct {
	writer RecordWriter
}

func NewRecordHandler(writer RecordWriter) *RecordHandler {
	return &RecordHandler{writer: writer}
}

func (h *RecordHandler) Upsert(c echo.Context) error {
	collection := c.Param("collection")

	var record map[string]any
	if err := c.Bind(&record); err != nil {
		return apperrors.BadRequest("invalid record payload")
	}
	if len(record) == 0 {
		return apperrors.Validation("record is empty")
	}

	if err := h.writer.UpsertRecord(c.Request().Context(), collection, record); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, record)
}

func (h *RecordHandler) Delete(c echo.Context) error {
	collection := c.Param("collection")
	id := c.Param("id")
	if id == "" {
		return apperrors.Validation("record id is required")
	}

	if err := h.writer.DeleteRecord(c.Request().Context(), collection, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
