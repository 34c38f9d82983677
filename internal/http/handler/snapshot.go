package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/metrics"
)

type SnapshotHandler struct {
	reader SnapshotReader
}

func NewSnapshotHandler(reader SnapshotReader) *SnapshotHandler {
	return &SnapshotHandler{reader: reader}
}

// Get serves the full application snapshot. The public pages render entirely
// from this one response.
func (h *SnapshotHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reader.Current())
}

func (h *SnapshotHandler) Health(c echo.Context) error {
	status := "ok"
	if !h.reader.Initialized() {
		status = "starting"
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

func (h *SnapshotHandler) Metrics(c echo.Context) error {
	return c.JSON(http.StatusOK, metrics.Get().Snapshot())
}
