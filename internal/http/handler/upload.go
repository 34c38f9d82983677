package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
)

type UploadHandler struct {
	uploader Uploader
	bucket   string
}

func NewUploadHandler(uploader Uploader, bucket string) *UploadHandler {
	return &UploadHandler{uploader: uploader, bucket: bucket}
}

// Upload stores one form file and returns its public URL. Failures come back
// as a displayed error string; there is no retry.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.BadRequest("no file provided")
	}
	folder := c.FormValue("folder")

	src, err := fileHeader.Open()
	if err != nil {
		return apperrors.BadRequest("failed to read file")
	}
	defer src.Close()

	url, err := h.uploader.Upload(c.Request().Context(), src, h.bucket, folder, fileHeader.Filename)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
