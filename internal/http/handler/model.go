package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/password"
)

type ModelHandler struct {
	gateway Gateway
}

func NewModelHandler(gateway Gateway) *ModelHandler {
	return &ModelHandler{gateway: gateway}
}

type saveModelRequest struct {
	model.Model
	// Password, when set by the admin form, replaces the stored hash.
	Password string `json:"password,omitempty"`
}

// Save upserts a model profile. Backend errors propagate unchanged; the admin
// screen is responsible for showing them and keeping the form editable.
func (h *ModelHandler) Save(c echo.Context) error {
	var req saveModelRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("invalid model payload")
	}
	if req.ID == "" {
		return apperrors.Validation("model id is required")
	}
	if req.Name == "" {
		return apperrors.Validation("model name is required")
	}

	if req.Password != "" {
		hash, err := password.Hash(req.Password)
		if err != nil {
			return apperrors.InternalServer("failed to hash password", err)
		}
		req.Model.PasswordHash = hash
	}

	if err := h.gateway.SaveModel(c.Request().Context(), &req.Model); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, req.Model)
}
