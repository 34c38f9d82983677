package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/auth"
	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/password"
)

type AuthHandler struct {
	jwtService        *auth.JWTService
	adminUsername     string
	adminPasswordHash string
}

func NewAuthHandler(jwtService *auth.JWTService, adminUsername, adminPasswordHash string) *AuthHandler {
	return &AuthHandler{
		jwtService:        jwtService,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges the back-office credentials for a bearer token. With no
// admin password hash configured, login is disabled entirely.
func (h *AuthHandler) Login(c echo.Context) error {
	if h.adminPasswordHash == "" {
		return apperrors.Forbidden("admin login is not configured")
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.BadRequest("invalid login payload")
	}

	if req.Username != h.adminUsername || !password.Verify(req.Password, h.adminPasswordHash) {
		return apperrors.Unauthorized("invalid credentials")
	}

	token, err := h.jwtService.Generate(req.Username, auth.RoleAdmin)
	if err != nil {
		return apperrors.InternalServer("failed to issue token", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
