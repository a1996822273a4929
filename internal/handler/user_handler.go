package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobdock/internal/response"
	"jobdock/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	accounts service.AccountService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(accounts service.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// GetProfile godoc
// @Summary Fetch a user's profile by email
// @Tags users
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	email := c.QueryParam("email")

	user, err := h.accounts.GetProfile(c.Request().Context(), email)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, http.StatusOK, "profile fetched", user)
}
