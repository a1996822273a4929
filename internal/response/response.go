package response

import (
	"github.com/labstack/echo/v4"

	apperrors "jobdock/internal/errors"
)

// Envelope is the uniform JSON shape every endpoint responds with.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK writes a success envelope with the given status.
func OK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail writes a failure envelope. Message is the human-readable summary;
// detail carries the raw underlying error for diagnostics.
func Fail(c echo.Context, status int, message, detail string) error {
	return c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// FromError maps a domain error onto the envelope and status table. The
// message comes from the mapping (generic for internal failures); the raw
// error detail rides along in Error for diagnostics.
func FromError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return Fail(c, httpErr.StatusCode, httpErr.Message, err.Error())
}
