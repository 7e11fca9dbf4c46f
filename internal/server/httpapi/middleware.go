package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/avelichko/garagevault/internal/common"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

// requireAuth resolves the bearer token through the identity service and
// stores the authenticated user id in the echo context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var token string
		if header := c.Request().Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}

		userID, err := s.users.ValidateToken(c.Request().Context(), token)
		if err != nil {
			return s.writeError(c, err)
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

func currentUserID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}

// writeError maps service errors to HTTP responses. Deterministic 4xx errors
// carry their stable message; everything else is logged in full and surfaced
// as a generic failure.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidEmailFormat),
		errors.Is(err, common.ErrorPasswordTooShort),
		errors.Is(err, common.ErrorEmptyTitle),
		errors.Is(err, common.ErrorEmptyDescription),
		errors.Is(err, common.ErrorTagsRequired):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})

	case errors.Is(err, common.ErrorEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})

	case errors.Is(err, common.ErrorMissingToken),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrorUserNotFound),
		errors.Is(err, common.ErrorInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": err.Error()})

	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "record not found"})

	default:
		s.logger.Error(c.Request().Context(), "internal error", "error", err,
			"method", c.Request().Method, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
}
