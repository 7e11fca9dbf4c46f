package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleUploadURL hands out a presigned PUT URL plus the storage key the
// client should record as the image URI once the upload completes.
func (s *Server) handleUploadURL(c echo.Context) error {
	key, url, err := s.media.GetPresignedPutUrl(c.Request().Context())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"key": key, "uploadUrl": url})
}

// handleDownloadURL resolves a stored image key to a short-lived GET URL.
func (s *Server) handleDownloadURL(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "key is required"})
	}

	url, err := s.media.GetPresignedGetUrl(c.Request().Context(), key)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}
