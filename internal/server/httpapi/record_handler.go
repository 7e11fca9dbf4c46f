package httpapi

import (
	"net/http"
	"strings"

	"github.com/avelichko/garagevault/internal/common"
	"github.com/avelichko/garagevault/internal/server/records"
	"github.com/labstack/echo/v4"
)

type createRecordReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// updateRecordReq distinguishes absent fields (nil) from explicitly empty
// ones, so a partial update only touches what the client sent.
type updateRecordReq struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

func (s *Server) handleList(c echo.Context) error {
	list, err := s.records.List(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleSearch(c echo.Context) error {
	query := c.QueryParam("q")
	tags := splitTags(c.QueryParam("tags"))

	list, err := s.records.Search(c.Request().Context(), currentUserID(c), query, tags)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleCreate(c echo.Context) error {
	var req createRecordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	// submission boundary rule: a record starts with at least one tag
	if len(req.Tags) == 0 {
		return s.writeError(c, common.ErrorTagsRequired)
	}

	record, err := s.records.Create(c.Request().Context(), currentUserID(c), records.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Images:      req.Images,
	})
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, record)
}

func (s *Server) handleGet(c echo.Context) error {
	record, err := s.records.Get(c.Request().Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

func (s *Server) handleUpdate(c echo.Context) error {
	var req updateRecordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	record, err := s.records.Update(c.Request().Context(), currentUserID(c), c.Param("id"), records.Patch{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Images:      req.Images,
	})
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

func (s *Server) handleDelete(c echo.Context) error {
	if err := s.records.Delete(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// splitTags parses the comma-separated tag filter, dropping empty items.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
