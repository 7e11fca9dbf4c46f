// Package httpapi is the HTTP boundary over the identity and record
// services. It owns request decoding, the auth middleware and the mapping
// from service errors to status codes; all business rules live below it.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avelichko/garagevault/internal/logging"
	"github.com/avelichko/garagevault/internal/server/media"
	"github.com/avelichko/garagevault/internal/server/records"
	"github.com/avelichko/garagevault/internal/server/users"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	users   *users.Service
	records *records.Service
	media   *media.Service
}

func NewServer(address string, l logging.Logger, us *users.Service, rs *records.Service, ms *media.Service) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		records: rs,
		media:   ms,
	}
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/api/health", s.handleHealth)

	e.POST("/api/auth/register", s.handleRegister)
	e.POST("/api/auth/login", s.handleLogin)
	e.GET("/api/auth/me", s.handleMe, s.requireAuth)

	g := e.Group("/api/records", s.requireAuth)
	g.GET("", s.handleList)
	g.GET("/search", s.handleSearch)
	g.POST("", s.handleCreate)
	g.GET("/:id", s.handleGet)
	g.PUT("/:id", s.handleUpdate)
	g.DELETE("/:id", s.handleDelete)

	e.POST("/api/uploads", s.handleUploadURL, s.requireAuth)
	e.GET("/api/uploads/url", s.handleDownloadURL, s.requireAuth)

	return e
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	e := s.routes()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
