// Package api serves the file REST API with echo.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/server/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	shutdownTimeout = 10 * time.Second
	// multipartOverhead is allowed on top of the max file size for headers
	// and boundaries.
	multipartOverhead = 1 << 20
)

type Server struct {
	address string
	echo    *echo.Echo
	logger  logging.Logger
}

// NewServer builds the API. maxUploadSize bounds request bodies; zero or
// less disables the limit.
func NewServer(address string, svc FileService, logger logging.Logger, maxUploadSize int64) *Server {
	logger = logger.With("module", "http_server")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug(c.Request().Context(), "request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	if maxUploadSize > 0 {
		e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", maxUploadSize+multipartOverhead)))
	}

	h := &handlers{svc: svc}
	g := e.Group("/api")
	g.POST("/files/upload/", h.upload(models.KindFile))
	g.POST("/files/upload-label/", h.upload(models.KindLabel))
	g.GET("/files/list/", h.list)
	g.DELETE("/files/delete/:id/", h.delete)
	g.GET("/health/", h.health)

	return &Server{address: address, echo: e, logger: logger}
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Addr returns the bound address once the server listens, nil before.
func (s *Server) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
