// Package server exposes the dispatcher over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"MarketAsk/internal/dispatcher"
	"MarketAsk/internal/model"
	"MarketAsk/internal/render"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Answerer is the dispatcher as seen by the HTTP API.
type Answerer interface {
	Handle(ctx context.Context, message string) model.Response
	Manual() string
}

// Server wraps the Echo HTTP server.
type Server struct {
	echo     *echo.Echo
	answerer Answerer
	examples []string
	log      zerolog.Logger
	addr     string
}

// New creates the server and registers its routes. gatherer backs /metrics;
// nil uses the default Prometheus registry.
func New(a Answerer, examples []string, gatherer prometheus.Gatherer, host string, port int, log zerolog.Logger) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))

	s := &Server{echo: e, answerer: a, examples: examples, log: log, addr: fmt.Sprintf("%s:%d", host, port)}
	e.Use(s.requestLogger)

	e.GET("/healthz", s.health)
	api := e.Group("/api")
	api.POST("/ask", s.ask)
	api.GET("/manual", s.manual)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return s
}

// Echo returns the underlying Echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start serves until Stop is called. It blocks.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.addr).Msg("http server listening")
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	s.log.Info().Msg("http server stopped")
	return nil
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.log.Debug().
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Int("status", c.Response().Status).
			Dur("elapsed", time.Since(start)).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("http request")
		return err
	}
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, APIResponse{
		Status:  status,
		Message: http.StatusText(status),
		Data:    data,
	})
}

func (s *Server) health(c echo.Context) error {
	return respond(c, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ask(c echo.Context) error {
	req := &AskRequest{}
	if errs := readAndValidate(c, req); errs != nil {
		return respond(c, http.StatusBadRequest, errs)
	}
	if strings.TrimSpace(req.Query) == "" {
		return respond(c, http.StatusBadRequest, []ValidationError{{Code: "ERR_REQUIRED", Field: "query", Message: "query is required"}})
	}

	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	resp := s.answerer.Handle(dispatcher.WithRequestID(c.Request().Context(), rid), req.Query)
	text := resp.Text
	if req.Format == "html" {
		text = render.TelegramHTML(text)
	}
	return respond(c, http.StatusOK, AskResponse{
		RequestID: rid,
		Intent:    resp.Intent,
		Text:      text,
		Chart:     resp.Chart,
	})
}

func (s *Server) manual(c echo.Context) error {
	return respond(c, http.StatusOK, ManualResponse{Text: s.answerer.Manual(), Examples: s.examples})
}
