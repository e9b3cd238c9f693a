package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"screencheck/internal/history"
	"screencheck/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger  *logrus.Logger
	config  *types.Config
	history *history.Service

	server *http.Server
}

func New(config *types.Config, logger *logrus.Logger, historySvc *history.Service) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger:  logger,
		config:  config,
		history: historySvc,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

// Handler exposes the router, primarily for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.RequestIDMiddleware)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/history/sessions", s.handleListSessions, http.MethodGet)
	r.HandleFunc("/api/history/sessions/:id", s.handleDeleteSession, http.MethodDelete)
	r.HandleFunc("/api/history/uploads/:id", s.handleUploadDetail, http.MethodGet)
	r.HandleFunc("/api/history/stats", s.handleStats, http.MethodGet)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
