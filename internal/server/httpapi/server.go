// Package httpapi exposes the diary collection over HTTP: JSON endpoints
// for auth and entry mutations, and a WebSocket endpoint that streams full
// per-owner snapshots to live watchers.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/harudiary/haru/internal/dateutil"
	"github.com/harudiary/haru/internal/logging"
	"github.com/harudiary/haru/internal/server/hub"
	"github.com/harudiary/haru/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	entries   *services.EntryService
	hub       *hub.Hub
	jwtSecret []byte
	validate  *validator.Validate
	upgrader  websocket.Upgrader
}

func NewServer(address string, l logging.Logger, us *services.UserService, es *services.EntryService, h *hub.Hub, secretKey string) (*Server, error) {
	v := validator.New()
	if err := v.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
		return dateutil.Valid(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		entries:   es,
		hub:       h,
		jwtSecret: []byte(secretKey),
		validate:  v,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 5 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  4096,
		},
	}, nil
}

// Router builds the chi route table. Split out of Run so tests can mount it
// on httptest.Server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", s.handlePing)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/refresh", s.handleRefresh)

		r.Group(func(r chi.Router) {
			r.Use(s.withAuth)
			r.Post("/entries", s.handleCreateEntry)
			r.Put("/entries/{id}", s.handleUpdateEntry)
			r.Delete("/entries/{id}", s.handleDeleteEntry)
			r.Get("/entries", s.handleListEntries)
			r.Get("/entries/watch", s.handleWatch)
		})
	})

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
