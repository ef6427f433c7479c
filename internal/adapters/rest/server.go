package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gabo-rematch/RealEstateHub-sub000/internal/core/port"
)

// Server is the REST API server.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewServer wires the routers and middleware. The streaming route skips the
// blanket Content-Type header so the event stream can set its own.
func NewServer(httpPort string, allowedOrigins []string, search *SearchHandler, filters *FiltersHandler, inquiries *InquiryHandler, baseLogger port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Session-ID", "X-Trace-ID"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/search", search.Search)
			r.Get("/search/stream", search.SearchStream)
		})
		r.Get("/filters/options", filters.GetFilterOptions)
		r.Post("/inquiries", inquiries.SubmitInquiry)
	})

	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start runs the HTTP server until it is stopped.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
