package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ratefinder/core/catalog"
	"ratefinder/core/search"
	"ratefinder/internal/errors"
	"ratefinder/internal/logging"
)

// Server is the HTTP front end over the search pipeline.
type Server struct {
	searcher *search.Searcher
	repo     *catalog.Repository
	router   chi.Router
	log      *zap.Logger
}

// NewServer creates a Server and registers its routes.
func NewServer(searcher *search.Searcher, repo *catalog.Repository) *Server {
	s := &Server{
		searcher: searcher,
		repo:     repo,
		router:   chi.NewRouter(),
		log:      logging.Logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Post("/search", s.handleSearch)
	s.router.Post("/load", s.handleLoad)
	s.router.Get("/services", s.handleServices)
	s.router.Get("/health", s.handleHealth)

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleSearch handles POST /search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, SearchResponse{
			Success:   false,
			Error:     "invalid JSON body",
			ErrorType: string(errors.TypeInvalidQuery),
		})
		return
	}

	result, err := s.searcher.Search(req.Query, req.UseCache)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		s.log.Warn("search failed", zap.String("query", req.Query), zap.Error(err))
		s.writeJSON(w, statusFor(err), SearchResponse{
			Success:      false,
			Error:        err.Error(),
			ErrorType:    errorType(err),
			SearchTimeMs: elapsed,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, SearchResponse{
		Success:      true,
		Result:       result,
		SearchTimeMs: elapsed,
	})
}

// handleLoad handles POST /load.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		s.writeJSON(w, http.StatusBadRequest, LoadResponse{
			Success: false,
			Error:   "body must carry a non-empty path",
		})
		return
	}

	services, err := s.repo.Load(req.Path)
	if err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, LoadResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	names := make([]string, len(services))
	for i, svc := range services {
		names[i] = svc.Name
	}
	s.writeJSON(w, http.StatusOK, LoadResponse{Success: true, Services: names})
}

// handleServices handles GET /services.
func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, ServicesResponse{Services: s.searcher.Services()})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		DataLoaded: s.searcher.Loaded(),
		Services:   s.repo.Count(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("response encode failed", zap.Error(err))
	}
}

// statusFor maps error categories onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsType(err, errors.TypeInvalidZone),
		errors.IsType(err, errors.TypeInvalidWeight),
		errors.IsType(err, errors.TypeInvalidQuery):
		return http.StatusBadRequest
	case errors.IsType(err, errors.TypeServiceNotAvailable),
		errors.IsType(err, errors.TypePriceNotFound):
		return http.StatusNotFound
	case errors.IsType(err, errors.TypeDataNotLoaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorType(err error) string {
	if e, ok := err.(*errors.Error); ok {
		return string(e.Type)
	}
	return string(errors.TypeInternal)
}
