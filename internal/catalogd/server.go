// Package catalogd serves a catalog file over HTTP in the shape
// catalog.Client expects.
package catalogd

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/five82/facet/internal/catalog"
)

// Server exposes a catalog file. The file is re-read when its modification
// time or size changes.
type Server struct {
	path   string
	log    zerolog.Logger
	router *mux.Router

	mu      sync.Mutex
	doc     catalog.Document
	modTime time.Time
	size    int64
	loaded  bool
}

// NewServer creates a server for the catalog at path.
func NewServer(path string, logger zerolog.Logger) *Server {
	s := &Server{
		path:   path,
		log:    logger,
		router: mux.NewRouter(),
	}
	s.RegisterRoutes()
	return s
}

// RegisterRoutes registers all routes.
func (s *Server) RegisterRoutes() {
	s.router.Use(requestLogger(s.log))
	s.router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	s.router.HandleFunc("/api/filters", s.ListFilters).Methods(http.MethodGet)
	s.router.HandleFunc("/api/filters/{id}", s.GetFilter).Methods(http.MethodGet)
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Health handles GET /healthz
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListFilters handles GET /api/filters
func (s *Server) ListFilters(w http.ResponseWriter, r *http.Request) {
	doc, err := s.current()
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("catalog unavailable")
		http.Error(w, "catalog unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// GetFilter handles GET /api/filters/{id}
func (s *Server) GetFilter(w http.ResponseWriter, r *http.Request) {
	doc, err := s.current()
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("catalog unavailable")
		http.Error(w, "catalog unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}

	id := mux.Vars(r)["id"]
	filter, ok := catalog.NewIndex(doc.FilterItems).Filter(id)
	if !ok {
		http.Error(w, "filter not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, filter)
}

// current returns the catalog, reloading it when the file changed.
func (s *Server) current() (catalog.Document, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return catalog.Document{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		return s.doc, nil
	}

	doc, err := catalog.ReadFile(s.path)
	if err != nil {
		return catalog.Document{}, err
	}
	s.doc = doc
	s.modTime = info.ModTime()
	s.size = info.Size()
	s.loaded = true
	s.log.Info().Str("path", s.path).Int("filters", len(doc.FilterItems)).Msg("catalog loaded")
	return s.doc, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
