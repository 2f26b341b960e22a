// Package api provides the HTTP transport: syllabus upload, event CRUD, and
// calendar export over a shared in-memory store.
package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/plannerpal/plannerpal/internal/store"
)

const defaultMaxUploadBytes = 16 << 20 // 16 MB

// Options tune the transport layer; zero values get sane defaults.
type Options struct {
	AllowedOrigins []string
	MaxUploadBytes int64
}

// Server wires the event store to the HTTP routes.
type Server struct {
	store          *store.Store
	maxUploadBytes int64
	handler        http.Handler
}

func New(st *store.Store, opts Options) *Server {
	s := &Server{
		store:          st,
		maxUploadBytes: opts.MaxUploadBytes,
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = defaultMaxUploadBytes
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/upload", s.handleUpload).Methods(http.MethodPost)
	r.HandleFunc("/api/events", s.handleListEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/events", s.handleCreateEvent).Methods(http.MethodPost)
	r.HandleFunc("/api/events/{id:[0-9]+}", s.handleUpdateEvent).Methods(http.MethodPut)
	r.HandleFunc("/api/events/{id:[0-9]+}", s.handleDeleteEvent).Methods(http.MethodDelete)
	r.HandleFunc("/api/export/ics", s.handleExportICS).Methods(http.MethodGet)
	r.HandleFunc("/api/export/pdf", s.handleExportPDF).Methods(http.MethodGet)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	s.handler = cors(requestLogger(r))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
