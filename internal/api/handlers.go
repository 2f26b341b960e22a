package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/plannerpal/plannerpal/internal/agenda"
	"github.com/plannerpal/plannerpal/internal/deadline"
	"github.com/plannerpal/plannerpal/internal/event"
	"github.com/plannerpal/plannerpal/internal/htmltext"
	"github.com/plannerpal/plannerpal/internal/ics"
	"github.com/plannerpal/plannerpal/internal/pdftext"
	"github.com/plannerpal/plannerpal/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "healthy",
		"total_events": s.store.Len(),
	})
}

// handleUpload accepts a syllabus document, extracts its plain text, runs
// the deadline engine over it, and appends every extracted event to the
// store stamped as a pdf_upload.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()
	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No selected file")
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read upload: %v", err))
		return
	}

	var text string
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".pdf":
		text, err = pdftext.FromBytes(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Error reading PDF: %v", err))
			return
		}
	case ".html", ".htm":
		text = htmltext.FromHTML(raw)
	case ".txt", ".text":
		text = string(raw)
	default:
		writeError(w, http.StatusBadRequest, "File must be a PDF, HTML, or text document")
		return
	}
	log.Debug().Int("chars", len(text)).Str("file", header.Filename).Msg("extracted upload text")

	extracted := deadline.Extract(text)
	created := make([]event.Event, 0, len(extracted))
	for _, ev := range extracted {
		created = append(created, s.store.Add(event.Event{
			Title:         ev.Title,
			Type:          ev.Type,
			Start:         ev.Start,
			End:           ev.End,
			AllDay:        ev.AllDay,
			Source:        event.SourcePDFUpload,
			ExtractedFrom: ev.ExtractedFrom,
		}))
	}
	log.Info().Int("events", len(created)).Str("file", header.Filename).Msg("syllabus processed")

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      fmt.Sprintf("Successfully extracted %d deadlines from syllabus", len(created)),
		"events":       created,
		"total_events": s.store.Len(),
	})
}

func (s *Server) handleListEvents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"events": s.store.List()})
}

// handleCreateEvent builds a manual event from caller-supplied fields. The
// extraction engine is not involved.
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       *string `json:"title"`
		Start       *string `json:"start"`
		End         *string `json:"end"`
		Type        *string `json:"type"`
		AllDay      *bool   `json:"allDay"`
		Description string  `json:"description"`
		Course      string  `json:"course"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", req.Title},
		{"start", req.Start},
		{"end", req.End},
	} {
		if f.value == nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Missing required field: %s", f.name))
			return
		}
	}

	typ := event.CategoryAssignment
	if req.Type != nil {
		var err error
		typ, err = event.ParseCategory(*req.Type)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	allDay := true
	if req.AllDay != nil {
		allDay = *req.AllDay
	}

	created := s.store.Add(event.Event{
		Title:       *req.Title,
		Type:        typ,
		Start:       *req.Start,
		End:         *req.End,
		AllDay:      allDay,
		Source:      event.SourceManual,
		Description: req.Description,
		Course:      req.Course,
	})
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Event created successfully",
		"event":   created,
	})
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	var patch store.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	updated, err := s.store.Update(id, patch)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Event updated successfully",
		"event":   updated,
	})
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	if err := s.store.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

func (s *Server) handleExportICS(w http.ResponseWriter, _ *http.Request) {
	feed := ics.Export(s.store.List())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="planner_pal_calendar.ics"`)
	if _, err := io.WriteString(w, feed); err != nil {
		log.Error().Err(err).Msg("write ics export")
	}
}

func (s *Server) handleExportPDF(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := agenda.WritePDF(&buf, s.store.List()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("render agenda: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="planner_pal_agenda.pdf"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("write pdf export")
	}
}
