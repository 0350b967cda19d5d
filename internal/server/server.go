// Package server exposes contract analysis over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/ppiankov/contractlens/internal/audit"
	"github.com/ppiankov/contractlens/internal/lexicon"
	"github.com/ppiankov/contractlens/internal/loader"
	"github.com/ppiankov/contractlens/internal/model"
	"github.com/ppiankov/contractlens/internal/pipeline"
)

const (
	defaultAuditLimit = 20
	maxAuditLimit     = 500
	shutdownTimeout   = 10 * time.Second
)

// AuditLog is the read side of the audit store
type AuditLog interface {
	Recent(ctx context.Context, limit int) ([]audit.Entry, error)
	Get(ctx context.Context, id string) (*audit.Entry, error)
}

// Server routes HTTP requests to the pipeline
type Server struct {
	pipeline *pipeline.Pipeline
	audit    AuditLog
	maxBody  int64
	logger   *slog.Logger
	router   *mux.Router
}

// New builds the router. audit may be nil, in which case the audit routes answer 503.
// maxBody bounds request bodies; zero disables the bound.
func New(p *pipeline.Pipeline, auditLog AuditLog, maxBody int64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{pipeline: p, audit: auditLog, maxBody: maxBody, logger: logger, router: mux.NewRouter()}

	s.router.Use(requestLogger(logger))
	s.router.Use(recoverer(logger))
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	s.router.HandleFunc("/explain", s.handleExplain).Methods(http.MethodPost)
	s.router.HandleFunc("/audit", s.handleAuditList).Methods(http.MethodGet)
	s.router.HandleFunc("/audit/{id}", s.handleAuditGet).Methods(http.MethodGet)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, cfg model.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "address", cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type analyzeRequest struct {
	Text         string `json:"text"`
	Name         string `json:"name,omitempty"`
	ContractType string `json:"contract_type,omitempty"`
}

type explainRequest struct {
	Text string `json:"text"` // A single clause
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"version":  lexicon.Version,
		"provider": s.pipeline.Provider(),
	})
}

// handleAnalyze accepts a multipart upload (field "file"), a JSON body
// ({"text": ...}) or raw text. The contract type hint comes from the
// contract_type form field, JSON field or query parameter.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r)
	ctx := r.Context()

	var (
		doc  *loader.Document
		hint = r.URL.Query().Get("contract_type")
		err  error
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		doc, hint, err = s.loadUpload(ctx, r, hint)
	case "application/json":
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
		if req.ContractType != "" {
			hint = req.ContractType
		}
		doc, err = s.loadText(ctx, req.Name, req.Text)
	default:
		var body []byte
		body, err = io.ReadAll(r.Body)
		if err == nil {
			doc, err = s.loadText(ctx, "", string(body))
		}
	}
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	contractType, err := model.ParseContractType(hint)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.pipeline.AnalyzeDocument(ctx, doc, contractType)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) loadUpload(ctx context.Context, r *http.Request, hint string) (*loader.Document, string, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, hint, fmt.Errorf("%w: parse upload: %v", errBadRequest, err)
	}
	if v := r.FormValue("contract_type"); v != "" {
		hint = v
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, hint, fmt.Errorf("%w: missing file field", errBadRequest)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, hint, fmt.Errorf("%w: read upload: %v", errBadRequest, err)
	}
	doc, err := s.pipeline.Loader().LoadBytes(ctx, header.Filename, data)
	return doc, hint, err
}

func (s *Server) loadText(ctx context.Context, name, text string) (*loader.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", errBadRequest)
	}
	doc, err := s.pipeline.Loader().LoadBytes(ctx, "request.txt", []byte(text))
	if err != nil {
		return nil, err
	}
	doc.Name = name
	return doc, nil
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	s.limitBody(w, r)

	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	writeJSON(w, http.StatusOK, s.pipeline.ExplainText(r.Context(), req.Text))
}

func (s *Server) handleAuditList(w http.ResponseWriter, r *http.Request) {
	if s.audit == nil {
		writeError(w, http.StatusServiceUnavailable, "audit log is disabled")
		return
	}

	limit := defaultAuditLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxAuditLimit)
	}

	entries, err := s.audit.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAuditGet(w http.ResponseWriter, r *http.Request) {
	if s.audit == nil {
		writeError(w, http.StatusServiceUnavailable, "audit log is disabled")
		return
	}

	entry, err := s.audit.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) limitBody(w http.ResponseWriter, r *http.Request) {
	if s.maxBody > 0 {
		// Multipart framing adds a little on top of the document itself
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBody+64<<10)
	}
}

var errBadRequest = errors.New("bad request")

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, loader.ErrEmpty):
		return http.StatusBadRequest
	case errors.Is(err, loader.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, loader.ErrTooLarge), errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, audit.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
