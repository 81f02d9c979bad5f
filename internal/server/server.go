// Package server exposes the calculator over HTTP, one isolated editing
// session per client.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vhscom/calc/internal/api"
	"github.com/vhscom/calc/internal/calc"
	"github.com/vhscom/calc/internal/session"
)

// Options configures a Server.
type Options struct {
	Evaluator calc.Evaluator
	// APIKey, when set, is required as a bearer token on every /v1 route.
	APIKey string
	Logger *slog.Logger
}

// Server is the calculator HTTP service.
type Server struct {
	mu     sync.RWMutex
	eval   calc.Evaluator
	apiKey string
	log    *slog.Logger
	store  *Store
	router *httprouter.Router
	server *http.Server
}

// New creates a server and its routes.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		eval:   opts.Evaluator,
		apiKey: opts.APIKey,
		log:    log,
		store:  NewStore(session.Controller{Evaluator: opts.Evaluator, Logger: log}),
		router: httprouter.New(),
	}
	s.setupRoutes()
	return s
}

// SetEvaluator swaps the evaluator for /v1/evaluate and all sessions.
func (s *Server) SetEvaluator(e calc.Evaluator) {
	s.mu.Lock()
	s.eval = e
	s.mu.Unlock()
	s.store.SetEvaluator(e)
}

func (s *Server) evaluator() calc.Evaluator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eval
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	s.router.POST("/v1/evaluate", s.authed(s.handleEvaluate))
	s.router.POST("/v1/sessions", s.authed(s.handleCreateSession))
	s.router.GET("/v1/sessions/:id", s.authed(s.handleGetSession))
	s.router.DELETE("/v1/sessions/:id", s.authed(s.handleDeleteSession))
	s.router.POST("/v1/sessions/:id/buttons", s.authed(s.handlePress))
}

// Handler returns the HTTP handler with request logging.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		s.router.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

// ListenAndServe serves on addr until Shutdown is called.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("listening", "addr", addr)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) authed(h httprouter.Handle) httprouter.Handle {
	if s.apiKey == "" {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if r.Header.Get("Authorization") != "Bearer "+s.apiKey {
			writeError(w, http.StatusUnauthorized, api.APIError{Error: "Unauthorized", Code: api.CodeUnauthorized})
			return
		}
		h(w, r, ps)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": s.store.Len(),
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req api.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, api.APIError{Error: fmt.Sprintf("decode body: %v", err), Code: api.CodeInvalidBody})
		return
	}

	v, err := s.evaluator().Evaluate(req.Expression)
	if err != nil {
		apiErr := api.APIError{Error: err.Error(), Code: api.CodeSyntaxError}
		var se *calc.SyntaxError
		if errors.As(err, &se) {
			apiErr.Position = &se.Pos
		}
		s.log.Debug("evaluation failed", "expression", req.Expression, "error", err)
		writeError(w, http.StatusUnprocessableEntity, apiErr)
		return
	}

	resp := api.EvaluateResponse{Result: calc.Format(v)}
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		resp.Value = &v
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, st := s.store.Create()
	writeJSON(w, http.StatusCreated, view(id, st))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	st, ok := s.store.Get(id)
	if !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, view(id, st))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !s.store.Delete(ps.ByName("id")) {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, api.DeleteSessionResponse{Success: true})
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req api.PressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, api.APIError{Error: fmt.Sprintf("decode body: %v", err), Code: api.CodeInvalidBody})
		return
	}
	b, ok := session.ParseButton(req.Button)
	if !ok {
		writeError(w, http.StatusBadRequest, api.APIError{Error: fmt.Sprintf("unknown button %q", req.Button), Code: api.CodeInvalidButton})
		return
	}

	id := ps.ByName("id")
	st, ok := s.store.Press(id, b)
	if !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, view(id, st))
}

func view(id string, st session.State) api.Session {
	return api.Session{
		ID:             id,
		Input:          st.Input.Value,
		Result:         st.Result,
		ResultConsumed: st.ResultConsumed,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, e api.APIError) {
	writeJSON(w, status, e)
}

func writeNotFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, api.APIError{Error: "session not found", Code: api.CodeNotFound})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
