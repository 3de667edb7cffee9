// Package api serves the formatting and validation helpers over HTTP for
// the web file browser.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/fruitsalade/fruitsalade/webutil/internal/logging"
	"github.com/fruitsalade/fruitsalade/webutil/internal/metrics"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/fileicon"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/format"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/password"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/validate"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 64 << 10

// SizeResponse is returned by GET /api/v1/util/size.
type SizeResponse struct {
	Bytes     int64  `json:"bytes"`
	Formatted string `json:"formatted"`
}

// DateResponse is returned by GET /api/v1/util/date.
type DateResponse struct {
	Formatted string `json:"formatted"`
	Relative  string `json:"relative"`
}

// IconResponse is returned by GET /api/v1/util/icon.
type IconResponse struct {
	Icon     string            `json:"icon"`
	Category fileicon.Category `json:"category"`
}

// PasswordRequest is the body of POST /api/v1/util/password.
type PasswordRequest struct {
	Password string `json:"password"`
}

// Server serves the helper endpoints.
type Server struct {
	limiter *ClientLimiter
}

// NewServer creates a new helper server. postInterval throttles the POST
// endpoints per client; zero disables throttling.
func NewServer(postInterval time.Duration) *Server {
	return &Server{limiter: NewClientLimiter(postInterval)}
}

// Handler returns the HTTP handler with logging and metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/v1/util/size", s.handleSize)
	mux.HandleFunc("GET /api/v1/util/date", s.handleDate)
	mux.HandleFunc("GET /api/v1/util/icon", s.handleIcon)
	mux.HandleFunc("POST /api/v1/util/password", s.limiter.Limit(s.handlePassword))
	mux.HandleFunc("POST /api/v1/util/validate", s.limiter.Limit(s.handleValidate))

	return logging.Middleware(metrics.Middleware(mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var n int64
	switch {
	case q.Get("bytes") != "":
		v, err := strconv.ParseInt(q.Get("bytes"), 10, 64)
		if err != nil || v < 0 {
			s.sendError(w, http.StatusBadRequest, "bytes must be a non-negative integer")
			return
		}
		n = v
	case q.Get("value") != "":
		v, err := format.ParseSize(q.Get("value"))
		if err != nil {
			s.sendError(w, http.StatusBadRequest, err.Error())
			return
		}
		n = v
	default:
		s.sendError(w, http.StatusBadRequest, "bytes or value is required")
		return
	}

	s.sendJSON(w, http.StatusOK, SizeResponse{Bytes: n, Formatted: format.Size(n)})
}

func (s *Server) handleDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	loc := time.Local
	if tz := q.Get("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			s.sendError(w, http.StatusBadRequest, "unknown time zone "+strconv.Quote(tz))
			return
		}
		loc = l
	}

	resp := DateResponse{Formatted: format.Placeholder, Relative: format.Placeholder}
	if t, ok := format.ParseTime(q.Get("value"), loc); ok {
		resp.Formatted = format.DateIn(t, loc)
		resp.Relative = format.Relative(t)
	}
	s.sendJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	s.sendJSON(w, http.StatusOK, IconResponse{
		Icon:     fileicon.For(name),
		Category: fileicon.CategoryOf(name),
	})
}

func (s *Server) handlePassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.sendJSON(w, http.StatusOK, password.Check(req.Password))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var form validate.Form
	if !s.decode(w, r, &form) {
		return
	}
	s.sendJSON(w, http.StatusOK, validate.Check(form))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logging.WithContext(r.Context()).Debug("bad request body", zap.Error(err))
		s.sendError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) sendError(w http.ResponseWriter, status int, msg string) {
	s.sendJSON(w, status, map[string]string{"error": msg})
}
