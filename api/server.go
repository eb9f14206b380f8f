// Package api - Thin HTTP layer over the pricing engine
// The API is ONLY responsible for: decoding input, calling the engine, and
// encoding output. It never performs pricing logic itself.
package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"windowprice/core/determinism"
	"windowprice/core/output"
	"windowprice/core/pricing"
	"windowprice/core/quote"
	"windowprice/internal/errors"
	"windowprice/internal/logging"
)

// Options configure the server
type Options struct {
	// Output controls amount rendering in responses
	Output output.Options

	// MaxBodyBytes bounds request bodies; 0 means 1 MiB
	MaxBodyBytes int64

	// ReadTimeout bounds request reads in ListenAndServe
	ReadTimeout time.Duration
}

// Server is the API server
type Server struct {
	engine  *pricing.Engine
	quotes  *quote.Builder
	mux     *http.ServeMux
	version string
	opts    Options
	log     *zap.Logger
}

// NewServer creates an API server. A nil engine uses the default rate card
// and a zero Output uses output.DefaultOptions; an empty currency alone
// falls back to USD.
func NewServer(version string, engine *pricing.Engine, opts Options) *Server {
	if engine == nil {
		engine = pricing.NewEngine()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.Output == (output.Options{}) {
		opts.Output = output.DefaultOptions()
	}
	if opts.Output.Currency == "" {
		opts.Output.Currency = output.DefaultOptions().Currency
	}

	s := &Server{
		engine:  engine,
		quotes:  quote.NewBuilder(engine, opts.Output.Currency),
		mux:     http.NewServeMux(),
		version: version,
		opts:    opts,
		log:     logging.Component("api"),
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /price", s.handlePrice)
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("GET /rates", s.handleRates)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handlePrice handles POST /price
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	var req PriceRequest
	if !s.decode(w, r, &req) {
		return
	}

	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	// NO PRICING LOGIC HERE
	breakdown := s.engine.Quote(req)

	hash, err := computeInputHash(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, PriceResponse{
		RequestID: requestID(r),
		InputHash: hash,
		Price:     output.NewPriceView(breakdown, s.opts.Output),
	}, http.StatusOK)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if !s.decode(w, r, &req) {
		return
	}

	lines := make([]quote.Line, 0, len(req.Windows))
	for _, win := range req.Windows {
		lines = append(lines, quote.Line{
			Label:    win.Label,
			Quantity: win.Quantity,
			Request:  win.PriceRequest,
		})
	}

	q, err := s.quotes.Build(req.Name, lines)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.log.Info("quote built",
		zap.String("quote_id", q.ID.String()),
		zap.Int64("windows", q.Windows()),
		zap.String("total", q.Total.StringFixed(2)))

	hash, err := computeInputHash(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, QuoteResponse{
		RequestID: requestID(r),
		InputHash: hash,
		Quote:     output.NewQuoteView(q, s.opts.Output),
	}, http.StatusOK)
}

// handleRates handles GET /rates
func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, output.NewRatesView(s.engine.Rates()), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "windowprice",
		"api_version": "v1",
	}, http.StatusOK)
}

// decode reads a JSON body, writing an error response on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		// unknown window or glass labels surface from UnmarshalText
		if errors.IsType(err, errors.TypeInput) {
			s.writeError(w, err)
			return false
		}
		s.writeError(w, errors.Parsing("invalid JSON body", err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"

	switch errors.TypeOf(err) {
	case errors.TypeInput:
		status, code = http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.TypeParsing:
		status, code = http.StatusBadRequest, "INVALID_JSON"
	case errors.TypeNotSupported:
		status, code = http.StatusUnsupportedMediaType, "NOT_SUPPORTED"
	case errors.TypeNotFound:
		status, code = http.StatusNotFound, "NOT_FOUND"
	}

	detail := ErrorDetail{Code: code, Message: err.Error()}
	var domainErr *errors.Error
	if stderrors.As(err, &domainErr) {
		detail.Message = domainErr.Message
		detail.Context = domainErr.Context
	}

	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	} else {
		s.log.Debug("request rejected", zap.String("code", code), zap.Error(err))
	}

	s.writeJSON(w, ErrorBody{Error: detail}, status)
}

type requestIDKey struct{}

// ServeHTTP implements http.Handler. Every request gets an ID, echoed in
// the X-Request-ID header, and an access log line.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.Header.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", id)
	r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	s.log.Info("request",
		zap.String("request_id", id),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     s,
		ReadTimeout: s.opts.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// computeInputHash hashes the normalized request so identical inputs can be
// recognised across calls
func computeInputHash(v interface{}) (string, error) {
	hash, err := determinism.HashJSON(v)
	if err != nil {
		return "", errors.Internal("hashing request", err)
	}
	return hash.Hex(), nil
}
