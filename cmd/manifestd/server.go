package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/radixdlt/manifest-analyzer/instr"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/manifestanalysis"
	"github.com/radixdlt/manifest-analyzer/metrics"
	"github.com/radixdlt/manifest-analyzer/trace"
)

// Server is the manifestd HTTP service: a thin chi router in front of the
// manifestanalysis orchestrator, one request per manifest.
type Server struct {
	httpServer *http.Server
	log        *zap.Logger
}

// NewServer wires a Server from config, registering a fresh registry
// populated from cfg.SchemaRegistry and a metrics.Engine against reg.
func NewServer(cfg *Config, logger *zap.Logger, reg prometheus.Registerer) (*Server, error) {
	m, err := metrics.New(reg)
	if err != nil {
		return nil, err
	}

	registry := invocation.NewStaticSchemaRegistry()
	for _, e := range cfg.SchemaRegistry {
		registry.Add(e.Blueprint, e.Module, e.Method)
	}

	h := &analyzeHandler{logger: logger, metrics: m, registry: registry}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Handle("/metrics", promhttp.Handler())
	router.Post("/v1/analyze", h.ServeHTTP)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: logger,
	}, nil
}

// Start runs the HTTP server until Shutdown is called, in the fire-and-log
// goroutine shape the teacher's Service.Start uses for its own background
// loops.
func (s *Server) Start() {
	s.log.Info("manifestd listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("http server error", zap.Error(err))
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type analyzeRequest struct {
	Instructions jsonRaw `json:"instructions"`
	Trace        jsonRaw `json:"trace,omitempty"`
	Subintent    bool    `json:"subintent,omitempty"`
}

type jsonRaw = json.RawMessage

type analyzeHandler struct {
	logger   *zap.Logger
	metrics  *metrics.Engine
	registry invocation.SchemaRegistry
}

func (h *analyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	instructions, err := instr.DecodeStream(req.Instructions)
	if err != nil {
		writeError(w, http.StatusBadRequest, "decode instructions: "+err.Error())
		return
	}

	var trc trace.Trace
	if len(req.Trace) > 0 {
		trc, err = trace.Decode(req.Trace)
		if err != nil {
			writeError(w, http.StatusBadRequest, "decode trace: "+err.Error())
			return
		}
	}

	static, dynamic, err := manifestanalysis.Analyze(instructions, manifestanalysis.Options{
		IsSubintent: req.Subintent,
		Trace:       trc,
		Registry:    h.registry,
		Logger:      h.logger,
		Metrics:     h.metrics,
	})
	if err != nil {
		h.logger.Warn("analysis failed", zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if dynamic != nil {
		_ = json.NewEncoder(w).Encode(dynamic)
		return
	}
	_ = json.NewEncoder(w).Encode(static)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
