// Package server exposes the engine and team dashboards over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/worthyretail/xray/core"
	"github.com/worthyretail/xray/internal/contract"
)

const shutdownTimeout = 10 * time.Second

// Server serves the X-Ray HTTP API. The engine is shared read-only across requests.
type Server struct {
	engine  *core.Engine
	store   contract.SubmissionStore
	cache   *dashboardCache
	metrics *Metrics
	router  *gin.Engine
}

// New builds a server around engine and store. cacheSize bounds the team dashboard LRU.
func New(engine *core.Engine, store contract.SubmissionStore, cacheSize int) (*Server, error) {
	if cacheSize <= 0 {
		cacheSize = contract.DefaultCacheSize
	}
	cache, err := newDashboardCache(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard cache: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		engine:  engine,
		store:   store,
		cache:   cache,
		metrics: MustNewMetrics(reg),
	}
	s.router = s.routes(reg)
	return s, nil
}

func (s *Server) routes(reg *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(TraceIDMiddleware())
	r.Use(RequestLogger(s.metrics))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", traceIDHeader}
	corsConfig.ExposeHeaders = []string{traceIDHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		api.GET("/questions", s.handleQuestions)
		api.GET("/archetypes", s.handleArchetypes)
		api.POST("/score", s.handleScore)
		api.POST("/submissions", s.handleSubmit)
		api.GET("/teams", s.handleTeams)
		api.GET("/teams/:code", s.handleTeamDashboard)
	}
	return r
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		contract.Logger().Infow("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	contract.Logger().Infow("HTTP server stopped")
	return nil
}
