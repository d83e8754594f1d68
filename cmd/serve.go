package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/worthyretail/xray/internal/contract"
	"github.com/worthyretail/xray/internal/server"
	"github.com/worthyretail/xray/internal/store"
)

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment and team dashboards over HTTP.",
	Long: `Start a JSON API for web front ends.

Endpoints:
  GET  /api/questions      questionnaire
  GET  /api/archetypes     archetypes and classification rules
  POST /api/score          score answers without saving
  POST /api/submissions    score and record a submission
  GET  /api/teams          teams with submissions
  GET  /api/teams/:code    team dashboard
  GET  /healthz            store status
  GET  /metrics            Prometheus metrics

Examples:
  xray serve --listen :8080
  XRAY_STORE_BACKEND=postgresql XRAY_STORE_DB_CONNECT="..." xray serve`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.LogLevel == zapcore.DebugLevel {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		srv, err := server.New(engine, store.Manager.GetSubmissionStore(), cfg.CacheSize)
		if err != nil {
			contract.LogFatal("Cannot create HTTP server", err)
		}

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := srv.Run(ctx, cfg.Listen); err != nil {
			contract.LogFatal("HTTP server failed", err)
		}
	},
}
