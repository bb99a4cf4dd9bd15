package main

import (
	"github.com/amoylab/inventory/internal/auth"
	"github.com/amoylab/inventory/internal/common/config"
	"github.com/amoylab/inventory/internal/i18n"
	"github.com/amoylab/inventory/internal/inventory/database"
	"github.com/amoylab/inventory/internal/inventory/handler"
	"github.com/amoylab/inventory/internal/inventory/middleware"
	"github.com/amoylab/inventory/internal/report"
	"github.com/amoylab/inventory/internal/session"
	"github.com/amoylab/inventory/internal/upload"
	"github.com/amoylab/inventory/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// newRouter wires middleware and routes. m may be nil when metrics are disabled.
func newRouter(cfg *config.InventoryConfig, lg *zap.Logger, db database.Database, sessions *session.Manager, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxMultipartMemory

	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	if m != nil {
		r.Use(m.Middleware())
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}
	r.Use(middleware.RequestLogger(lg), gin.Recovery(), i18n.Middleware())

	authHandler := handler.NewAuthHandler(lg, auth.NewVerifier(lg, db), sessions, m)
	inventoryHandler := handler.NewInventory(lg, db, upload.NewStore(cfg.Upload), m)
	reportHandler := handler.NewReport(lg, report.NewAggregator(db, nil), m)

	r.GET("/healthz", handler.HandleHealthz)
	r.GET(middleware.LoginPath, authHandler.LoginPage)
	r.POST(middleware.LoginPath, authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	guarded := r.Group("/", middleware.SessionGuard(lg, sessions))
	guarded.GET("/", inventoryHandler.HandleIndex)
	guarded.POST("/", inventoryHandler.HandleSubmit)
	guarded.GET("/reports", reportHandler.HandleReports)
	guarded.Static("/"+cfg.Upload.Prefix, cfg.Upload.Dir)

	return r
}
