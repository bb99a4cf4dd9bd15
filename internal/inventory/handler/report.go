package handler

import (
	"time"

	"github.com/amoylab/inventory/internal/i18n"
	"github.com/amoylab/inventory/internal/report"
	"github.com/amoylab/inventory/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Report serves chart data
type Report struct {
	logger     *zap.Logger
	aggregator *report.Aggregator
	metrics    *metrics.Metrics
}

// NewReport creates a new Report handler
func NewReport(logger *zap.Logger, aggregator *report.Aggregator, m *metrics.Metrics) *Report {
	return &Report{
		logger:     logger.Named("handler.report"),
		aggregator: aggregator,
		metrics:    m,
	}
}

// HandleReports recomputes every chart for the current date
func (h *Report) HandleReports(c *gin.Context) {
	start := time.Now()
	dashboard, err := h.aggregator.Build(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build reports", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrorDatabase)
		return
	}
	h.metrics.ReportBuilt(start)
	i18n.Success("").WithPayload(dashboard).Send(c)
}
