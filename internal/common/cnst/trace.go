package cnst

// Tracer names used across the service
const (
	TraceHTTP   = "inventory/http"
	TraceReport = "inventory/report"
)

// Common span names
const (
	SpanReportBuild  = "report.build"
	SpanReportSeries = "report.series"
	SpanEntitySave   = "entity.save"
	SpanEntityDelete = "entity.delete"
)
