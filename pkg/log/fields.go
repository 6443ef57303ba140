package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldChannel    = "channel"
	FieldToken      = "token"
	FieldPage       = "page"
	FieldMonth      = "month"
)

// Standard component names.
const (
	ComponentApp   = "app"
	ComponentAPI   = "api"
	ComponentUI    = "ui"
	ComponentCache = "cache"
	ComponentGeo   = "geo"
)
