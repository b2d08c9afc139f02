package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Ethiopic"
	AppID             = "com.github.zemenlab.go-ethiopic"
	LocalhostBindAddr = "127.0.0.1"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagServe        = "serve"
	FlagPort         = "port"
	FlagDate         = "date"
	FlagEthiopic     = "ethiopic"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	FlagDescServe    = "Run the HTTP conversion service instead of a one-shot conversion"
	FlagDescPort     = "TCP port for the HTTP conversion service"
	FlagDescDate     = "Gregorian date to convert (YYYY-MM-DD); defaults to today"
	FlagDescEthiopic = "Ethiopian date to convert (YYYY-MM-DD, era auto-detected)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort = "18090"

	// DateFieldCount is the number of dash-separated fields in a CLI date.
	DateFieldCount = 3
)

// -----------------------------------------------------------------------------
// HTTP Routes & Query Parameters
// -----------------------------------------------------------------------------

const (
	RouteEthiopicToGregorian = "/v1/ethiopic-to-gregorian"
	RouteGregorianToEthiopic = "/v1/gregorian-to-ethiopic"
	RouteValidateEthiopic    = "/v1/validate/ethiopic"
	RouteValidateGregorian   = "/v1/validate/gregorian"
	RouteDayOfWeek           = "/v1/day-of-week"
	RouteToday               = "/v1/today"
	RouteMetrics             = "/metrics"

	ParamYear  = "year"
	ParamMonth = "month"
	ParamDay   = "day"
	ParamEra   = "era"

	// Era query parameter values.
	EraParamAmeteMihret = "am"
	EraParamAmeteAlem   = "aa"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderRequestID    = "X-Request-ID"
	HeaderXContentType = "X-Content-Type-Options"

	MimeJSON    = "application/json; charset=utf-8"
	MimeNoSniff = "nosniff"
)

// -----------------------------------------------------------------------------
// Error Codes (JSON envelope, stable API contract)
// -----------------------------------------------------------------------------

const (
	// ErrCodeInvalidInput flags an input-shape error: a missing, non-integer
	// or otherwise malformed parameter. The conversion core is never reached.
	ErrCodeInvalidInput = "invalid_input"

	// ErrCodeInvalidDate flags a calendar-validity error: a well-typed date
	// that does not exist in its calendar.
	ErrCodeInvalidDate = "invalid_date"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrMissingParam   = "missing required parameter"
	ErrNotAnInteger   = "parameter must be an integer"
	ErrUnknownEra     = "era must be \"am\" or \"aa\""
	ErrAppFailed      = "application failed unexpectedly"
	ErrDateFormat     = "date must be YYYY-MM-DD"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting  = "Starting application"
	MsgAppStop      = "Application stopped gracefully"
	MsgServerListen = "HTTP server listening"
	MsgServerStop   = "Shutting down HTTP server..."
	MsgRequestDone  = "Request handled"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyPort      = "port"
	LogKeyMethod    = "method"
	LogKeyPath      = "path"
	LogKeyStatus    = "status_code"
	LogKeyRequestID = "request_id"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompServer = "server"
	CompMain   = "main"
)

// -----------------------------------------------------------------------------
// Weekday Names (JDN mod 7 order: 0 = Monday)
// -----------------------------------------------------------------------------

// WeekdayNames maps the DayOfWeek index to its English name. Index order
// follows the JDN convention, not time.Weekday (which starts on Sunday).
var WeekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
