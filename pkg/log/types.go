package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug|info|warn|error
	Mode         string // development|production
	Encoding     string // console|json
	ColorEnabled bool
}

type ctxKey string

const (
	// TraceIDKey carries a request correlation id through context.
	TraceIDKey ctxKey = "trace_id"
	// UserIDKey carries the caller's user id through context.
	UserIDKey ctxKey = "user_id"
)

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)
