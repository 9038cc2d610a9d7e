package fixedseq

import (
	"sync/atomic"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	SESSION_LOG_FIELD_NAME  = "session"
	ALLOC_ID_LOG_FIELD_NAME = "alloc"
	KIND_LOG_FIELD_NAME     = "kind"
	LENGTH_LOG_FIELD_NAME   = "len"
)

const (
	allocKindArray     = "array"
	allocKindBoolArray = "bool-array"
)

var traceLogger atomic.Pointer[zerolog.Logger]

// SetTraceLogger enables allocation tracing: every construction of an Array
// or BoolArray logs its allocation tag, kind and length at debug level.
// The logger is stamped with a fresh ULID identifying the trace session.
// Tracing is off by default and costs a single atomic load per construction
// while disabled.
func SetTraceLogger(logger zerolog.Logger) {
	logger = logger.With().Str(SESSION_LOG_FIELD_NAME, ulid.Make().String()).Logger()
	traceLogger.Store(&logger)
}

// DisableTracing turns allocation tracing back off.
func DisableTracing() {
	traceLogger.Store(nil)
}

func traceAlloc(kind string, allocID uint64, length int) {
	logger := traceLogger.Load()
	if logger == nil {
		return
	}
	logger.Debug().
		Str(KIND_LOG_FIELD_NAME, kind).
		Uint64(ALLOC_ID_LOG_FIELD_NAME, allocID).
		Int(LENGTH_LOG_FIELD_NAME, length).
		Msg("allocation")
}
