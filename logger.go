package chesscore

import (
	"fmt"
	"strings"
	"time"

	golog "github.com/op/go-logging"
)

// Stats summarizes one search call. CacheHits/CacheMisses are reserved for
// a future transposition table and are always zero in this core.
type Stats struct {
	Nodes       uint64
	Depth       int
	CacheHits   uint64
	CacheMisses uint64
	Elapsed     time.Duration
}

// Logger is the core's only ambient-instrumentation hook. Nothing in the
// core calls any Logger method unless a caller explicitly injects one;
// Search defaults to NopLogger, so by default the core produces no output
// at all.
type Logger interface {
	BeginSearch(depth int)
	EndSearch(stats Stats)
	Info(msg string, keyvals ...interface{})
}

// NopLogger implements Logger with no-ops. It is the default used whenever
// a caller does not supply its own Logger.
type NopLogger struct{}

func (NopLogger) BeginSearch(depth int)   {}
func (NopLogger) EndSearch(stats Stats)   {}
func (NopLogger) Info(string, ...interface{}) {}

// goLoggingLogger adapts github.com/op/go-logging to the Logger interface
// for production use, where search progress should actually be recorded.
type goLoggingLogger struct {
	log *golog.Logger
}

// NewGoLoggingLogger wraps an existing *go-logging.Logger as a Logger.
func NewGoLoggingLogger(log *golog.Logger) Logger {
	return &goLoggingLogger{log: log}
}

func (l *goLoggingLogger) BeginSearch(depth int) {
	l.log.Infof("search: starting, depth=%d", depth)
}

func (l *goLoggingLogger) EndSearch(stats Stats) {
	l.log.Infof("search: finished, depth=%d nodes=%d elapsed=%s", stats.Depth, stats.Nodes, stats.Elapsed)
}

func (l *goLoggingLogger) Info(msg string, keyvals ...interface{}) {
	l.log.Info(renderKeyvals(msg, keyvals))
}

// renderKeyvals appends keyvals to msg as "key=value" pairs, matching the
// structured-logging contract Logger.Info declares. A trailing unpaired key
// is rendered alone. go-logging's Info takes ...interface{} and concatenates
// them with fmt.Sprint semantics, so msg must already be fully formed.
func renderKeyvals(msg string, keyvals []interface{}) string {
	if len(keyvals) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(keyvals); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(keyvals) {
			fmt.Fprintf(&b, "%v=%v", keyvals[i], keyvals[i+1])
		} else {
			fmt.Fprintf(&b, "%v", keyvals[i])
		}
	}
	return b.String()
}
