package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth int           = 9
	_sentryFlushTimeout  time.Duration = 5 * time.Second
	_sentryHTTPTimeout   time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer that tails the zap JSON stream and forwards
// error-level entries to Sentry. NewSentryHook returns nil when no DSN is
// configured; callers skip wiring it in that case.
type SentryHook struct {
	appEnv  string
	appName string
}

func NewSentryHook(appEnv, appName, dsn string, isDebug bool) *SentryHook {
	if dsn == "" {
		return nil
	}

	transport := sentry.NewHTTPTransport()
	transport.Timeout = _sentryHTTPTimeout

	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appEnv,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       appName,
		Transport:        transport,
	}); err != nil {
		log.Println("sentry init error:", err.Error())
		return nil
	}

	return &SentryHook{
		appEnv:  appEnv,
		appName: appName,
	}
}

// Write parses one encoded log line and captures it when it is error level
// or above. It never fails the underlying logger.
func (h *SentryHook) Write(p []byte) (n int, err error) {
	type entry struct {
		Level      string `json:"level"`
		Message    string `json:"msg"`
		Error      string `json:"error"`
		CallerFile string `json:"caller_file"`
		CallerLine int    `json:"caller_line"`
		CallerFunc string `json:"caller_func"`
		Stack      string `json:"stack"`
	}

	var e entry
	if jsonErr := json.Unmarshal(p, &e); jsonErr != nil {
		return len(p), nil
	}

	level, parseErr := zapcore.ParseLevel(e.Level)
	if parseErr != nil || e.Message == "" {
		return len(p), nil
	}

	switch level {
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		event := sentry.NewEvent()
		event.Environment = h.appEnv
		event.Level = mapLevel(level)
		event.Message = e.Message
		event.Extra["AppName"] = h.appName
		event.Extra["Error"] = e.Error
		event.Extra["CallerFile"] = e.CallerFile
		event.Extra["CallerLine"] = e.CallerLine
		event.Extra["CallerFunc"] = e.CallerFunc
		event.Extra["Stack"] = e.Stack
		event.Exception = append(event.Exception, sentry.Exception{
			Type:       e.Message,
			Value:      e.Error,
			Stacktrace: sentry.NewStacktrace(),
		})
		sentry.CaptureEvent(event)
	}

	return len(p), nil
}

// Flush drains pending events; call it on shutdown.
func (h *SentryHook) Flush() {
	sentry.Flush(_sentryFlushTimeout)
}

func mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}
	return sentry.LevelDebug
}
