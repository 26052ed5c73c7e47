package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide zerolog logger. Development gets a human
// console writer at debug level; everything else emits JSON at info level
// with the environment stamped on each event.
func NewLogger(appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	var out io.Writer = os.Stdout
	if appEnv == "development" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("env", appEnv).
		Logger()
}

// Logger aliases the zerolog.Logger so callers outside the infra package can
// depend on the logging contract without importing the third-party module
// directly.
type Logger = zerolog.Logger
