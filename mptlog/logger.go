// Package mptlog provides a configurable logger shared by the mpt
// verifier packages and the mptverify CLI.
//
// The root logger defaults to github.com/rs/zerolog with a console
// writer, and is a no-op logger inside `go test` binaries.
package mptlog

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Debug records whether debug-level logging is on. The package init
// reads it once, before any other package's code has run, so it is
// false there and a test binary gets a no-op logger. The CLI's --debug
// flag sets it later through SetDebug.
var Debug bool

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	level := zerolog.InfoLevel
	if Debug {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(output).Level(level).With().Timestamp().Logger()

	if !Debug && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetDebug raises or lowers the global logger's level, for a CLI
// driver to apply after flag parsing (Debug itself only takes effect
// at package init, which runs before any flag is parsed).
func SetDebug(enabled bool) {
	Debug = enabled
	if enabled {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows a caller to override the global logger entirely.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the shared logger, for a package to attach its own
// component field via .With().Str("component", "mpt").Logger().
func Logger() zerolog.Logger {
	return logger
}
