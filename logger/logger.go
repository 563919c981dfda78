// Package logger provides a configurable logger shared by the arithmetic
// kernels.
//
// The default logger writes to stdout through a github.com/rs/zerolog console
// writer. Kernel entry points emit Debug events carrying input sizes and
// durations; pointing the logger at another sink (or a structured writer) is
// how callers collect those timings.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/ocelot-zk/garith/debug"
	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if !debug.Debug && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set replaces the global logger
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the global logger
func Logger() zerolog.Logger {
	return logger
}
