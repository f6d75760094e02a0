package spincube

import (
	"log/slog"
	"os"
)

// logLevel gates spincube's output. At the default LevelInfo only lifecycle
// events are written: window and GL context setup, "renderer ready",
// "quit requested" and the "loop stopped" frame/fps summary. Shader compile
// and link diagnostics are logged at Error. SetVerbose(true) lowers the
// level to LevelDebug, which adds symbol loading, mesh upload and a sampled
// per-frame line.
var logLevel = new(slog.LevelVar)

// logger writes text records to stderr.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose switches between lifecycle-only and debug output. The example
// binaries call it from the SPINCUBE_DEBUG environment variable.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose reports whether the loop should emit its sampled frame records.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// Logger returns the logger shared by the frame loop and the OpenGL backend.
func Logger() *slog.Logger {
	return logger
}
