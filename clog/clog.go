// Package clog wraps github.com/op/go-logging with the package-level
// "one *logging.Logger per module" convention FrankyGo uses throughout its
// internal packages (internal/attacks, internal/movegen): each caller holds
// its own named logger instead of sharing a single global one, so log lines
// carry their originating module.
package clog

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// Get returns a logger tagged with module, the way FrankyGo's packages each
// hold their own `var log *logging.Logger` initialized from a shared
// internal helper.
func Get(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel adjusts the verbosity of every logger obtained via Get, e.g. to
// silence expected-warning paths such as the FEN king-count check.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
