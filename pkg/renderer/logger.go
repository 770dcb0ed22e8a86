package renderer

import (
	"github.com/golang/glog"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// VerboseLogger is a logger that can report whether detailed progress is wanted
type VerboseLogger interface {
	core.Logger
	Verbose() bool
}

// GlogLogger implements core.Logger on top of glog
type GlogLogger struct{}

// NewGlogLogger creates a logger writing to glog's info log
func NewGlogLogger() *GlogLogger {
	return &GlogLogger{}
}

// Printf logs at info level
func (GlogLogger) Printf(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

// Verbose reports whether per-tile progress is enabled (-v=1)
func (GlogLogger) Verbose() bool {
	return bool(glog.V(1))
}
