package main

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/markdingo/nsorphan/log"
	"github.com/markdingo/nsorphan/resolver"
)

const (
	programName = "nsorphan"

	defaultProjectURL = "https://github.com/markdingo/nsorphan"

	minimumTimeout = 50 * time.Millisecond
)

// config defines the settings derived from the command line. It is populated once by
// parseOptions and never changed thereafter.
type config struct {
	projectURL string

	logMajorFlag bool // Major events such as the final verdict
	logMinorFlag bool // Per-query progress - this implies --log-major
	logDebugFlag bool // Developer flag

	timeout time.Duration // Per-query timeout for all DNS exchanges

	subdomain string // First positional argument
	parent    string // Optional second positional argument
}

func newConfig() *config {
	t := &config{projectURL: defaultProjectURL, timeout: resolver.DefaultQueryTimeout}
	info, ok := debug.ReadBuildInfo()
	if ok {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

func (t *config) printVersion() {
	fmt.Fprintf(log.Out(), "Program: %s %s (%s)\n", programName, Version, ReleaseDate)
	fmt.Fprintf(log.Out(), "Project: %s\n", t.projectURL)
}
