package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/markdingo/nsorphan/delegation"
	"github.com/markdingo/nsorphan/log"
	"github.com/markdingo/nsorphan/resolver"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

//////////////////////////////////////////////////////////////////////

func main() {
	res := resolver.NewResolver()
	prog := newNsOrphan(nil, res)
	switch prog.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	// Transfer logging options to the log package

	if prog.cfg.logMajorFlag {
		log.SetLevel(log.MajorLevel)
	}
	if prog.cfg.logMinorFlag {
		log.SetLevel(log.MinorLevel)
	}
	if prog.cfg.logDebugFlag {
		log.SetLevel(log.DebugLevel)
	}

	// Validate everything that is likely a typo or usage error
	err := prog.ValidateCommandLineOptions()
	if err != nil {
		fatal(err)
	}
	res.SetQueryTimeout(prog.cfg.timeout)

	target, err := delegation.ParseTarget(prog.cfg.subdomain, prog.cfg.parent)
	if err != nil {
		fatal(err)
	}

	log.Major(programName, " ", Version, " checking ", target.Subdomain,
		" below ", target.Parent)

	checker := delegation.NewChecker(prog.resolver)
	rep := checker.Check(context.Background(), target)

	printReport(log.Out(), rep)
}
