package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/nsorphan/log"
	"github.com/markdingo/nsorphan/resolver"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// parseOptions populates the config from the command line. Documentation options are
// handled here so the caller only proceeds when there is an actual check to run. pflag
// silently accepts duplicate options so dupes are managed with the ParseAll callback.
func (t *nsOrphan) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.BoolVar(&t.cfg.logMajorFlag, "log-major", true, "Log major events to Stdout")
	fs.BoolVar(&t.cfg.logMinorFlag, "log-minor", false,
		"Log minor events to Stdout - this implies --log-major")
	fs.BoolVar(&t.cfg.logDebugFlag, "log-debug", false,
		"Log debug events to Stdout - this implies --log-minor")

	fs.DurationVar(&t.cfg.timeout, "timeout", resolver.DefaultQueryTimeout,
		"Per-query timeout applied to every DNS lookup and probe")

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options never run a check so the user
	dupes["version"] = true // may be fumbling around trying to work it out.

	fs.SetInterspersed(false)
	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)
				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(log.Out())
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	switch fs.NArg() {
	case 1:
		t.cfg.subdomain = fs.Arg(0)
	case 2:
		t.cfg.subdomain = fs.Arg(0)
		t.cfg.parent = fs.Arg(1)
	case 0:
		fmt.Fprintln(log.Out(), "Error:Missing subdomain argument on command line")
		return parseFailed
	default:
		fmt.Fprintf(log.Out(), "Error:Unexpected goop on command line: '%s'\n",
			strings.Join(fs.Args()[2:], " "))
		return parseFailed
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- diagnose orphaned Route 53 subdomain delegations")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     nsorphan -h | --help | -v | --version")
	fmt.Fprintln(o, "     nsorphan [--timeout time.Duration=5s]")
	fmt.Fprintln(o, "              [--log-major=true] [--log-minor] [--log-debug]")
	fmt.Fprintln(o, "              subdomain [parent]")
	fmt.Fprint(o, `
DESCRIPTION
     nsorphan checks whether a subdomain has its own NS delegation and, when
     that delegation points at Amazon Route 53, whether the hosted zone behind
     it still exists. A delegation whose NS records name Route 53 servers which
     no longer answer for the subdomain is a takeover risk: anyone can create a
     hosted zone for the name and have Route 53 hand them matching servers.

     The parent zone is normally inferred by stripping the leftmost label from
     the subdomain. Pass an explicit parent as the second argument when the
     subdomain sits more than one label below its zone cut.

     Queries are made against the system resolver except for the final liveness
     probes which go directly to each delegated name server. A typical
     invocation is:

           $ nsorphan app.example.net

     The exit status is 0 when a check completes - regardless of verdict - and
     1 for usage or resolution setup errors.
`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	op := fs.Output() // Save and restore - not sure this is a good idea
	fs.SetOutput(o)
	fs.PrintDefaults()
	fs.SetOutput(op)
}
