// Package delegation decides whether a subdomain's delegation is an orphaned
// Route 53 delegation. All exported structs are defined here.
package delegation

import (
	"github.com/markdingo/nsorphan/resolver"
)

// Checker is the container used to manage a delegation check. As you can see, it
// merely contains a resolver which performs all of the network interrogation.
type Checker struct {
	resolver resolver.Resolver
}

// ServerProbe is the liveness result for one delegated name server which was queried
// directly for the subdomain.
type ServerProbe struct {
	NameServer string
	Outcome    resolver.Outcome
}

// Report is returned by Checker.Check(). Record sets are normalized (lowercase,
// trailing dot removed) but retain resolver response order for deterministic output.
type Report struct {
	Target Target

	SubdomainNS []string // Empty means no delegation exists
	ParentNS    []string

	Route53 bool             // At least one subdomain NS matches the Route 53 signature
	ARecord resolver.Outcome // Subdomain address lookup - only set for distinct delegations
	Probes  []ServerProbe    // Only populated when liveness checking ran

	Verdict     Verdict
	Fingerprint string // Stable hash of the subdomain NS set; empty if not delegated
}
