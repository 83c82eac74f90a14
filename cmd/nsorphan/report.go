package main

import (
	"fmt"
	"io"

	"github.com/markdingo/nsorphan/delegation"
)

// Remediation advice keyed by verdict. Kept short - the point is to tell the operator
// which of dangling delegation, dangling records or nothing at all needs cleaning up.
var adviceFor = map[delegation.Verdict]string{
	delegation.NotDelegated: `No NS delegation was found for the subdomain so there is
nothing for an attacker to claim. If a delegation was expected, check the parent
zone.`,

	delegation.SameAsParent: `The subdomain inherits the parent's name servers. There is
no independent delegation to orphan.`,

	delegation.DistinctHealthy: `The subdomain has its own delegation and it answers
normally. No action needed.`,

	delegation.Route53Suspect: `The delegation points at Route 53 and the subdomain does
not resolve, but the direct probes were inconclusive. Re-run the check and if the
verdict persists, audit the hosted zones in the owning AWS account.`,

	delegation.Route53Orphaned: `The delegation points at Route 53 name servers which no
longer answer for the subdomain. The hosted zone behind this delegation appears to
have been deleted, leaving the name claimable by anyone. Remove the NS records from
the parent zone or re-create the hosted zone and update the parent NS records to
match the new server set.`,

	delegation.Ambiguous: `A query failed in a way that prevents a determination -
typically a network problem rather than a DNS one. Re-run the check from a host with
reliable resolution.`,
}

// printReport renders the complete diagnosis. Layout loosely follows drill/dig
// conventions of section headers with indented values.
func printReport(out io.Writer, rep *delegation.Report) {
	fmt.Fprintln(out, "Subdomain:", rep.Target.Subdomain)
	if rep.Target.ParentInferred {
		fmt.Fprintln(out, "Parent:   ", rep.Target.Parent, "(inferred)")
	} else {
		fmt.Fprintln(out, "Parent:   ", rep.Target.Parent)
	}

	printNameSet(out, "Subdomain NS", rep.SubdomainNS)
	if len(rep.Fingerprint) > 0 {
		fmt.Fprintln(out, "Fingerprint:", rep.Fingerprint)
	}
	printNameSet(out, "Parent NS", rep.ParentNS)

	// The address outcome only exists for distinct delegations
	switch rep.Verdict {
	case delegation.NotDelegated, delegation.SameAsParent:
	default:
		fmt.Fprintln(out, "Address:  ", rep.ARecord.String())
	}

	if len(rep.Probes) > 0 {
		fmt.Fprintln(out, "Probes:")
		for _, p := range rep.Probes {
			fmt.Fprintf(out, "    %s %s\n", p.NameServer, p.Outcome.String())
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Verdict:  ", rep.Verdict.String())
	if advice, ok := adviceFor[rep.Verdict]; ok {
		fmt.Fprintln(out)
		fmt.Fprintln(out, advice)
	}
}

func printNameSet(out io.Writer, title string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(out, "%s: none\n", title)
		return
	}
	fmt.Fprintf(out, "%s (%d):\n", title, len(names))
	for _, name := range names {
		fmt.Fprintln(out, "   ", name)
	}
}
