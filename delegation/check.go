package delegation

import (
	"context"

	"github.com/markdingo/nsorphan/dnsutil"
	"github.com/markdingo/nsorphan/log"
	"github.com/markdingo/nsorphan/resolver"
)

// NewChecker constructs a Checker around the supplied resolver.
func NewChecker(r resolver.Resolver) *Checker {
	return &Checker{resolver: r}
}

// Check runs the whole diagnosis as one sequential pipeline: subdomain NS lookup,
// parent NS lookup, subdomain address lookup when the delegation is distinct,
// classification and finally - for a preliminary Route53Suspect - direct liveness
// probes of each delegated name server.
//
// Lookup failures are data, not errors: an unresolvable subdomain NS set classifies
// as NotDelegated rather than aborting the run, which is why Check has no error
// return. Each query outcome is consumed exactly once by the step that issued it.
func (t *Checker) Check(ctx context.Context, target Target) *Report {
	rep := &Report{Target: target}

	log.Minorf("Check:%s:Parent %s", target.Subdomain, target.Parent)

	subNS, subOutcome := resolver.NSSet(ctx, t.resolver, target.Subdomain)
	rep.SubdomainNS = subNS // NSSet returns normalized names in response order
	if len(subNS) == 0 {
		log.Minorf("Check:%s:no NS records (%s)", target.Subdomain, subOutcome.String())
		rep.Verdict = NotDelegated

		return rep
	}
	rep.Fingerprint = Fingerprint(subNS)
	log.Minorf("Check:%s:NS (%d) fingerprint %s",
		target.Subdomain, len(subNS), rep.Fingerprint)

	parentNS, parentOutcome := resolver.NSSet(ctx, t.resolver, target.Parent)
	rep.ParentNS = parentNS
	if len(parentNS) == 0 {
		log.Minorf("Check:%s:no parent NS records (%s)",
			target.Parent, parentOutcome.String())
	}

	// The address check only informs the classifier for distinct delegations so
	// don't bother the resolver otherwise.
	if !dnsutil.EqualNameSets(subNS, parentNS) {
		rep.ARecord = resolver.AddrOutcome(ctx, t.resolver, target.Subdomain)
		log.Minorf("Check:%s:A %s", target.Subdomain, rep.ARecord.String())
	}

	rep.Verdict, rep.Route53 = Classify(subNS, parentNS, rep.ARecord)

	if rep.Verdict == Route53Suspect {
		rep.Probes = t.ProbeServers(ctx, target.Subdomain, subNS)
		rep.Verdict = Refine(rep.Verdict, rep.Probes)
	}

	log.Minorf("Check:%s:Verdict %s", target.Subdomain, rep.Verdict.String())

	return rep
}
