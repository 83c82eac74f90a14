package delegation

import (
	"github.com/markdingo/nsorphan/dnsutil"
	"github.com/markdingo/nsorphan/resolver"
)

// Verdict is the risk category produced by a check. It is computed once by Classify,
// possibly refined once by the liveness checker, and immutable thereafter.
type Verdict int

const (
	NotDelegated    Verdict = iota // Subdomain has no NS records of its own
	SameAsParent                   // Delegation is inherited, not independent
	DistinctHealthy                // Independent delegation which resolves, or not Route 53
	Route53Suspect                 // Route 53 delegation with anomalous resolution
	Route53Orphaned                // No delegated name server can answer for the subdomain
	Ambiguous                      // Could not gather enough evidence for a verdict
)

func (t Verdict) String() string {
	switch t {
	case NotDelegated:
		return "NotDelegated"
	case SameAsParent:
		return "SameAsParent"
	case DistinctHealthy:
		return "DistinctDelegationHealthy"
	case Route53Suspect:
		return "DistinctDelegationRoute53Suspect"
	case Route53Orphaned:
		return "DistinctDelegationRoute53Orphaned"
	}

	return "AmbiguousError"
}

// Classify computes the preliminary verdict from the subdomain's NS set, the parent's
// NS set and the outcome of resolving the subdomain's address records. It is an
// ordered decision list - evaluated top to bottom with the first match winning:
//
//  1. No subdomain NS records: nothing is delegated so nothing can be taken over.
//  2. Subdomain and parent NS sets equal (as normalized sets): the delegation is
//     inherited rather than independent.
//  3. Distinct delegation without the Route 53 signature: outside this program's
//     special-cased detection. Reported healthy, tho still worth manual review.
//  4. Route 53 signature present: anomalous address resolution (NXDomain, ServFail,
//     NoData) marks the classic orphaned-zone signature and needs the liveness
//     checker to confirm. A successful answer clears it. A Timeout or other query
//     failure leaves insufficient evidence to claim anything.
//
// route53 reports whether any subdomain name server matched the Route 53 signature,
// regardless of verdict.
func Classify(subNS, parentNS []string, aRecord resolver.Outcome) (v Verdict, route53 bool) {
	if len(subNS) == 0 {
		return NotDelegated, false
	}

	if dnsutil.EqualNameSets(subNS, parentNS) {
		return SameAsParent, false
	}

	if !ContainsRoute53NS(subNS) {
		return DistinctHealthy, false
	}

	route53 = true
	switch {
	case aRecord.Anomalous():
		v = Route53Suspect
	case aRecord.Kind == resolver.Answered:
		v = DistinctHealthy
	default: // Timeout or OtherError - do not claim a verdict
		v = Ambiguous
	}

	return
}
