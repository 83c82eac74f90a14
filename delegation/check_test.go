package delegation

import (
	"context"
	"testing"

	"github.com/markdingo/nsorphan/resolver"

	mockresolver "github.com/markdingo/nsorphan/mock/resolver"
)

// Each sub-directory of testdata/check stages one complete diagnosis from the mock
// resolver's point of view: NS lookups, address lookups and direct server exchanges.
func TestCheckScenarios(t *testing.T) {
	testCases := []struct {
		dir     string
		verdict Verdict
		route53 bool
		subNS   int // Expected size of the subdomain NS set
		probes  int // Expected number of liveness probes
	}{
		{"notdelegated", NotDelegated, false, 0, 0}, // NS lookup refused
		{"gone", NotDelegated, false, 0, 0},         // NS lookup NXDOMAIN
		{"same", SameAsParent, false, 2, 0},
		{"other", DistinctHealthy, false, 1, 0},
		{"healthy", DistinctHealthy, true, 1, 0}, // Route 53 but resolving fine
		{"orphan", Route53Orphaned, true, 2, 2},
		{"suspect", Route53Suspect, true, 2, 2}, // One server unresolvable
		{"transient", DistinctHealthy, true, 1, 1},
		{"ambiguous", Ambiguous, true, 1, 0}, // Address lookup timed out
	}

	for _, tc := range testCases {
		t.Run(tc.dir, func(t *testing.T) {
			target, err := ParseTarget("app.example.net", "")
			if err != nil {
				t.Fatal("Setup error", err)
			}
			checker := NewChecker(mockresolver.NewResolver("testdata/check/" + tc.dir))
			rep := checker.Check(context.Background(), target)
			if rep.Verdict != tc.verdict {
				t.Error("Verdict mismatch. Want", tc.verdict, "got", rep.Verdict)
			}
			if rep.Route53 != tc.route53 {
				t.Error("Route53 mismatch. Want", tc.route53, "got", rep.Route53)
			}
			if len(rep.SubdomainNS) != tc.subNS {
				t.Error("SubdomainNS size mismatch. Want", tc.subNS,
					"got", rep.SubdomainNS)
			}
			if len(rep.Probes) != tc.probes {
				t.Error("Probe count mismatch. Want", tc.probes,
					"got", len(rep.Probes))
			}
			if tc.subNS > 0 && len(rep.Fingerprint) != 16 {
				t.Error("Fingerprint missing from report", rep.Fingerprint)
			}
			if tc.subNS == 0 && len(rep.Fingerprint) != 0 {
				t.Error("No delegation should mean no fingerprint",
					rep.Fingerprint)
			}
		})
	}
}

// The orphan scenario is the one this program exists for so pin down the report
// details, not just the verdict.
func TestCheckOrphanReport(t *testing.T) {
	target, err := ParseTarget("app.example.net", "example.net")
	if err != nil {
		t.Fatal("Setup error", err)
	}
	checker := NewChecker(mockresolver.NewResolver("testdata/check/orphan"))
	rep := checker.Check(context.Background(), target)

	if rep.Verdict != Route53Orphaned {
		t.Fatal("Want Route53Orphaned, got", rep.Verdict)
	}
	if rep.ARecord.Kind != resolver.NXDomain {
		t.Error("Want NXDomain for the address check, got", rep.ARecord.String())
	}
	if len(rep.ParentNS) != 2 {
		t.Error("Want two parent name servers, got", rep.ParentNS)
	}
	if len(rep.Probes) != 2 {
		t.Fatal("Want two probes, got", len(rep.Probes))
	}
	if rep.Probes[0].NameServer != "ns-1.awsdns-01.org" ||
		rep.Probes[0].Outcome.Kind != resolver.NXDomain {
		t.Error("First probe mismatch", rep.Probes[0].NameServer,
			rep.Probes[0].Outcome.String())
	}
	if rep.Probes[1].NameServer != "ns-2.awsdns-02.co.uk" ||
		rep.Probes[1].Outcome.Kind != resolver.ServFail {
		t.Error("Second probe mismatch", rep.Probes[1].NameServer,
			rep.Probes[1].Outcome.String())
	}
}
