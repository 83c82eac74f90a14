package delegation

import (
	"context"
	"testing"

	"github.com/markdingo/nsorphan/resolver"

	mockresolver "github.com/markdingo/nsorphan/mock/resolver"
)

func TestRefine(t *testing.T) {
	answered := ServerProbe{"ns-a", resolver.Outcome{Kind: resolver.Answered}}
	nxdomain := ServerProbe{"ns-b", resolver.Outcome{Kind: resolver.NXDomain}}
	servfail := ServerProbe{"ns-c", resolver.Outcome{Kind: resolver.ServFail}}
	timeout := ServerProbe{"ns-d", resolver.Outcome{Kind: resolver.Timeout}}
	otherErr := ServerProbe{"ns-e", resolver.Outcome{Kind: resolver.OtherError}}
	nodata := ServerProbe{"ns-f", resolver.Outcome{Kind: resolver.NoData}}

	testCases := []struct {
		preliminary Verdict
		probes      []ServerProbe
		exp         Verdict
	}{
		// Only Route53Suspect is ever refined
		{DistinctHealthy, []ServerProbe{nxdomain}, DistinctHealthy},
		{NotDelegated, []ServerProbe{nxdomain}, NotDelegated},
		{Route53Orphaned, []ServerProbe{answered}, Route53Orphaned},

		// No probes means nothing new was learnt
		{Route53Suspect, nil, Route53Suspect},

		// Unanimous failure escalates
		{Route53Suspect, []ServerProbe{nxdomain}, Route53Orphaned},
		{Route53Suspect, []ServerProbe{nxdomain, servfail}, Route53Orphaned},
		{Route53Suspect, []ServerProbe{nxdomain, timeout}, Route53Orphaned},
		{Route53Suspect, []ServerProbe{servfail, servfail, timeout}, Route53Orphaned},

		// Any answer de-escalates, even amongst failures
		{Route53Suspect, []ServerProbe{answered}, DistinctHealthy},
		{Route53Suspect, []ServerProbe{nxdomain, answered}, DistinctHealthy},
		{Route53Suspect, []ServerProbe{answered, servfail}, DistinctHealthy},

		// Indeterminate outcomes hold the verdict where it is
		{Route53Suspect, []ServerProbe{nxdomain, otherErr}, Route53Suspect},
		{Route53Suspect, []ServerProbe{otherErr}, Route53Suspect},
		{Route53Suspect, []ServerProbe{nodata}, Route53Suspect},
	}

	for ix, tc := range testCases {
		if got := Refine(tc.preliminary, tc.probes); got != tc.exp {
			t.Error(ix, "Want", tc.exp, "got", got)
		}
	}
}

func TestProbeServers(t *testing.T) {
	res := mockresolver.NewResolver("testdata/check/orphan")
	checker := NewChecker(res)
	probes := checker.ProbeServers(context.Background(), "app.example.net",
		[]string{"ns-1.awsdns-01.org", "ns-2.awsdns-02.co.uk"})
	if len(probes) != 2 {
		t.Fatal("Expected one probe per server, got", len(probes))
	}
	if probes[0].NameServer != "ns-1.awsdns-01.org" {
		t.Error("Probe order should follow server order, got", probes[0].NameServer)
	}
	if probes[0].Outcome.Kind != resolver.NXDomain {
		t.Error("ns-1 should probe NXDomain, got", probes[0].Outcome.String())
	}
	if probes[1].Outcome.Kind != resolver.ServFail {
		t.Error("ns-2 should probe ServFail, got", probes[1].Outcome.String())
	}
}

func TestProbeServerUnresolvable(t *testing.T) {
	res := mockresolver.NewResolver("testdata/check/suspect")
	checker := NewChecker(res)
	probes := checker.ProbeServers(context.Background(), "app.example.net",
		[]string{"ns-4.awsdns-04.net"})
	if len(probes) != 1 {
		t.Fatal("Expected one probe, got", len(probes))
	}
	got := probes[0].Outcome
	if got.Kind != resolver.OtherError {
		t.Error("Unresolvable server address should probe OtherError, got", got.String())
	}
	if len(got.Detail) == 0 {
		t.Error("OtherError should carry a detail message")
	}
}
