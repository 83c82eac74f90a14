package delegation

import (
	"context"

	"github.com/miekg/dns"

	"github.com/markdingo/nsorphan/log"
	"github.com/markdingo/nsorphan/resolver"
)

// ProbeServers queries each delegated name server directly for the subdomain's
// address record and records one outcome per server. Queries go straight to the
// server's address - never via the system resolver - so a server which cannot answer
// shows up as exactly that.
func (t *Checker) ProbeServers(ctx context.Context, subdomain string,
	servers []string) []ServerProbe {
	probes := make([]ServerProbe, 0, len(servers))
	for _, server := range servers {
		outcome := t.probeServer(ctx, subdomain, server)
		log.Minorf("Probe:%s @%s:%s", subdomain, server, outcome.String())
		probes = append(probes, ServerProbe{NameServer: server, Outcome: outcome})
	}

	return probes
}

// probeServer resolves the name server's own address then asks it directly for the
// subdomain. A name server whose address cannot be resolved is recorded as Timeout or
// OtherError: that alone proves neither a missing hosted zone nor a live one.
func (t *Checker) probeServer(ctx context.Context, subdomain, server string) resolver.Outcome {
	addrs := resolver.AddrOutcome(ctx, t.resolver, server)
	if addrs.Kind == resolver.Timeout {
		return addrs
	}
	if addrs.Kind != resolver.Answered {
		return resolver.Outcome{Kind: resolver.OtherError,
			Detail: "name server did not resolve: " + addrs.String()}
	}

	// Ask each address in turn and return the first definitive outcome. Timeout and
	// OtherError only stand when every address produced one.
	var last resolver.Outcome
	for _, ip := range addrs.Records {
		last = resolver.ExchangeOutcome(ctx, t.resolver, subdomain, dns.TypeA, ip, server)
		if last.Kind != resolver.Timeout && last.Kind != resolver.OtherError {
			return last
		}
	}

	return last
}

// Refine folds the per-server probe outcomes into the final verdict. Only a
// preliminary Route53Suspect is ever refined:
//
//   - every server failing with NXDomain, ServFail or Timeout escalates to
//     Route53Orphaned - none of the servers the parent delegates to can answer for
//     the subdomain, the strongest available evidence of a deleted hosted zone;
//   - any server answering de-escalates to DistinctHealthy - the earlier anomaly was
//     likely transient or an artifact of the default resolver's cache;
//   - anything else (mixed results, none answering) stays Route53Suspect.
func Refine(preliminary Verdict, probes []ServerProbe) Verdict {
	if preliminary != Route53Suspect || len(probes) == 0 {
		return preliminary
	}

	allFailed := true
	for _, p := range probes {
		switch p.Outcome.Kind {
		case resolver.Answered:
			return DistinctHealthy
		case resolver.NXDomain, resolver.ServFail, resolver.Timeout:
		default:
			allFailed = false
		}
	}

	if allFailed {
		return Route53Orphaned
	}

	return Route53Suspect
}
