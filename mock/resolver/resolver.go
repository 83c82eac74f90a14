package resolver

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/nsorphan/dnsutil"
	"github.com/markdingo/nsorphan/log"
	"github.com/markdingo/nsorphan/resolver"
)

// mockResolver implements the resolver.Resolver interface by converting queries to
// file names and loading responses from those files. The convention is, if the file
// doesn't exist, the response is REFUSED or an error - depending on the interface. If
// the file exists, each line in the file is parsed with dns.NewRR - see file.go for
// the full format including the RCODE and ERROR directives which let tests stage
// NXDOMAIN, SERVFAIL and timeout conditions per query.
//
// The filename convention for Lookup functions is: $dir/lookup/$Class/$Type/$qname and
// for Exchange is $dir/exchange/$IP/$Class/$Type/$qname.
type mockResolver struct {
	dir string
}

// NewResolver creates a mock resolver which uses the supplied directory as the location
// of mock files to parse to produce dns lookup responses.
func NewResolver(dir string) *mockResolver {
	return &mockResolver{dir: dir}
}

func (t *mockResolver) LookupNS(ctx context.Context, name string) (ns []string, err error) {
	name = dnsutil.ChompCanonicalName(name)
	mf, path := t.loadLookupFile("IN", "NS", name)
	err = mf.lookupError(name)
	nsSet := make([]*net.NS, 0) // For logging purposes only
	if err == nil {
		for _, rr := range mf.msg.Answer { // Convert msg Answer RRs to strings
			if rrt, ok := rr.(*dns.NS); ok {
				ns = append(ns, rrt.Ns)
				nsSet = append(nsSet, &net.NS{Host: rrt.Ns})
			}
		}
	}

	resolver.LogNS(name, nsSet, path, err)

	return
}

func (t *mockResolver) LookupIPAddr(ctx context.Context, host string) (ips []net.IP, err error) {
	host = dnsutil.ChompCanonicalName(host)
	aFile, aPath := t.loadLookupFile("IN", "A", host)
	aaaaFile, aaaaPath := t.loadLookupFile("IN", "AAAA", host)

	// The A file's status is authoritative for error staging as net.Resolver
	// presents a single composite result for both families.
	err = aFile.lookupError(host)

	addrs := make([]net.IPAddr, 0) // For logging purposes only

	if err == nil {
		for _, rr := range aFile.msg.Answer {
			if rrt, ok := rr.(*dns.A); ok {
				ips = append(ips, rrt.A)
				addrs = append(addrs, net.IPAddr{IP: rrt.A})
			}
		}
		if aaaaFile.msg.MsgHdr.Rcode == dns.RcodeSuccess {
			for _, rr := range aaaaFile.msg.Answer {
				if rrt, ok := rr.(*dns.AAAA); ok {
					ips = append(ips, rrt.AAAA)
					addrs = append(addrs, net.IPAddr{IP: rrt.AAAA})
				}
			}
		}
	}
	resolver.LogIP(host, addrs, aPath+","+aaaaPath, err)

	return
}

// Exchange only ever makes a single "attempt" as the file system is a tad more stable
// than the DNS and can hold more than 512 bytes per file - hopefully!
func (t *mockResolver) Exchange(ctx context.Context, c resolver.ExchangeConfig, q dns.Question,
	server, logName string) (out *dns.Msg, rtt time.Duration, err error) {
	netName := c.Net()
	if len(netName) == 0 {
		netName = dnsutil.UDPNetwork
	}

	if log.IfDebug() {
		resolver.LogExchangeQ(netName, logName, server, q)
	}

	mf, _ := t.loadExchangeFile(server,
		dns.ClassToString[q.Qclass], dns.TypeToString[q.Qtype],
		dnsutil.ChompCanonicalName(q.Name))
	err = mf.exchangeError()
	if err == nil {
		query := new(dns.Msg)
		query.Question = append(query.Question, q)
		mf.msg.SetRcode(query, mf.msg.MsgHdr.Rcode)
		out = &mf.msg
	}

	if log.IfDebug() {
		resolver.LogExchangeA(server, q, out, err)
	}

	return
}
