package resolver

import (
	"context"
	"net"
	"time"

	"github.com/markdingo/nsorphan/log"
)

type resolver struct {
	netResolver net.Resolver

	queryTimeout time.Duration
}

// NewResolver creates a fully formed live resolver which is ready to use.
func NewResolver() *resolver {
	return &resolver{queryTimeout: DefaultQueryTimeout}
}

// SetQueryTimeout overrides the per-query timeout. Must be called before any queries
// are issued. A zero or negative duration is ignored.
func (t *resolver) SetQueryTimeout(d time.Duration) {
	if d > 0 {
		t.queryTimeout = d
	}
}

func (t *resolver) LookupNS(ctx context.Context, name string) ([]string, error) {
	ctxWithTO, cancel := context.WithDeadline(ctx, time.Now().Add(t.queryTimeout))
	defer cancel()
	nsSet, err := t.netResolver.LookupNS(ctxWithTO, name)
	if log.IfDebug() {
		LogNS(name, nsSet, "", err)
	}

	if err != nil {
		return []string{}, err
	}

	nss := make([]string, 0, len(nsSet))
	for _, n := range nsSet {
		nss = append(nss, n.Host)
	}

	return nss, nil
}

func (t *resolver) LookupIPAddr(ctx context.Context, host string) ([]net.IP, error) {
	ctxWithTO, cancel := context.WithDeadline(ctx, time.Now().Add(t.queryTimeout))
	defer cancel()
	addrs, err := t.netResolver.LookupIPAddr(ctxWithTO, host)
	if log.IfDebug() {
		LogIP(host, addrs, "", err)
	}
	if err != nil {
		return []net.IP{}, err
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, a := range addrs {
		ips = append(ips, a.IP)
	}

	return ips, nil
}
