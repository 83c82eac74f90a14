package resolver

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/nsorphan/dnsutil"
)

const (
	// DefaultQueryTimeout bounds each individual DNS query. Total runtime of a check
	// is thus (name server count + a small constant) * DefaultQueryTimeout in the
	// worst case.
	DefaultQueryTimeout = 5 * time.Second
)

// ExchangeConfig expresses the few miekg Client settings this program cares about.
// It's defined as an interface rather than a struct to enforce the use of
// NewExchangeConfig which sets defaults.
type ExchangeConfig interface {
	Net() string
	UDPSize() uint16
	setNet(s string)
}

type exchangeConfig struct {
	net     string
	udpSize uint16
}

func (t *exchangeConfig) Net() string     { return t.net }
func (t *exchangeConfig) UDPSize() uint16 { return t.udpSize }
func (t *exchangeConfig) setNet(s string) { t.net = s }

func NewExchangeConfig() *exchangeConfig {
	return &exchangeConfig{net: dnsutil.UDPNetwork, udpSize: dnsutil.MaxUDPSize}
}

// Resolver abstracts the DNS query functions used by nsorphan which reach out to the
// internet. All non-networking functions are called directly by the application.
//
// Both net.Resolver and the miekg Client claim concurrency safety so implementations
// of this interface should too, even though nsorphan itself runs strictly one query
// at a time.
type Resolver interface {

	// LookupNS is similar to net.Resolver.LookupNS and queries via the system
	// resolver. It derives a WithDeadline context from the supplied context so the
	// caller need not worry about timeouts.
	LookupNS(context.Context, string) ([]string, error)

	// LookupIPAddr is similar to net.Resolver.LookupIPAddr and queries via the
	// system resolver. It derives a WithDeadline context from the supplied context
	// so the caller need not worry about timeouts.
	LookupIPAddr(context.Context, string) ([]net.IP, error)

	// Exchange sends the question directly to the nominated server - normally an
	// ip address with an optional port - and returns its response. One UDP attempt
	// is made with a single retry over TCP if the response comes back truncated.
	// There are deliberately no other retries and no fallback to the system
	// resolver: a dead or broken server is exactly what the caller is probing for.
	//
	// logName is normally the domain name of the server and is only used to help
	// identify the server in debug logs.
	Exchange(ctx context.Context, c ExchangeConfig, q dns.Question,
		server, logName string) (r *dns.Msg, rtt time.Duration, err error)
}
