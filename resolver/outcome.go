package resolver

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/nsorphan/dnsutil"
)

// OutcomeKind is the tag every DNS query result is reduced to. All classification
// logic above this package branches on these tags, never on raw library errors.
type OutcomeKind int

const (
	Answered   OutcomeKind = iota // Query succeeded with at least one record of the qtype
	NoData                        // Server answered NOERROR but with zero records of the qtype
	NXDomain                      // Server says the name does not exist
	ServFail                      // Server indicated failure processing the query
	Timeout                       // No response within the query timeout
	OtherError                    // Anything else - see Detail
)

func (t OutcomeKind) String() string {
	switch t {
	case Answered:
		return "Answered"
	case NoData:
		return "NoData"
	case NXDomain:
		return "NXDomain"
	case ServFail:
		return "ServFail"
	case Timeout:
		return "Timeout"
	}

	return "OtherError"
}

// Outcome is the uniform result of a single DNS query. Immutable once created and
// consumed exactly once by the step which issued the query.
type Outcome struct {
	Kind    OutcomeKind
	Records []string // Printable record values when Kind == Answered
	Detail  string   // Human-readable context when Kind == OtherError
}

func (t Outcome) String() string {
	if t.Kind == OtherError && len(t.Detail) > 0 {
		return t.Kind.String() + ":" + t.Detail
	}

	return t.Kind.String()
}

// Anomalous returns true for the resolution behaviors which suggest delegated name
// servers that cannot answer for the name: the classic orphaned-zone signature when
// seen thru an independent delegation.
func (t Outcome) Anomalous() bool {
	return t.Kind == NXDomain || t.Kind == ServFail || t.Kind == NoData
}

// NSSet queries the system resolver for the NS records of name. The returned names
// are normalized and in response order. A non-Answered Outcome always comes with an
// empty name list.
func NSSet(ctx context.Context, r Resolver, name string) ([]string, Outcome) {
	nss, err := r.LookupNS(ctx, name)
	if err != nil {
		return []string{}, classifyLookupError(err)
	}
	if len(nss) == 0 {
		return []string{}, Outcome{Kind: NoData}
	}

	nss = dnsutil.NormalizeNames(nss)

	return nss, Outcome{Kind: Answered, Records: nss}
}

// AddrOutcome queries the system resolver for the addresses of host. Used for the
// "does the subdomain actually resolve?" check.
func AddrOutcome(ctx context.Context, r Resolver, host string) Outcome {
	ips, err := r.LookupIPAddr(ctx, host)
	if err != nil {
		return classifyLookupError(err)
	}
	if len(ips) == 0 {
		return Outcome{Kind: NoData}
	}

	records := make([]string, 0, len(ips))
	for _, ip := range ips {
		records = append(records, ip.String())
	}

	return Outcome{Kind: Answered, Records: records}
}

// ExchangeOutcome sends qName/qType directly to the nominated server address and
// classifies the response. No fallback to the system resolver occurs - an unreachable
// server surfaces as Timeout or OtherError, which is precisely the signal the
// liveness checker is after.
func ExchangeOutcome(ctx context.Context, r Resolver, qName string, qType uint16,
	server, logName string) Outcome {
	q := dns.Question{Name: dns.CanonicalName(qName), Qtype: qType, Qclass: dns.ClassINET}
	m, _, err := r.Exchange(ctx, NewExchangeConfig(), q, server, logName)
	if err != nil {
		return classifyExchangeError(err)
	}

	return classifyMsg(m, qType)
}

// classifyLookupError maps the error vocabulary of net.Resolver onto Outcome tags.
// net.Resolver reports SERVFAIL as "server misbehaving" which is only reachable via
// string matching, the same compromise dnsutil.ShortenLookupError makes.
func classifyLookupError(err error) Outcome {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		switch {
		case dnsErr.IsNotFound:
			return Outcome{Kind: NXDomain}
		case dnsErr.IsTimeout:
			return Outcome{Kind: Timeout}
		case strings.Contains(dnsErr.Err, "server misbehaving"):
			return Outcome{Kind: ServFail}
		}
	}

	if isTimeout(err) {
		return Outcome{Kind: Timeout}
	}

	return Outcome{Kind: OtherError, Detail: dnsutil.ShortenLookupError(err).Error()}
}

func classifyExchangeError(err error) Outcome {
	if isTimeout(err) {
		return Outcome{Kind: Timeout}
	}

	return Outcome{Kind: OtherError, Detail: dnsutil.ShortenLookupError(err).Error()}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nErr net.Error
	if errors.As(err, &nErr) && nErr.Timeout() {
		return true
	}

	return false
}

// classifyMsg reduces a response message to an Outcome based on rcode and the
// presence of Answer records matching the qtype.
func classifyMsg(m *dns.Msg, qType uint16) Outcome {
	switch m.MsgHdr.Rcode {
	case dns.RcodeNameError:
		return Outcome{Kind: NXDomain}
	case dns.RcodeServerFailure:
		return Outcome{Kind: ServFail}
	case dns.RcodeSuccess:
	default:
		return Outcome{Kind: OtherError,
			Detail: "rcode " + dnsutil.RcodeToString(m.MsgHdr.Rcode)}
	}

	records := make([]string, 0, len(m.Answer))
	for _, rr := range m.Answer {
		if rr.Header().Rrtype != qType {
			continue
		}
		switch rrt := rr.(type) {
		case *dns.A:
			records = append(records, rrt.A.String())
		case *dns.AAAA:
			records = append(records, rrt.AAAA.String())
		case *dns.NS:
			records = append(records, rrt.Ns)
		default:
			records = append(records, rr.String())
		}
	}
	if len(records) == 0 {
		return Outcome{Kind: NoData}
	}

	return Outcome{Kind: Answered, Records: records}
}
