package resolver

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/nsorphan/dnsutil"
	"github.com/markdingo/nsorphan/log"
)

func (t *resolver) Exchange(ctx context.Context, c ExchangeConfig, question dns.Question,
	server, logName string) (r *dns.Msg, rtt time.Duration, err error) {
	query := new(dns.Msg)
	query.Id = dns.Id()
	query.RecursionDesired = false // Just to make it clear this is purposefully false
	query.SetEdns0(c.UDPSize(), false)
	query.Question = append(query.Question, question)

	c.setNet(dnsutil.UDPNetwork)
	r, rtt, err = t.exchangeOnce(ctx, c, query, server, logName)
	if err != nil {
		return
	}

	// If truncated, try again with TCP. This is the only retry - an unreachable or
	// failing server is signal, not something to paper over.
	if r.MsgHdr.Rcode == dns.RcodeSuccess && r.MsgHdr.Truncated {
		c.setNet(dnsutil.TCPNetwork)
		r, rtt, err = t.exchangeOnce(ctx, c, query, server, logName)
	}

	return
}

func (t *resolver) exchangeOnce(ctx context.Context, c ExchangeConfig, q *dns.Msg,
	server, logName string) (r *dns.Msg, rtt time.Duration, err error) {
	question := q.Question[0]
	client := &dns.Client{Timeout: t.queryTimeout}
	client.Net = c.Net()
	client.UDPSize = c.UDPSize()
	_, _, e := net.SplitHostPort(server) // Coerce a service onto the name if
	if e != nil {                        // it hasn't got one
		server = net.JoinHostPort(server, "domain")
	}

	if log.IfDebug() {
		LogExchangeQ(client.Net, logName, server, question)
	}

	r, rtt, err = client.ExchangeContext(ctx, q, server)

	if log.IfDebug() {
		LogExchangeA(server, question, r, err)
	}

	return
}
