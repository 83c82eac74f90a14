package resolver

import (
	"bufio"
	"errors"
	"net"
	"os"
	"path"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/nsorphan/log"
)

// mockFile is the parsed form of one canned response file. errText carries the value
// of an ERROR: directive, if any, which takes precedence over the message content.
type mockFile struct {
	msg     dns.Msg
	errText string
}

// lookupError converts the mockFile status into the error vocabulary of net.Resolver
// so that outcome classification sees exactly what a live lookup would produce.
func (t *mockFile) lookupError(name string) error {
	if len(t.errText) > 0 {
		if t.errText == "timeout" {
			return &net.DNSError{Err: "i/o timeout", Name: name, IsTimeout: true}
		}
		return errors.New(t.errText)
	}

	switch t.msg.MsgHdr.Rcode {
	case dns.RcodeSuccess:
		return nil
	case dns.RcodeNameError:
		return &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
	case dns.RcodeServerFailure:
		return &net.DNSError{Err: "server misbehaving", Name: name}
	}

	return &net.DNSError{Err: "server refused", Name: name}
}

// exchangeError returns a transport-level error for ERROR: directives. Rcode-level
// conditions are not errors at the exchange interface - they come back in the message
// just as miekg returns them.
func (t *mockFile) exchangeError() error {
	if len(t.errText) == 0 {
		return nil
	}
	if t.errText == "timeout" {
		return &net.OpError{Op: "read", Net: "udp",
			Err: &timeoutError{}}
	}

	return errors.New(t.errText)
}

// timeoutError satisfies net.Error with Timeout() == true.
type timeoutError struct{}

func (t *timeoutError) Error() string { return "i/o timeout" }
func (t *timeoutError) Timeout() bool { return true }

func (t *mockResolver) loadLookupFile(qClass, qType, qName string) (mf mockFile, fname string) {
	fname = path.Join(t.dir, "lookup", strings.ToUpper(qClass), strings.ToUpper(qType), qName)
	return t.loadFile(fname), fname
}

func (t *mockResolver) loadExchangeFile(addr, qClass, qType, qName string) (mf mockFile,
	fname string) {

	// addr is ipv4:service or [ipv6]:service or a bare ip - we want just the ip
	// address to form the path to the response RRs. Do a cheap&nasty extraction.

	sx := 0
	var ex int
	if addr[0] == '[' {
		sx = 1
		ex = strings.Index(addr, "]")
	} else if ix := strings.LastIndex(addr, ":"); ix != -1 && strings.Count(addr, ":") == 1 {
		ex = ix
	} else {
		ex = len(addr)
	}
	if ex == -1 {
		panic("Bogus IP Address:" + addr)
	}
	addr = addr[sx:ex]

	fname = path.Join(t.dir, "exchange", addr, strings.ToUpper(qClass), strings.ToUpper(qType), qName)
	return t.loadFile(fname), fname
}

// Attempt to open a mock file. If it doesn't exist, return REFUSED. If it does exist
// and is empty return NXDOMAIN. If it's not empty parse as a series of dns.NewRR()
// lines with a prefix indicating which section the RR belongs in:
//
// A:Answer
// N:NS
// E:Extra
// RCODE:miekg rcode string - must be uppercase - see miekg/msg.go
// ERROR:timeout or ERROR:any other detail - simulates a transport-level failure
// ;; Comment
// Blank lines ignored
// No spaces around the ":" separator
//
// If you set RCODE: or ERROR: then normally there should be no RRs in the message as
// no caller will look at them.
//
// It turns out that github and zip don't like filenames with colons, so we substitute
// with "_". This is all just test data so it has no impact on running code.
func (t *mockResolver) loadFile(fname string) (mf mockFile) {
	fname = strings.ReplaceAll(fname, ":", "_")
	log.Debug("mock:Resolver:Open:", fname)
	file, err := os.Open(fname)
	if err != nil { // Assume no exist
		mf.msg.MsgHdr.Rcode = dns.RcodeRefused
		return
	}
	defer file.Close()
	rcode := -1 // Means not set

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\n")
		if len(line) == 0 {
			continue
		}
		if strings.HasPrefix(line, ";;") {
			continue
		}
		ar := strings.SplitN(line, ":", 2)
		if len(ar) != 2 { // Malformed is a setup error
			panic("Malformed loadfile " + fname)
		}

		if ar[0] == "RCODE" {
			rcode = dns.StringToRcode[ar[1]]
			log.Debugf("Mock:File:Rcode %d from '%s'", rcode, ar[1])
			continue
		}

		if ar[0] == "ERROR" {
			mf.errText = ar[1]
			log.Debugf("Mock:File:Error '%s'", ar[1])
			continue
		}

		rr, err := dns.NewRR(ar[1])
		if err != nil {
			panic(err) // Parse failure is a setup error
		}

		switch ar[0] {
		case "A":
			mf.msg.Answer = append(mf.msg.Answer, rr)
		case "N":
			mf.msg.Ns = append(mf.msg.Ns, rr)
		case "E":
			mf.msg.Extra = append(mf.msg.Extra, rr)

		default:
			panic("filemock bad Section: " + ar[0])
		}
	}

	if rcode == -1 {
		if len(mf.msg.Answer) == 0 && len(mf.msg.Ns) == 0 && len(mf.msg.Extra) == 0 &&
			len(mf.errText) == 0 {
			rcode = dns.RcodeNameError // NXDOMAIN
		}
	}
	if rcode == -1 {
		rcode = dns.RcodeSuccess
	}
	mf.msg.MsgHdr.Rcode = rcode

	return
}
