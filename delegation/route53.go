package delegation

import (
	"regexp"
	"strings"

	"github.com/markdingo/nsorphan/dnsutil"
)

// Route 53 assigns name servers of the form ns-NNN.awsdns-NN.{com,net,org,co.uk}. The
// suffix list is fixed rather than derived by naive TLD splitting because of the
// multi-label co.uk entry. Some AWS-operated infrastructure also answers from under
// amazonaws.com so that suffix is accepted too.
var route53Pattern = regexp.MustCompile(`\.awsdns-[0-9]+\.(com|net|org|co\.uk)$`)

// IsRoute53NS returns true if the name server name carries the Route 53 signature.
// The name is normalized before matching so case and trailing dots are irrelevant.
func IsRoute53NS(name string) bool {
	n := dnsutil.ChompCanonicalName(name)

	return route53Pattern.MatchString(n) || strings.HasSuffix(n, ".amazonaws.com")
}

// ContainsRoute53NS returns true if any name in the set matches the Route 53
// signature.
func ContainsRoute53NS(names []string) bool {
	for _, n := range names {
		if IsRoute53NS(n) {
			return true
		}
	}

	return false
}
