package delegation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dchest/siphash"

	"github.com/markdingo/nsorphan/dnsutil"
)

// Fixed siphash-2-4 key. Unlike DNS cookies there is no adversary here - the key is
// constant so that fingerprints compare across runs and across hosts.
const (
	fingerprintKey0 uint64 = 0x6e736f727068616e // "nsorphan"
	fingerprintKey1 uint64 = 0x64656c6567617465 // "delegate"
)

// Fingerprint returns a stable 16 hex digit hash of the name server set. Names are
// normalized and sorted first so any two delegations containing the same servers
// produce the same fingerprint regardless of response order. Operators can diff
// fingerprints between runs without this program having to persist anything.
func Fingerprint(names []string) string {
	set := dnsutil.NormalizeNames(names)
	sort.Strings(set)
	sum := siphash.Hash(fingerprintKey0, fingerprintKey1,
		[]byte(strings.Join(set, "\n")))

	return fmt.Sprintf("%016x", sum)
}
