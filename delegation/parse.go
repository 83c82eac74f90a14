package delegation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markdingo/nsorphan/dnsutil"
)

var (
	// ErrNotParent means the supplied parent domain is not a proper ancestor of the
	// subdomain.
	ErrNotParent = errors.New("parent is not an ancestor of the subdomain")

	// ErrTooFewLabels means the parent domain cannot be inferred because stripping
	// a label from the subdomain would not leave a registrable parent domain.
	ErrTooFewLabels = errors.New("too few labels to infer a parent domain")
)

// Target is a validated (subdomain, parent) pair. Names are canonical with the
// trailing dot removed.
type Target struct {
	Subdomain      string
	Parent         string
	ParentInferred bool // Parent was derived rather than supplied
}

// ParseTarget validates the subdomain and resolves the parent domain, either by
// validating the supplied one or by inferring it from the subdomain. This is pure
// string processing - no network I/O occurs so both failure modes surface before any
// queries are issued.
func ParseTarget(subdomain, parent string) (Target, error) {
	t := Target{Subdomain: dnsutil.ChompCanonicalName(subdomain)}
	subLabels := countLabels(t.Subdomain)
	if subLabels == 0 {
		return t, fmt.Errorf("%w: empty subdomain", ErrTooFewLabels)
	}

	if len(parent) > 0 {
		t.Parent = dnsutil.ChompCanonicalName(parent)
		parentLabels := countLabels(t.Parent)
		if parentLabels == 0 {
			return t, fmt.Errorf("%w: empty parent", ErrNotParent)
		}
		if subLabels <= parentLabels ||
			!strings.HasSuffix(t.Subdomain, "."+t.Parent) {
			return t, fmt.Errorf("%w: %s is not under %s",
				ErrNotParent, t.Subdomain, t.Parent)
		}

		return t, nil
	}

	// Infer the parent by stripping the leftmost label. A bare two-label domain has
	// no meaningful parent to compare delegation against, so insist on at least
	// three labels.
	if subLabels < 3 {
		return t, fmt.Errorf("%w: %s - supply the parent explicitly",
			ErrTooFewLabels, t.Subdomain)
	}
	ix := strings.Index(t.Subdomain, ".")
	t.Parent = t.Subdomain[ix+1:]
	t.ParentInferred = true

	return t, nil
}

// countLabels counts the dot-separated labels of a chomped name. Empty labels make
// the whole name invalid as far as this program is concerned.
func countLabels(name string) int {
	if len(name) == 0 {
		return 0
	}
	labels := strings.Split(name, ".")
	for _, l := range labels {
		if len(l) == 0 {
			return 0
		}
	}

	return len(labels)
}
