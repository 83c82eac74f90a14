package dnsutil

// NormalizeNames returns a copy of the supplied domain names in canonical form with
// the trailing dot removed. Response order is preserved as callers mostly want
// deterministic output rather than sorted output.
func NormalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, ChompCanonicalName(n))
	}

	return out
}

// EqualNameSets compares two lists of domain names as sets after normalization, so
// record order, case and trailing dots are all irrelevant to the comparison. Duplicate
// names within a list count once.
func EqualNameSets(a, b []string) bool {
	aMap := make(map[string]struct{}, len(a))
	for _, n := range a {
		aMap[ChompCanonicalName(n)] = struct{}{}
	}
	bMap := make(map[string]struct{}, len(b))
	for _, n := range b {
		bMap[ChompCanonicalName(n)] = struct{}{}
	}

	if len(aMap) != len(bMap) {
		return false
	}
	for n := range aMap {
		if _, ok := bMap[n]; !ok {
			return false
		}
	}

	return true
}
