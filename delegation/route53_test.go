package delegation

import (
	"testing"
)

func TestIsRoute53NS(t *testing.T) {
	testCases := []struct {
		name    string
		matches bool
	}{
		{"ns-123.awsdns-45.com", true},
		{"ns-123.awsdns-45.com.", true},
		{"NS-123.AWSDNS-45.COM", true},
		{"ns-1.awsdns-01.org", true},
		{"ns-99.awsdns-07.net", true},
		{"ns-2048.awsdns-63.co.uk", true},
		{"d-abc123.amazonaws.com", true},
		{"something.execute-api.amazonaws.com.", true},

		{"ns1.otherprovider.net", false},
		{"awsdns-45.com", false},       // Signature must follow a host label
		{"ns-1.awsdns-.com", false},    // Digits are required
		{"ns-1.awsdns-4x.com", false},  // Digits only
		{"ns-1.awsdns-45.io", false},   // Not an AWS TLD suffix
		{"ns-1.awsdns-45.uk", false},   // co.uk yes, bare uk no
		{"amazonaws.com", false},       // Suffix must follow a label
		{"ns1.notamazonaws.com", false},
		{"", false},
	}

	for ix, tc := range testCases {
		if got := IsRoute53NS(tc.name); got != tc.matches {
			t.Error(ix, tc.name, "want", tc.matches, "got", got)
		}
	}
}

func TestContainsRoute53NS(t *testing.T) {
	if ContainsRoute53NS(nil) {
		t.Error("Empty set cannot contain the signature")
	}
	if ContainsRoute53NS([]string{"ns1.otherprovider.net", "ns2.otherprovider.net"}) {
		t.Error("No name matches, should be false")
	}
	if !ContainsRoute53NS([]string{"ns1.otherprovider.net", "ns-1.awsdns-01.org."}) {
		t.Error("One match should suffice")
	}
}
