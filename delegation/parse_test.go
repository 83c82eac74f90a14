package delegation

import (
	"errors"
	"testing"
)

func TestParseTargetInfer(t *testing.T) {
	testCases := []struct {
		subdomain string
		parent    string
		err       error
	}{
		{"a.b.example.com", "b.example.com", nil},
		{"a.b.example.com.", "b.example.com", nil}, // Trailing dot is chomped
		{"WWW.Corp.Example.NET", "corp.example.net", nil},
		{"sub.example.com", "example.com", nil},
		{"example.com", "", ErrTooFewLabels}, // Bare registrable domain
		{"com", "", ErrTooFewLabels},
		{"", "", ErrTooFewLabels},
		{"a..example.com", "", ErrTooFewLabels}, // Empty label invalidates the name
	}

	for ix, tc := range testCases {
		target, err := ParseTarget(tc.subdomain, "")
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Error(ix, "Want error", tc.err, "got", err)
			}
			continue
		}
		if err != nil {
			t.Error(ix, "Unexpected error", err)
			continue
		}
		if target.Parent != tc.parent {
			t.Error(ix, "Inferred parent mismatch. Want", tc.parent,
				"got", target.Parent)
		}
		if !target.ParentInferred {
			t.Error(ix, "ParentInferred should be set")
		}
	}
}

func TestParseTargetExplicit(t *testing.T) {
	testCases := []struct {
		subdomain, parent string
		err               error
	}{
		{"a.b.example.com", "b.example.com", nil},
		{"a.b.example.com", "example.com", nil}, // Grandparent is fine
		{"a.b.example.com", "B.EXAMPLE.COM.", nil},
		{"sub.example.com", "example.com", nil},
		{"a.example.com", "a.example.com", ErrNotParent},  // Not a strict descendant
		{"a.example.com", "example.org", ErrNotParent},    // Different domain
		{"aexample.com", "example.com", ErrNotParent},     // Suffix but not on a label
		{"example.com", "a.example.com", ErrNotParent},    // Inverted
		{"sub.com", "", ErrTooFewLabels},                  // Falls back to inference
		{"a.example.com", "..", ErrNotParent},             // Garbage parent
	}

	for ix, tc := range testCases {
		target, err := ParseTarget(tc.subdomain, tc.parent)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Error(ix, "Want error", tc.err, "got", err)
			}
			continue
		}
		if err != nil {
			t.Error(ix, "Unexpected error", err)
			continue
		}
		if target.ParentInferred {
			t.Error(ix, "ParentInferred should not be set")
		}
	}
}
