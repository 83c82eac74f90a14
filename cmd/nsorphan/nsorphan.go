package main

import (
	"fmt"

	"github.com/markdingo/nsorphan/resolver"
)

// The nsOrphan container exists so that most of the "main" functionality can be
// delegated to support functions and help keep the flow of main() nice and clean.
type nsOrphan struct {
	cfg      *config
	resolver resolver.Resolver
}

func newNsOrphan(cfg *config, r resolver.Resolver) *nsOrphan {
	t := &nsOrphan{cfg: cfg, resolver: r}
	if t.cfg == nil {
		t.cfg = newConfig()
	}
	if t.resolver == nil {
		t.resolver = resolver.NewResolver()
	}

	return t
}

// ValidateCommandLineOptions catches settings which are syntactically fine but can
// never make sense. Parse errors are caught earlier by parseOptions.
func (t *nsOrphan) ValidateCommandLineOptions() error {
	if t.cfg.timeout < minimumTimeout {
		return fmt.Errorf("--timeout must be at least %s, not %s",
			minimumTimeout, t.cfg.timeout)
	}

	return nil
}
