/*
Package resolver wraps all DNS lookups made by nsorphan behind a single interface so
that tests can substitute a mock implementation and so that every possible failure
from the underlying libraries is converted into an Outcome value at this one boundary.
Callers above this package never see raw net.Resolver or miekg errors; they only ever
branch on Outcome kinds.

Lookup functions use the system-configured resolver via net.Resolver. Exchange sends a
query directly to a nominated server address via miekg and deliberately never falls
back to the system resolver - failure to reach that specific server is itself signal
to the caller.
*/
package resolver
