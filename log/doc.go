/*
Package log controls all diagnostic output produced by nsorphan. There are four
levels: Silent, Major, Minor and Debug, each one more verbose than its predecessor.
Levels are inclusive so setting MinorLevel implies MajorLevel output as well. The
application decides which output belongs at which level; broadly, the final verdict is
Major, the supporting record sets are Minor and raw query exchanges are Debug.

Once command-line parsing has succeeded, all output should flow thru this package so
that tests can capture it by substituting the io.Writer. The Print and Printf style
functions differ from their fmt counterparts in that a trailing newline is implied,
surplus trailing newlines are trimmed and every line of a multi-line string gets the
level prefix.
*/
package log
