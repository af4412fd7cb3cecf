package charutil

import "strings"

// SplitLines splits buf on '\n', excluding the terminator from each
// line. A trailing line without a terminating newline is included. An
// empty buffer yields a single empty line, matching strings.Split's
// behavior; the persistence reader skips empty lines.
func SplitLines(buf string) []string {
	return strings.Split(buf, "\n")
}
