// Package mood formats mood reports for a person and their feelings.
package mood

import "fmt"

// Report returns one line per feeling, in the order given:
//
//	<name> is feeling <feeling> today.
//
// An empty feelings list yields an empty (non-nil) result.
func Report(name string, feelings []string) []string {
	lines := make([]string, 0, len(feelings))
	for _, feeling := range feelings {
		lines = append(lines, fmt.Sprintf("%s is feeling %s today.", name, feeling))
	}
	return lines
}
