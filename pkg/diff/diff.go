// Package diff compares two renders of a component line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// MaxLines caps the body of a diff; longer output ends with a marker.
const MaxLines = 2000

const truncateMessage = "... (diff truncated) ..."

// Stats counts the lines a diff adds and removes.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether the two sides differ.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Lines returns a unified-style, line-granular diff of before and after.
// Identical input yields an empty string.
func Lines(before, after, beforeLabel, afterLabel string) (string, Stats) {
	if before == after {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(withNewline(before), withNewline(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var (
		body  []string
		stats Stats
	)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				body = append(body, " "+line)
			case diffmatchpatch.DiffDelete:
				body = append(body, "-"+line)
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				body = append(body, "+"+line)
				stats.Added++
			}
		}
	}

	if len(body) > MaxLines {
		body = append(body[:MaxLines], truncateMessage)
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeLabel, afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(splitLines(withNewline(before))), len(splitLines(withNewline(after))))
	for _, line := range body {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.String(), stats
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
