// Package numbering produces sequential document numbers such as Sub001 and
// INV014. Numbers are prefix plus a zero-padded sequence; padding widens past
// three digits once the sequence outgrows it.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
)

const minDigits = 3

// Format renders a sequence under a prefix, e.g. Format("INV", 14) == "INV014".
func Format(prefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, minDigits, seq)
}

// NextSequence derives the next sequence from the highest existing number
// carrying the prefix. An empty highest starts the sequence at 1. Numbers
// whose suffix is not numeric count as 0.
func NextSequence(highest, prefix string) int {
	if highest == "" {
		return 1
	}
	suffix := strings.TrimPrefix(highest, prefix)
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 1
	}
	return n + 1
}

// Next combines NextSequence and Format.
func Next(highest, prefix string) string {
	return Format(prefix, NextSequence(highest, prefix))
}
