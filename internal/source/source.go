// Package source yields numerals from command-line arguments or from a
// line-oriented reader.
package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxLine is the longest accepted input line in bytes.
const MaxLine = 16 << 20

// Each calls fn for every numeral.
// If args is not empty, its elements are the numerals and r is not read.
// Otherwise r is read line by line; surrounding spaces are trimmed and blank
// lines are skipped.
// Numerals are not validated here.
// Each stops at the first error returned by fn or by reading r.
func Each(args []string, r io.Reader, fn func(num string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(strings.TrimSpace(arg)); err != nil {
				return err
			}
		}
		return nil
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLine)
	line := 0
	for sc.Scan() {
		line++
		num := strings.TrimSpace(sc.Text())
		if num == "" {
			continue
		}
		if err := fn(num); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading line %v: %w", line+1, err)
	}
	return nil
}
