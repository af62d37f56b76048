package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is one deal read from the input, with its 1-based line number.
type Line struct {
	Number int
	Values []int
	// Err is set when the line could not be parsed as integers.
	Err error
}

// ReadDeals reads one deal per line. Values may be separated by whitespace
// or commas; blank lines and lines starting with '#' are skipped. A line
// that fails to parse is returned with Err set rather than stopping the read.
func ReadDeals(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		values, err := parseValues(text)
		lines = append(lines, Line{Number: n, Values: values, Err: err})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading deals: %w", err)
	}
	return lines, nil
}

func parseValues(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return values, fmt.Errorf("invalid card number %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}
