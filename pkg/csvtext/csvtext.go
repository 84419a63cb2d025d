// Package csvtext splits the comma separated text blocks of an antenna
// description (wires, sources, loads) into rows of fields and validates them.
package csvtext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/toy-mininec/pkg/util"
)

var lineBreak = regexp.MustCompile(`\r*\n`)

// LineError reports the first offending line of a text block. Line is 1-based.
type LineError struct {
	Line    int
	Message string
}

func (e *LineError) Error() string { return e.Message }

// SplitLines splits text on "\n", swallowing any run of "\r" before it.
// A trailing newline yields a trailing empty line; "" yields [""].
func SplitLines(text string) []string {
	return lineBreak.Split(text, -1)
}

// SplitCSV splits text into lines, then every line on ",". Trailing lines
// holding a single blank field are removed; interior blank lines and blank
// fields are kept.
func SplitCSV(text string) [][]string {
	lines := SplitLines(text)
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, ",")
	}

	for len(rows) > 0 {
		last := rows[len(rows)-1]
		if len(last) != 1 || strings.TrimSpace(last[0]) != "" {
			break
		}
		rows = rows[:len(rows)-1]
	}
	return rows
}

// CheckNumbers verifies that every field is numeric and, when noFields > 0,
// that every row has exactly noFields fields. A field count mismatch stops the
// scan; a non-numeric row is remembered and the scan continues, so a later
// field count mismatch still takes precedence.
func CheckNumbers(rows [][]string, noFields int) error {
	var firstErr *LineError

	for i, row := range rows {
		if noFields > 0 && len(row) != noFields {
			return &LineError{
				Line:    i + 1,
				Message: fmt.Sprintf("error, line %d has %d values, expecting %d values !", i+1, len(row), noFields),
			}
		}
		if firstErr != nil {
			continue
		}
		for _, field := range row {
			if !util.IsNumeric(field) {
				firstErr = &LineError{
					Line:    i + 1,
					Message: fmt.Sprintf("error, line %d has non-numeric values !", i+1),
				}
				break
			}
		}
	}

	if firstErr != nil {
		return firstErr
	}
	return nil
}

// Status converts a CheckNumbers result into the (success, message) pair
// shown to users, "OK" on success.
func Status(err error) (bool, string) {
	if err != nil {
		return false, err.Error()
	}
	return true, "OK"
}

// ParseRows converts rows already accepted by CheckNumbers into numbers.
func ParseRows(rows [][]string) ([][]float64, error) {
	values := make([][]float64, len(rows))
	for i, row := range rows {
		values[i] = make([]float64, len(row))
		for j, field := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &LineError{
					Line:    i + 1,
					Message: fmt.Sprintf("error, line %d field %d: %v", i+1, j+1, err),
				}
			}
			values[i][j] = v
		}
	}
	return values, nil
}

// Parse runs SplitCSV, CheckNumbers and ParseRows on a text block.
func Parse(text string, noFields int) ([][]float64, error) {
	rows := SplitCSV(text)
	if err := CheckNumbers(rows, noFields); err != nil {
		return nil, err
	}
	return ParseRows(rows)
}
