package csvtext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"newline", "a\nb", []string{"a", "b"}},
		{"mixed crlf", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline", "a\nb\n", []string{"a", "b", ""}},
		{"trailing crlf", "a\nb\r\n", []string{"a", "b", ""}},
		{"empty line", "a\n\nb", []string{"a", "", "b"}},
		{"empty", "", []string{""}},
		{"carriage return run", "a\r\r\nb", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SplitLines(c.in))
		})
	}
}

func TestSplitLinesTrailingNewlineAddsOneElement(t *testing.T) {
	for _, a := range []string{"", "a", "a\nb", "x,y\r\nz"} {
		assert.Len(t, SplitLines(a+"\n"), len(SplitLines(a))+1, "%q", a)
	}
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, SplitCSV("a,b\nc,d"))
	assert.Equal(t, [][]string{{"a", "b"}}, SplitCSV("a,b\n\n"))
	assert.Equal(t, [][]string{{"a"}, {""}, {"b", "c"}}, SplitCSV("a\n\nb,c"))
	assert.Equal(t, [][]string{{"a", "", "c", ""}}, SplitCSV("a,,c,"))
	assert.Equal(t, [][]string{{"a"}}, SplitCSV("a\n  \n\t\n"))
	assert.Empty(t, SplitCSV(""))
	assert.Equal(t, [][]string{{"", ""}}, SplitCSV(",\n"))
}

func TestCheckNumbers(t *testing.T) {
	require.NoError(t, CheckNumbers([][]string{{"1", "-1.3e4", ".4e5"}}, 0))
	require.NoError(t, CheckNumbers([][]string{{"1"}, {"123", "45"}}, 0))

	ok, msg := Status(CheckNumbers([][]string{{"1"}, {"123", "45"}}, 0))
	assert.True(t, ok)
	assert.Equal(t, "OK", msg)
}

func TestCheckNumbersFieldCount(t *testing.T) {
	rows := [][]string{{"1"}, {"123", "45"}}

	ok, msg := Status(CheckNumbers(rows, 2))
	assert.False(t, ok)
	assert.Contains(t, msg, "line 1")

	ok, msg = Status(CheckNumbers(rows, 1))
	assert.False(t, ok)
	assert.Contains(t, msg, "line 2")
	assert.Contains(t, msg, "has 2 values, expecting 1")
}

func TestCheckNumbersRejectsNonNumeric(t *testing.T) {
	assert.Error(t, CheckNumbers([][]string{{"a"}}, 0))
	assert.Error(t, CheckNumbers([][]string{{""}}, 0))
}

func TestCheckNumbersFirstNonNumericLineWins(t *testing.T) {
	err := CheckNumbers([][]string{{"1"}, {"x"}, {"2"}, {"y"}}, 0)
	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
	assert.Contains(t, lineErr.Message, "non-numeric")
}

func TestCheckNumbersFieldCountOverridesEarlierNonNumeric(t *testing.T) {
	err := CheckNumbers([][]string{{"x", "1"}, {"1", "2"}, {"3"}}, 2)
	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 3, lineErr.Line)
	assert.Contains(t, lineErr.Message, "expecting 2 values")
}

func TestParse(t *testing.T) {
	rows, err := Parse("1, 0, 5.0, 0\r\n2,3, -1e-3 ,45\n\n", 4)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 5, 0}, {2, 3, -1e-3, 45}}, rows)

	_, err = Parse("1,2,3", 4)
	assert.Error(t, err)
}
