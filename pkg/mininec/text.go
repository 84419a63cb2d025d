package mininec

import (
	"errors"

	"github.com/edp1096/toy-mininec/pkg/csvtext"
)

const (
	geometryFields = 8
	sourceFields   = 4
)

// parseText runs a text block through the tokenizer and validator.
func parseText(text string, noFields int) ([][]float64, error) {
	rows, err := csvtext.Parse(text, noFields)
	if err != nil {
		var lineErr *csvtext.LineError
		if errors.As(err, &lineErr) {
			return nil, newError(ParseError, lineErr.Line, lineErr.Message)
		}
		return nil, newError(ParseError, 0, err.Error())
	}
	return rows, nil
}

// SetGeometryText takes one wire per line, 8 comma separated values.
func (s *Session) SetGeometryText(withGround bool, text string) error {
	rows, err := parseText(text, geometryFields)
	if err != nil {
		return s.reject(err)
	}
	return s.SetGeometry(withGround, rows)
}

func (s *Session) SetSourcesText(text string) error {
	rows, err := parseText(text, sourceFields)
	if err != nil {
		return s.reject(err)
	}
	return s.SetSources(rows)
}

// SetLoadsText accepts lines of varying length, see SetLoads.
func (s *Session) SetLoadsText(text string) error {
	rows, err := parseText(text, 0)
	if err != nil {
		return s.reject(err)
	}
	return s.SetLoads(rows)
}
