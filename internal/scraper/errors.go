package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// ErrMalformedDocument is wrapped by every ParseError
var ErrMalformedDocument = errors.New("malformed listing document")

// ParseError reports where a listing page deviated from the expected layout.
// Row and Cell are 0-based; -1 means the error is not tied to a row or cell.
type ParseError struct {
	Category domain.Category
	Row      int
	Cell     int
	Item     string
	Expected string
	Err      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(string(e.Category)))
	b.WriteString(" page")
	if e.Row >= 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Cell >= 0 {
		fmt.Fprintf(&b, " cell %d", e.Cell)
	}
	if e.Item != "" {
		fmt.Fprintf(&b, " (%s)", e.Item)
	}
	b.WriteString(": expected ")
	b.WriteString(e.Expected)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedDocument, e.Err}
	}
	return []error{ErrMalformedDocument}
}

// expectation is raised inside a cell and positioned by the page parser
type expectation struct {
	item     string
	expected string
	err      error
}

func (e *expectation) Error() string {
	if e.err != nil {
		return "expected " + e.expected + ": " + e.err.Error()
	}
	return "expected " + e.expected
}

func expect(item, what string) error {
	return &expectation{item: item, expected: what}
}

func expectErr(item, what string, err error) error {
	return &expectation{item: item, expected: what, err: err}
}

func positioned(err error, category domain.Category, row, cell int) error {
	var exp *expectation
	if errors.As(err, &exp) {
		return &ParseError{Category: category, Row: row, Cell: cell, Item: exp.item, Expected: exp.expected, Err: exp.err}
	}
	return err
}
