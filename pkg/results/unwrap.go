// Package results extracts the canonical event result structure from the
// loosely shaped documents the vendor exports.
package results

import (
	"errors"
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/virtualgrid/league-results-go/pkg/model"
)

var (
	ErrNoResult        = errors.New("document contains no event result")
	ErrSessionNotFound = errors.New("session not found")
)

// DocumentShape describes the recognized top-level layouts of an
// event result document.
type DocumentShape int

const (
	ShapeInvalid DocumentShape = iota
	// ShapeWrapped is the {type, data} envelope with the event nested in data
	ShapeWrapped
	// ShapeUnwrapped is the event object as the top-level document
	ShapeUnwrapped
)

// Shape inspects a parsed document and reports which of the recognized
// layouts it matches.
func Shape(doc any) DocumentShape {
	m, ok := doc.(map[string]any)
	if !ok {
		return ShapeInvalid
	}
	if _, ok := m["data"].(map[string]any); ok {
		return ShapeWrapped
	}
	if _, ok := m["session_results"]; ok {
		return ShapeUnwrapped
	}
	return ShapeInvalid
}

// Unwrap extracts the event result from a parsed document.
// Returns ErrNoResult when the document matches neither recognized shape;
// callers render an invalid-file state instead of failing the whole page.
func Unwrap(doc any) (*model.EventResult, error) {
	var payload any
	switch Shape(doc) {
	case ShapeWrapped:
		payload = doc.(map[string]any)["data"]
	case ShapeUnwrapped:
		payload = doc
	default:
		return nil, ErrNoResult
	}
	ret := model.EventResult{}
	if err := oj.Unmarshal([]byte(oj.JSON(payload)), &ret); err != nil {
		return nil, errors.Join(ErrNoResult, err)
	}
	ret.Origin = model.OriginJSON
	return &ret, nil
}

// UnwrapString parses raw JSON text and unwraps it.
func UnwrapString(jsonText string) (*model.EventResult, error) {
	doc, err := oj.ParseString(jsonText)
	if err != nil {
		return nil, errors.Join(ErrNoResult, err)
	}
	return Unwrap(doc)
}

// FindSession returns the first session whose type name matches the
// requested name (case-insensitive). Recognized names are
// model.SessionRace and model.SessionQualify.
func FindSession(ev *model.EventResult, name string) (*model.Session, error) {
	for i := range ev.SessionResults {
		if strings.EqualFold(ev.SessionResults[i].SimsessionName, name) {
			return &ev.SessionResults[i], nil
		}
	}
	return nil, ErrSessionNotFound
}
