// Package snapshot encodes session state as the JSON blob shared through the
// "state" URL parameter and the session store.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// Param is the query parameter carrying an exported state
const Param = "state"

// envelope keeps the layout used by existing share links so they still
// import.
type envelope struct {
	Builder *builderState `json:"builder"`
}

type builderState struct {
	HighlightedItems  []string `json:"highlightedItems"`
	SkullCount        int      `json:"skullCount"`
	SelectedTab       *string  `json:"selectedTab"`
	SelectedItem      *string  `json:"selectedItem"`
	PurchasedItems    []string `json:"purchasedItems"`
	PurchasedUpgrades []string `json:"purchasedUpgrades"`
	SearchTerm        string   `json:"searchTerm"`
}

// Encode serializes state into the blob format
func Encode(s domain.SessionState) ([]byte, error) {
	b := builderState{
		HighlightedItems:  nonNil(s.HighlightedItems),
		SkullCount:        s.SkullBudget,
		SelectedTab:       optional(s.SelectedTab),
		SelectedItem:      optional(s.SelectedItem),
		PurchasedItems:    nonNil(s.PurchasedItems),
		PurchasedUpgrades: nonNil(s.PurchasedUpgrades),
		SearchTerm:        s.SearchTerm,
	}
	data, err := json.Marshal(envelope{Builder: &b})
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// Decode parses a blob. Missing lists decode as empty lists; unknown keys
// are ignored.
func Decode(data []byte) (domain.SessionState, error) {
	var env envelope
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&env); err != nil {
		return domain.SessionState{}, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if dec.More() {
		return domain.SessionState{}, fmt.Errorf("%w: trailing data", domain.ErrInvalidSnapshot)
	}
	if env.Builder == nil {
		return domain.SessionState{}, fmt.Errorf("%w: missing builder state", domain.ErrInvalidSnapshot)
	}

	b := env.Builder
	return domain.SessionState{
		SkullBudget:       b.SkullCount,
		PurchasedItems:    nonNil(b.PurchasedItems),
		PurchasedUpgrades: nonNil(b.PurchasedUpgrades),
		HighlightedItems:  nonNil(b.HighlightedItems),
		SelectedTab:       deref(b.SelectedTab),
		SelectedItem:      deref(b.SelectedItem),
		SearchTerm:        b.SearchTerm,
	}, nil
}

// EncodeParam returns the percent-encoded blob for the state parameter
func EncodeParam(s domain.SessionState) (string, error) {
	data, err := Encode(s)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(data)), nil
}

// DecodeParam parses a percent-encoded blob
func DecodeParam(param string) (domain.SessionState, error) {
	raw, err := url.QueryUnescape(param)
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	return Decode([]byte(raw))
}

// FromQuery extracts an embedded snapshot. The bool is false when the query
// has no state parameter. Values from url.Values are already unescaped.
func FromQuery(q url.Values) (domain.SessionState, bool, error) {
	if !q.Has(Param) {
		return domain.SessionState{}, false, nil
	}
	s, err := Decode([]byte(q.Get(Param)))
	return s, true, err
}

// ExportURL sets the state parameter on base, replacing any previous one
func ExportURL(base string, s domain.SessionState) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: bad base url: %v", domain.ErrInvalidInput, err)
	}
	data, err := Encode(s)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(Param, string(data))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// StripURL removes the state parameter from raw
func StripURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: bad url: %v", domain.ErrInvalidInput, err)
	}
	q := u.Query()
	q.Del(Param)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
