// Package well contains the pure domain rules for well metadata records.
// Everything here is side-effect free; persistence lives behind the
// secondary ports.
package well

import (
	"fmt"
	"strings"
)

// IdentifierPair is the natural key of a well record: the gas record id and
// the pressure record id. Either half may be blank, but not both.
type IdentifierPair struct {
	GasID      string
	PressureID string
}

// Normalize returns the pair with both halves trimmed.
func (p IdentifierPair) Normalize() IdentifierPair {
	return IdentifierPair{
		GasID:      strings.TrimSpace(p.GasID),
		PressureID: strings.TrimSpace(p.PressureID),
	}
}

// IsZero reports whether both halves are blank after trimming.
func (p IdentifierPair) IsZero() bool {
	n := p.Normalize()
	return n.GasID == "" && n.PressureID == ""
}

// Partial reports whether exactly one half of the pair is present.
func (p IdentifierPair) Partial() bool {
	n := p.Normalize()
	return (n.GasID == "") != (n.PressureID == "")
}

// String renders the pair for display and error messages.
func (p IdentifierPair) String() string {
	n := p.Normalize()
	return fmt.Sprintf("(%s, %s)", n.GasID, n.PressureID)
}

// Fields holds the editable attributes of a well record. The surrogate id
// and the identifier pair are deliberately not part of this type: edits can
// never touch them.
type Fields struct {
	WellName       string
	Formation      string
	Layer          string
	FaultBlock     string
	PadName        string
	CompletionTech string
	LateralLength  string
	UWI            string
}

// Trimmed returns a copy with every field trimmed.
func (f Fields) Trimmed() Fields {
	return Fields{
		WellName:       strings.TrimSpace(f.WellName),
		Formation:      strings.TrimSpace(f.Formation),
		Layer:          strings.TrimSpace(f.Layer),
		FaultBlock:     strings.TrimSpace(f.FaultBlock),
		PadName:        strings.TrimSpace(f.PadName),
		CompletionTech: strings.TrimSpace(f.CompletionTech),
		LateralLength:  strings.TrimSpace(f.LateralLength),
		UWI:            strings.TrimSpace(f.UWI),
	}
}

// ComposeName derives the composite display name. It returns the composite
// and true only when well name, layer, and completion technology are all
// non-empty after trimming; otherwise it returns "" and false, and the
// stored field must be NULL rather than an empty string.
func ComposeName(wellName, layer, tech string) (string, bool) {
	w := strings.TrimSpace(wellName)
	l := strings.TrimSpace(layer)
	t := strings.TrimSpace(tech)
	if w == "" || l == "" || t == "" {
		return "", false
	}
	return w + " - " + l + " - " + t, true
}

// IsPending reports whether a persisted row still lacks a well name.
// Pending rows are the ones eligible for staging.
func IsPending(wellName string) bool {
	return strings.TrimSpace(wellName) == ""
}
