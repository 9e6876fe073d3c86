// Package lint implements the port validation engine: an ordered registry of
// rules run against one port's metadata, a per-port Context that carries
// values from earlier rules to later ones, and severity-masked aggregation of
// the resulting findings into a pass/fail Report.
package lint

import (
	"fmt"
	"strings"
)

// Severity of a finding. Values are distinct bits so they can be combined
// into a Mask; numeric order matches NOTE < WARN < FAIL.
type Severity uint8

const (
	SeverityNote Severity = 1 << iota
	SeverityWarn
	SeverityFail
)

// String returns the fixed display label.
func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "NOTE"
	case SeverityWarn:
		return "WARN"
	case SeverityFail:
		return "FAIL"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// MarshalText encodes the severity as its lower-case name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	m, err := ParseMask(string(b))
	if err != nil {
		return err
	}
	switch Severity(m) {
	case SeverityNote, SeverityWarn, SeverityFail:
		*s = Severity(m)
		return nil
	}
	return fmt.Errorf("%q is not a single severity", b)
}

// Mask is a set of severities.
type Mask uint8

const (
	MaskNone Mask = 0
	MaskAll  Mask = Mask(SeverityNote | SeverityWarn | SeverityFail)
)

// MaskOf builds a mask from individual severities.
func MaskOf(sevs ...Severity) Mask {
	var m Mask
	for _, s := range sevs {
		m |= Mask(s)
	}
	return m
}

// Has reports whether s is in the mask.
func (m Mask) Has(s Severity) bool {
	return m&Mask(s) != 0
}

func (m Mask) String() string {
	if m == MaskNone {
		return "none"
	}
	var parts []string
	for _, s := range []Severity{SeverityNote, SeverityWarn, SeverityFail} {
		if m.Has(s) {
			parts = append(parts, strings.ToLower(s.String()))
		}
	}
	return strings.Join(parts, ",")
}

// ParseMask parses a comma separated list of severities, e.g. "warn,fail".
// "all" and "none" are accepted as shorthands.
func ParseMask(s string) (Mask, error) {
	var m Mask
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "note", "notes":
			m |= Mask(SeverityNote)
		case "warn", "warning", "warnings":
			m |= Mask(SeverityWarn)
		case "fail", "error", "errors":
			m |= Mask(SeverityFail)
		case "all":
			m |= MaskAll
		case "none", "":
		default:
			return MaskNone, fmt.Errorf("unknown severity %q: expected note, warn, fail, all or none", part)
		}
	}
	return m, nil
}

// Set implements pflag.Value so a Mask can back a command-line flag.
func (m *Mask) Set(s string) error {
	v, err := ParseMask(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mask) Type() string { return "severities" }

// UnmarshalText lets masks be read from YAML and JSON configuration.
func (m *Mask) UnmarshalText(b []byte) error {
	return m.Set(string(b))
}
