// Package template parses and evaluates the coordinate-expression grammar
// used by Wyckoff position and cell-filling templates, e.g. "x,-x+0.5,0.25".
//
// The grammar is deliberately tiny — signed rational atoms, at most
// one free variable per term, '+'-concatenation of terms, no
// parentheses and no operator precedence to resolve. Every template in
// the static databases is trusted input, so a parse failure is a bug
// in the database, not a runtime condition to recover from
// gracefully.
package template

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrBadTemplate is returned when a template string does not match the
// grammar. Because templates come from a trusted static database, any
// occurrence of this error at runtime indicates a transcription bug in
// the database, not a caller mistake.
var ErrBadTemplate = errors.New("template: malformed coordinate expression")

// Variable identifies which free coordinate a term multiplies, if any.
type Variable byte

// The three free coordinates a template component may reference.
const (
	VarNone Variable = 0
	VarX    Variable = 'x'
	VarY    Variable = 'y'
	VarZ    Variable = 'z'
)

// Component is a parsed, compact representation of one coordinate
// expression: CoeffX*x + CoeffY*y + CoeffZ*z + Const. Parsing happens
// once, at database load; evaluating a Component is pure arithmetic.
type Component struct {
	CoeffX, CoeffY, CoeffZ float64
	Const                  float64
}

// Eval evaluates the component at a concrete (x, y, z).
func (c Component) Eval(x, y, z float64) float64 {
	return c.CoeffX*x + c.CoeffY*y + c.CoeffZ*z + c.Const
}

// HasFreeVariable reports whether the component references x, y, or z.
// A Wyckoff orbit whose three components all report false is "unique":
// its parameterization is fully numeric.
func (c Component) HasFreeVariable() bool {
	return c.CoeffX != 0 || c.CoeffY != 0 || c.CoeffZ != 0
}

// Triple is a parsed (x, y, z) coordinate template, e.g. the three
// components of "x,-x+0.5,0.25".
type Triple [3]Component

// Eval evaluates all three components at a concrete (x, y, z) and
// returns the resulting fractional coordinate triple.
func (t Triple) Eval(x, y, z float64) (float64, float64, float64) {
	return t[0].Eval(x, y, z), t[1].Eval(x, y, z), t[2].Eval(x, y, z)
}

// IsUnique reports whether every component of the triple is fully
// numeric — no free variable appears anywhere in the template.
func (t Triple) IsUnique() bool {
	return !t[0].HasFreeVariable() && !t[1].HasFreeVariable() && !t[2].HasFreeVariable()
}

// Parse compiles a full coordinate-expression triple such as
// "x,-x+0.5,0.25" into a Triple. It is the only entry point production
// code should use; ParseComponent is exposed mainly for testing the
// per-component grammar in isolation.
func Parse(raw string) (Triple, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return Triple{}, errors.Wrapf(ErrBadTemplate, "expected 3 comma-separated components, got %d in %q", len(parts), raw)
	}
	var t Triple
	for i, p := range parts {
		c, err := ParseComponent(p)
		if err != nil {
			return Triple{}, errors.Wrapf(err, "component %d of %q", i, raw)
		}
		t[i] = c
	}
	return t, nil
}

// ParseComponent parses a single component string such as "-x+0.5" or
// "0.333333" into a Component. The grammar: an optional leading sign,
// then one or more terms joined by '+'. A term is either a bare
// signed-rational constant, a bare variable (optionally signed), or a
// coefficient immediately followed by a variable with no operator
// between them ("2x", "-0.5y").
func ParseComponent(raw string) (Component, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Component{}, errors.Wrap(ErrBadTemplate, "empty component")
	}

	// Split on '+' while keeping a leading '-' attached to the term it
	// precedes: normalise by inserting an explicit '+' before interior
	// '-' signs, then split on '+'.
	normalized := normalizeSigns(s)
	termStrs := strings.Split(normalized, "+")

	var c Component
	for _, ts := range termStrs {
		if ts == "" {
			return Component{}, errors.Wrapf(ErrBadTemplate, "empty term in %q", raw)
		}
		coeff, v, err := parseTerm(ts)
		if err != nil {
			return Component{}, errors.Wrapf(err, "term %q in %q", ts, raw)
		}
		switch v {
		case VarX:
			c.CoeffX += coeff
		case VarY:
			c.CoeffY += coeff
		case VarZ:
			c.CoeffZ += coeff
		default:
			c.Const += coeff
		}
	}
	return c, nil
}

// normalizeSigns rewrites a component string so that every term after
// the first is preceded by a literal '+', turning e.g. "-x+0.5" into
// "-x+0.5" (already normalized) and "x-0.5" into "x+-0.5".
func normalizeSigns(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '-' && i > 0 && s[i-1] != '+' {
			b.WriteByte('+')
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// parseTerm parses a single signed term into its (coefficient, variable)
// pair. Accepted forms: "0.25", "-0.5", "x", "-x", "+x", "2x", "-2x",
// "0.5x".
func parseTerm(raw string) (float64, Variable, error) {
	s := raw
	sign := 1.0
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		sign = -1.0
		s = s[1:]
	}
	if s == "" {
		return 0, VarNone, errors.Wrap(ErrBadTemplate, "term has no content after sign")
	}

	last := s[len(s)-1]
	if v := Variable(last); v == VarX || v == VarY || v == VarZ {
		coeffStr := s[:len(s)-1]
		if coeffStr == "" {
			return sign, v, nil
		}
		coeff, err := strconv.ParseFloat(coeffStr, 64)
		if err != nil {
			return 0, VarNone, errors.Wrapf(ErrBadTemplate, "invalid coefficient %q", coeffStr)
		}
		return sign * coeff, v, nil
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, VarNone, errors.Wrapf(ErrBadTemplate, "invalid numeric term %q", s)
	}
	return sign * val, VarNone, nil
}

// MustParse is a convenience wrapper for database-loading code that
// already trusts its input: a parse failure here is a fatal, bad-
// database program error, so it panics rather than forcing every
// table entry to thread an error value through init().
func MustParse(raw string) Triple {
	t, err := Parse(raw)
	if err != nil {
		panic(errors.Wrapf(err, "template.MustParse(%q)", raw))
	}
	return t
}
