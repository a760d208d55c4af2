// Package wyckoff provides the Wyckoff Database external collaborator:
// for each of the 230 three-dimensional space groups, the ordered list
// of Wyckoff orbits that group offers.
//
// This package owns no physics and no combinatorics — it is pure
// lookup data plus the compiled coordinate templates the rest of the
// system evaluates. Templates are parsed once here, so downstream
// packages only ever do arithmetic on an Orbit.Template, never string
// parsing.
package wyckoff

import (
	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/spgxtal/internal/template"
)

// ErrInvalidSpaceGroup is returned for g outside [1, 230].
var ErrInvalidSpaceGroup = errors.New("wyckoff: space group out of range [1,230]")

// ErrNotLoaded is returned by the default Database for a space group
// that is syntactically valid (1..230) but absent from this
// repository's pinned table — see DESIGN.md's Open Question #2. A
// production deployment supplies a complete table behind the same
// Database interface.
var ErrNotLoaded = errors.New("wyckoff: space group not present in the pinned table")

// Orbit is one Wyckoff position: a letter, a multiplicity, a compiled
// coordinate template for its first representative, and whether the
// orbit is site-symmetric (unique — the template has no free
// variable, so the orbit has a single representative point per cell).
type Orbit struct {
	Letter       byte
	Multiplicity int
	Template     template.Triple
	Unique       bool
}

// Database is the external collaborator the rest of the system
// consumes. Orbits are returned ordered by increasing multiplicity;
// the last element is always the general (largest, non-unique) orbit,
// here, by increasing multiplicity.
type Database interface {
	Positions(spg int) ([]Orbit, error)
}

// Validate returns ErrInvalidSpaceGroup if g is outside [1, 230].
func Validate(spg int) error {
	if spg < 1 || spg > 230 {
		return errors.Wrapf(ErrInvalidSpaceGroup, "got %d", spg)
	}
	return nil
}

// Default is the package-level Database backed by the pinned table in
// tables.go. It is safe for concurrent use: the table is built once at
// init and never mutated.
var Default Database = defaultDB

// defaultDatabase is the pinned-subset implementation of Database.
type defaultDatabase struct {
	byGroup map[int][]Orbit
}

func (d *defaultDatabase) Positions(spg int) ([]Orbit, error) {
	if err := Validate(spg); err != nil {
		return nil, err
	}
	orbits, ok := d.byGroup[spg]
	if !ok {
		return nil, errors.Wrapf(ErrNotLoaded, "spg %d", spg)
	}
	return orbits, nil
}

// orbit is a tiny constructor used by tables.go to keep the pinned
// data declarative: letter, multiplicity, raw template string. The
// unique flag is derived from the template rather than duplicated by
// hand: `unique` is derivable from the template but worth storing
// to avoid repeated parsing, so it is computed once here, at load
// time, and stored on the Orbit.
func orbit(letter byte, mult int, raw string) Orbit {
	t := template.MustParse(raw)
	return Orbit{
		Letter:       letter,
		Multiplicity: mult,
		Template:     t,
		Unique:       t.IsUnique(),
	}
}
