// Package cellfill provides the Cell-Filling Database external
// collaborator: for each pinned space group, the set of centering
// offsets and coset-representative coordinate templates that turn a
// single Wyckoff orbit representative into the full list of symmetry
// copies occupying the unit cell.
//
// A space group's general position is the Cartesian product of its
// lattice centering translations (identity for primitive groups; two
// or four cosets for I/F-centered groups) and its point-group coset
// representatives (rotations/reflections/inversions expressed as
// coordinate templates, the same grammar internal/template compiles).
// Applying centering ⊕ coset ⊕ the orbit's own template reproduces
// every representative of an orbit from a single seed point, which is
// exactly what Crystal.FillCellWithAtom needs.
package cellfill

import (
	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/spgxtal/internal/template"
)

// ErrNotLoaded is returned for a syntactically valid space group absent
// from the pinned table, mirroring internal/wyckoff's ErrNotLoaded.
var ErrNotLoaded = errors.New("cellfill: space group not present in the pinned table")

// Info is one space group's cell-filling recipe.
type Info struct {
	// Centering holds the lattice-centering translations, always
	// including "0,0,0". Length 1 for primitive groups, 2 for
	// body-centered, 3 for rhombohedral (hexagonal axes), 4 for
	// face-centered.
	Centering []template.Triple
	// Coset holds the point-group coset representatives, expressed as
	// coordinate templates in x, y, z relative to an orbit's own
	// template-evaluated representative.
	Coset []template.Triple
}

// Database is the external collaborator consumed by internal/xtal.
type Database interface {
	Info(spg int) (Info, error)
}

// Default is the package-level Database backed by the pinned table in
// tables.go.
var Default Database = defaultDB

type defaultDatabase struct {
	byGroup map[int]Info
}

func (d *defaultDatabase) Info(spg int) (Info, error) {
	if spg < 1 || spg > 230 {
		return Info{}, errors.Errorf("cellfill: space group out of range [1,230]: got %d", spg)
	}
	info, ok := d.byGroup[spg]
	if !ok {
		return Info{}, errors.Wrapf(ErrNotLoaded, "spg %d", spg)
	}
	return info, nil
}

// mustTriples parses a list of raw "x,y,z"-grammar templates, panicking
// on malformed input. Used only by tables.go at init time against
// trusted, hand-transcribed data.
func mustTriples(raws ...string) []template.Triple {
	out := make([]template.Triple, len(raws))
	for i, raw := range raws {
		out[i] = template.MustParse(raw)
	}
	return out
}
