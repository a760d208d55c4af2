// Package xtal implements Crystal State: a lattice plus
// an atom list in fractional coordinates, with the small set of
// geometric operations the placement engine needs — wrapping into the
// unit cell, same-position testing, centering a copy of the cell
// around one atom to measure periodic distances without enumerating
// 27 neighbor images, and filling a cell with every symmetry copy of a
// seed atom.
//
// Grounded on
// original_source/src/randSpg/src/crystal.cpp: wrapAtomsToCell's
// fractional-coordinate wrap-and-snap (tolerance 1e-5),
// centerCellAroundAtom's shift-then-rewrap trick for periodic distance
// checks, and fillCellWithAtom's centering-times-coset evaluation
// loop, now driven by internal/cellfill and internal/template instead
// of runtime string parsing.
package xtal

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sarat-asymmetrica/spgxtal/internal/cellfill"
	"github.com/sarat-asymmetrica/spgxtal/internal/lattice"
)

const wrapTolerance = 1e-5

// Vector3 is a plain Cartesian 3-vector, modeled as a value type with
// no behavior beyond arithmetic.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Atom is one occupant of the cell, in fractional coordinates.
type Atom struct {
	AtomicNumber int
	X, Y, Z      float64
}

// wrapUnit folds a fractional coordinate into [0, 1), snapping values
// within wrapTolerance of 1.0 down to 0.0 so that equivalent points
// don't straddle the cell boundary under floating point noise.
func wrapUnit(u float64) float64 {
	for u < 0.0 {
		u += 1.0
	}
	for u >= 1.0 {
		u -= 1.0
	}
	if math.Abs(u-1.0) < wrapTolerance {
		u = 0.0
	}
	return u
}

func wrapAtom(a Atom) Atom {
	a.X = wrapUnit(a.X)
	a.Y = wrapUnit(a.Y)
	a.Z = wrapUnit(a.Z)
	return a
}

// SamePosition reports whether a and b occupy the same fractional
// point within wrapTolerance on every axis.
func SamePosition(a, b Atom) bool {
	return math.Abs(a.X-b.X) < wrapTolerance &&
		math.Abs(a.Y-b.Y) < wrapTolerance &&
		math.Abs(a.Z-b.Z) < wrapTolerance
}

// Crystal is Lattice + Atom list, with a lazily computed, mutation-
// invalidated fractional-to-Cartesian conversion matrix, replacing the
// source's recomputation on every call.
type Crystal struct {
	Lattice lattice.Lattice
	Atoms   []Atom

	cartMatrix *mat.Dense // nil means "needs recomputing"
}

// New builds a Crystal with no atoms.
func New(l lattice.Lattice) *Crystal {
	return &Crystal{Lattice: l}
}

// SetLattice replaces the lattice and invalidates the cached
// conversion matrix.
func (c *Crystal) SetLattice(l lattice.Lattice) {
	c.Lattice = l
	c.cartMatrix = nil
}

// cartesianMatrix returns the 3x3 matrix whose columns are the
// lattice vectors in an orthonormal frame (a along x, b in the xy
// plane), computing and caching it on first use after construction or
// the last SetLattice call.
func (c *Crystal) cartesianMatrix() *mat.Dense {
	if c.cartMatrix != nil {
		return c.cartMatrix
	}
	toRad := math.Pi / 180
	l := c.Lattice
	ca := math.Cos(l.Alpha * toRad)
	cb := math.Cos(l.Beta * toRad)
	cg := math.Cos(l.Gamma * toRad)
	sg := math.Sin(l.Gamma * toRad)

	ax, ay, az := l.A, 0.0, 0.0
	bx, by, bz := l.B*cg, l.B*sg, 0.0
	cx := l.C * cb
	cy := l.C * (ca - cb*cg) / sg
	czSq := l.C*l.C - cx*cx - cy*cy
	cz := 0.0
	if czSq > 0 {
		cz = math.Sqrt(czSq)
	}

	c.cartMatrix = mat.NewDense(3, 3, []float64{
		ax, bx, cx,
		ay, by, cy,
		az, bz, cz,
	})
	return c.cartMatrix
}

// ToCartesian converts a fractional point to Cartesian coordinates.
func (c *Crystal) ToCartesian(x, y, z float64) Vector3 {
	m := c.cartesianMatrix()
	frac := mat.NewVecDense(3, []float64{x, y, z})
	var cart mat.VecDense
	cart.MulVec(m, frac)
	return Vector3{X: cart.AtVec(0), Y: cart.AtVec(1), Z: cart.AtVec(2)}
}

// Volume returns the cell volume.
func (c *Crystal) Volume() float64 {
	return lattice.Volume(c.Lattice)
}

// RescaleVolume rescales the lattice (and therefore every Cartesian
// distance, but not any atom's fractional coordinates) to newVolume.
func (c *Crystal) RescaleVolume(newVolume float64) {
	c.SetLattice(lattice.Rescale(c.Lattice, newVolume))
}

// WrapToCell wraps every atom's fractional coordinates into [0, 1).
func (c *Crystal) WrapToCell() {
	for i := range c.Atoms {
		c.Atoms[i] = wrapAtom(c.Atoms[i])
	}
}

// AddIfEmpty wraps a, then appends it only if no existing atom already
// occupies that position; it reports whether the atom was added.
func (c *Crystal) AddIfEmpty(a Atom) bool {
	a = wrapAtom(a)
	for _, existing := range c.Atoms {
		if SamePosition(existing, a) {
			return false
		}
	}
	c.Atoms = append(c.Atoms, a)
	return true
}

// Distance returns the Cartesian distance between two atoms given in
// fractional coordinates, local to this cell's metric.
func (c *Crystal) Distance(a, b Atom) float64 {
	ca := c.ToCartesian(a.X, a.Y, a.Z)
	cb := c.ToCartesian(b.X, b.Y, b.Z)
	return ca.Sub(cb).Length()
}

// CenteredOn returns a copy of the crystal with every atom's
// coordinates shifted so that atoms[index] sits at (0.5, 0.5, 0.5),
// then rewrapped into the cell. This lets periodic nearest-neighbor
// distances be measured by ordinary Euclidean distance within the
// single centered copy, instead of enumerating 27 neighboring cell
// images.
func (c *Crystal) CenteredOn(index int) *Crystal {
	pivot := c.Atoms[index]
	dx := 0.5 - pivot.X
	dy := 0.5 - pivot.Y
	dz := 0.5 - pivot.Z

	cp := &Crystal{Lattice: c.Lattice, Atoms: make([]Atom, len(c.Atoms))}
	for i, a := range c.Atoms {
		a.X += dx
		a.Y += dy
		a.Z += dz
		cp.Atoms[i] = wrapAtom(a)
	}
	return cp
}

// MinIADFunc returns the minimum allowed interatomic distance between
// two atomic numbers; internal/radii.Oracle.MinIAD satisfies this.
type MinIADFunc func(a, b int) float64

// IADsOkFor reports whether the atom at index satisfies minIAD against
// every other atom in the cell, measured via a centered copy so
// periodic images are accounted for without enumerating them
// explicitly (mirrors areIADsOkay).
func (c *Crystal) IADsOkFor(index int, minIAD MinIADFunc) bool {
	centered := c.CenteredOn(index)
	pivot := centered.Atoms[index]
	for i, other := range centered.Atoms {
		if i == index {
			continue
		}
		if centered.Distance(pivot, other) < minIAD(pivot.AtomicNumber, other.AtomicNumber) {
			return false
		}
	}
	return true
}

// IADsOk reports whether every atom in the cell satisfies minIAD
// against every other atom (mirrors the no-argument areIADsOkay
// overload).
func (c *Crystal) IADsOk(minIAD MinIADFunc) bool {
	for i := range c.Atoms {
		if !c.IADsOkFor(i, minIAD) {
			return false
		}
	}
	return true
}

// FillCellWithAtom expands the atom at seedIndex into every symmetry
// copy implied by spg's centering and coset operations, adding each
// new copy only if its position is unoccupied and, once added, passing
// minIAD. If any new copy fails the IAD check, every copy added by
// this call is rolled back and FillCellWithAtom reports false (mirrors
// fillCellWithAtom's all-or-nothing behavior via
// removeAllNewAtomsSince).
func (c *Crystal) FillCellWithAtom(spg int, seedIndex int, db cellfill.Database, minIAD MinIADFunc) (bool, error) {
	info, err := db.Info(spg)
	if err != nil {
		return false, err
	}
	seed := c.Atoms[seedIndex]
	checkpoint := len(c.Atoms)

	for j, centering := range info.Centering {
		// Centering templates are pure constants (no free variables),
		// so the arguments passed to Eval are immaterial.
		dupX, dupY, dupZ := centering.Eval(0, 0, 0)
		for k, coset := range info.Coset {
			if j == 0 && k == 0 {
				continue // identity duplication, identity coset: the seed itself
			}
			x, y, z := coset.Eval(seed.X, seed.Y, seed.Z)
			newAtom := Atom{AtomicNumber: seed.AtomicNumber, X: x + dupX, Y: y + dupY, Z: z + dupZ}

			if !c.AddIfEmpty(newAtom) {
				continue
			}
			newIndex := len(c.Atoms) - 1
			if !c.IADsOkFor(newIndex, minIAD) {
				c.Atoms = c.Atoms[:checkpoint]
				return false, nil
			}
		}
	}
	return true, nil
}

// FillUnitCell calls FillCellWithAtom for every atom present at the
// time of the call (a snapshot length, so atoms added by earlier
// iterations are not themselves re-expanded), stopping at the first
// failure (mirrors fillUnitCell).
func (c *Crystal) FillUnitCell(spg int, db cellfill.Database, minIAD MinIADFunc) (bool, error) {
	c.WrapToCell()
	n := len(c.Atoms)
	for i := 0; i < n; i++ {
		ok, err := c.FillCellWithAtom(spg, i, db, minIAD)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
