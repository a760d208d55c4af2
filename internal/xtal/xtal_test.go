package xtal

import (
	"math"
	"testing"

	"github.com/sarat-asymmetrica/spgxtal/internal/cellfill"
	"github.com/sarat-asymmetrica/spgxtal/internal/lattice"
)

func cubicLattice(side float64) lattice.Lattice {
	return lattice.Lattice{A: side, B: side, C: side, Alpha: 90, Beta: 90, Gamma: 90}
}

func TestWrapUnitInRangeAwayFromBoundary(t *testing.T) {
	// Values not within wrapTolerance of an integer land cleanly in
	// [0,1). Values extremely close to 1.0 are snapped to 0 and are
	// covered separately by the idempotence test below.
	cases := []float64{-0.3, 0, 0.5, 1.5, 2.2}
	for _, u := range cases {
		w := wrapUnit(u)
		if w < 0 || w >= 1.0-1e-9 {
			t.Errorf("wrapUnit(%v) = %v, want in [0,1)", u, w)
		}
	}
}

func TestWrapUnitIsIdempotent(t *testing.T) {
	cases := []float64{-0.3, 0, 0.5, 0.999999, 1.0, 1.5, 2.2}
	for _, u := range cases {
		w := wrapUnit(u)
		if math.Abs(wrapUnit(w)-w) > 1e-9 {
			t.Errorf("wrapUnit not idempotent at %v: wrapUnit(%v)=%v, wrapUnit(%v)=%v", u, u, w, w, wrapUnit(w))
		}
	}
}

func TestSamePositionWithinTolerance(t *testing.T) {
	a := Atom{X: 0.1, Y: 0.2, Z: 0.3}
	b := Atom{X: 0.1 + 1e-7, Y: 0.2, Z: 0.3}
	if !SamePosition(a, b) {
		t.Error("atoms within tolerance should be the same position")
	}
	c := Atom{X: 0.1 + 1e-3, Y: 0.2, Z: 0.3}
	if SamePosition(a, c) {
		t.Error("atoms outside tolerance should not be the same position")
	}
}

func TestAddIfEmptyRejectsDuplicate(t *testing.T) {
	c := New(cubicLattice(5))
	if !c.AddIfEmpty(Atom{AtomicNumber: 1, X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Fatal("first add should succeed")
	}
	if c.AddIfEmpty(Atom{AtomicNumber: 1, X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Fatal("duplicate add should be rejected")
	}
	if len(c.Atoms) != 1 {
		t.Errorf("len(Atoms) = %d, want 1", len(c.Atoms))
	}
}

func TestCubicVolumeMatchesSideCubed(t *testing.T) {
	c := New(cubicLattice(3))
	if math.Abs(c.Volume()-27) > 1e-9 {
		t.Errorf("Volume() = %v, want 27", c.Volume())
	}
}

func TestCartesianConversionCachedAndInvalidatedOnMutation(t *testing.T) {
	c := New(cubicLattice(2))
	v1 := c.ToCartesian(1, 0, 0)
	if math.Abs(v1.X-2) > 1e-9 {
		t.Errorf("ToCartesian(1,0,0) on side-2 cube = %v, want X=2", v1)
	}
	c.SetLattice(cubicLattice(4))
	v2 := c.ToCartesian(1, 0, 0)
	if math.Abs(v2.X-4) > 1e-9 {
		t.Errorf("after SetLattice, ToCartesian(1,0,0) = %v, want X=4", v2)
	}
}

func TestCenteredOnPlacesPivotAtHalf(t *testing.T) {
	c := New(cubicLattice(5))
	c.Atoms = []Atom{
		{AtomicNumber: 1, X: 0.1, Y: 0.1, Z: 0.1},
		{AtomicNumber: 2, X: 0.9, Y: 0.9, Z: 0.9},
	}
	centered := c.CenteredOn(0)
	p := centered.Atoms[0]
	if math.Abs(p.X-0.5) > 1e-9 || math.Abs(p.Y-0.5) > 1e-9 || math.Abs(p.Z-0.5) > 1e-9 {
		t.Errorf("pivot should be at (0.5,0.5,0.5), got %+v", p)
	}
}

func TestCenteredOnRevealsPeriodicProximity(t *testing.T) {
	// Two atoms near opposite faces of the cell are actually close
	// together through the periodic boundary; centering on one should
	// reveal that proximity instead of the naive (large) raw distance.
	c := New(cubicLattice(10))
	c.Atoms = []Atom{
		{AtomicNumber: 1, X: 0.02, Y: 0.5, Z: 0.5},
		{AtomicNumber: 2, X: 0.98, Y: 0.5, Z: 0.5},
	}
	rawDist := c.Distance(c.Atoms[0], c.Atoms[1])
	if rawDist < 9 {
		t.Fatalf("sanity check failed: raw distance should be large, got %v", rawDist)
	}

	centered := c.CenteredOn(0)
	periodicDist := centered.Distance(centered.Atoms[0], centered.Atoms[1])
	if periodicDist > 1.0 {
		t.Errorf("periodic distance after centering = %v, want close to 0.4 (0.04 frac * 10)", periodicDist)
	}
}

func fixedMinIAD(d float64) MinIADFunc {
	return func(a, b int) float64 { return d }
}

func TestIADsOkForDetectsViolation(t *testing.T) {
	c := New(cubicLattice(10))
	c.Atoms = []Atom{
		{AtomicNumber: 1, X: 0.5, Y: 0.5, Z: 0.5},
		{AtomicNumber: 2, X: 0.51, Y: 0.5, Z: 0.5},
	}
	if c.IADsOkFor(0, fixedMinIAD(5)) {
		t.Error("atoms 0.1 angstrom apart should violate a 5-angstrom minimum")
	}
	if !c.IADsOkFor(0, fixedMinIAD(0.05)) {
		t.Error("atoms 0.1 angstrom apart should satisfy a 0.05-angstrom minimum")
	}
}

func TestFillCellWithAtomProducesFullOrbitAsMultiset(t *testing.T) {
	// Fm-3m (225), general position 192l seeded at a generic point:
	// filling must produce exactly 192 points (48 coset ops * 4
	// centering translations), none overlapping the seed or each other
	// a full symmetry orbit is a multiset of distinct points.
	c := New(cubicLattice(10))
	c.Atoms = []Atom{{AtomicNumber: 6, X: 0.12, Y: 0.27, Z: 0.41}}

	ok, err := c.FillCellWithAtom(225, 0, cellfill.Default, fixedMinIAD(1e-6))
	if err != nil {
		t.Fatalf("FillCellWithAtom error: %v", err)
	}
	if !ok {
		t.Fatal("FillCellWithAtom should succeed with a near-zero IAD floor")
	}
	if len(c.Atoms) != 192 {
		t.Errorf("len(Atoms) after filling general position = %d, want 192", len(c.Atoms))
	}
	for i := 0; i < len(c.Atoms); i++ {
		for j := i + 1; j < len(c.Atoms); j++ {
			if SamePosition(c.Atoms[i], c.Atoms[j]) {
				t.Errorf("atoms %d and %d occupy the same position: %+v", i, j, c.Atoms[i])
			}
		}
	}
}

func TestFillCellWithAtomRollsBackOnIADViolation(t *testing.T) {
	c := New(cubicLattice(2)) // tiny cell forces symmetry copies close together
	c.Atoms = []Atom{{AtomicNumber: 6, X: 0.12, Y: 0.27, Z: 0.41}}

	ok, err := c.FillCellWithAtom(225, 0, cellfill.Default, fixedMinIAD(100))
	if err != nil {
		t.Fatalf("FillCellWithAtom error: %v", err)
	}
	if ok {
		t.Fatal("FillCellWithAtom should fail with an unreasonably large IAD floor")
	}
	if len(c.Atoms) != 1 {
		t.Errorf("len(Atoms) after rollback = %d, want 1 (only the seed)", len(c.Atoms))
	}
}

func TestFillUnitCellUnknownGroupPropagatesError(t *testing.T) {
	c := New(cubicLattice(5))
	c.Atoms = []Atom{{AtomicNumber: 1, X: 0.1, Y: 0.1, Z: 0.1}}
	_, err := c.FillUnitCell(3, cellfill.Default, fixedMinIAD(0.1))
	if err == nil {
		t.Error("FillUnitCell should propagate the database error for an unpinned group")
	}
}
