// Package placement implements the Placement Engine:
// given a space group, a lattice, and a system of orbit assignments
// from internal/solver, place one seed atom per assignment at a
// random point in its orbit, expand each into its full symmetry orbit,
// and retry at several nested levels whenever a minimum-interatomic-
// distance check fails.
//
// Grounded on
// original_source/external/randSpg/src/randSpg.cpp's
// addWyckoffAtomRandomly (per-seed retry: a unique orbit gets exactly
// one attempt since resampling a fixed point changes nothing; a
// non-unique orbit's free coordinate is resampled up to seedAttempts
// times) and randSpgCrystal's outer loop (draw a fresh
// lattice, assign atoms, place them all; on any placement failure,
// discard the whole attempt and start over, up to maxAttempts times).
package placement

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/spgxtal/internal/cellfill"
	"github.com/sarat-asymmetrica/spgxtal/internal/lattice"
	"github.com/sarat-asymmetrica/spgxtal/internal/solver"
	"github.com/sarat-asymmetrica/spgxtal/internal/xtal"
)

// ErrAttemptsExhausted is returned when every whole-crystal attempt
// failed to place every atom without violating a minimum interatomic
// distance.
var ErrAttemptsExhausted = errors.New("placement: exceeded maximum attempts to place all atoms")

// seedAttempts bounds how many times a single non-unique orbit's free
// coordinate is resampled before that seed is considered a failure
// (mirrors addWyckoffAtomRandomly's default maxAttempts).
const seedAttempts = 1000

// PlaceOne samples one free-parameter point within assignment's orbit
// template, adds it to the crystal, fills its full symmetry orbit, and
// verifies every new atom against minIAD — retrying the free-parameter
// sample up to seedAttempts times if the orbit is non-unique (a unique
// orbit has no free parameter, so exactly one attempt is made). It
// reports whether placement succeeded.
func PlaceOne(rng *rand.Rand, c *xtal.Crystal, spg int, assignment solver.Assignment, db cellfill.Database, minIAD xtal.MinIADFunc) bool {
	attempts := seedAttempts
	if assignment.Orbit.Unique {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		x, y, z := assignment.Orbit.Template.Eval(rng.Float64(), rng.Float64(), rng.Float64())
		seed := xtal.Atom{AtomicNumber: assignment.AtomicNumber, X: x, Y: y, Z: z}

		checkpoint := len(c.Atoms)
		if !c.AddIfEmpty(seed) {
			continue
		}
		seedIndex := len(c.Atoms) - 1

		if !c.IADsOkFor(seedIndex, minIAD) {
			c.Atoms = c.Atoms[:checkpoint]
			continue
		}

		ok, err := c.FillCellWithAtom(spg, seedIndex, db, minIAD)
		if err != nil {
			c.Atoms = c.Atoms[:checkpoint]
			return false
		}
		if ok {
			return true
		}
		c.Atoms = c.Atoms[:checkpoint]
	}
	return false
}

// Request bundles the inputs one whole-crystal placement attempt
// needs: the pruned System Possibility list and forced pairs random
// witness extraction draws from fresh on every attempt, plus the
// lattice and interatomic-distance parameters.
type Request struct {
	SpaceGroup   int
	LatticeMins  lattice.Params
	LatticeMaxes lattice.Params
	MinVolume    float64
	MaxVolume    float64
	MaxAttempts  int
	CellFillDB   cellfill.Database
	MinIAD       xtal.MinIADFunc

	Possibilities []solver.SystemPossibility
	ForcedPairs   []solver.ForcedPair
}

// Attempt performs one whole-crystal placement: draw a lattice, draw a
// fresh Assignment via random witness extraction over req.Possibilities,
// place every assignment, and verify the placed atom count matches the
// assignment's before declaring success — guarding against an exact
// seed-collision merge silently dropping an atom.
func Attempt(rng *rand.Rand, req Request) (*xtal.Crystal, bool, error) {
	l, err := lattice.Sample(rng, req.SpaceGroup, req.LatticeMins, req.LatticeMaxes, req.MinVolume, req.MaxVolume)
	if err != nil {
		return nil, false, err
	}
	c := xtal.New(l)

	assignments := solver.RandomAssignment(rng, req.Possibilities, req.ForcedPairs)
	if len(assignments) == 0 {
		return nil, false, nil
	}

	wantAtoms := 0
	for _, a := range assignments {
		wantAtoms += a.Orbit.Multiplicity
	}

	for _, a := range assignments {
		if !PlaceOne(rng, c, req.SpaceGroup, a, req.CellFillDB, req.MinIAD) {
			return nil, false, nil
		}
	}
	if len(c.Atoms) != wantAtoms {
		return nil, false, nil
	}
	return c, true, nil
}

// GenerateCrystal retries Attempt up to req.MaxAttempts times (mirrors
// randSpgCrystal's outer attempt loop), returning the first successful
// crystal.
func GenerateCrystal(rng *rand.Rand, req Request) (*xtal.Crystal, error) {
	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1000
	}
	for i := 0; i < maxAttempts; i++ {
		c, ok, err := Attempt(rng, req)
		if err != nil {
			return nil, err
		}
		if ok {
			return c, nil
		}
	}
	return nil, errors.Wrapf(ErrAttemptsExhausted, "spg %d after %d attempts", req.SpaceGroup, maxAttempts)
}
