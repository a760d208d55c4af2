// Package lattice implements the space-group-constrained lattice
// sampler: given a space group, a six-parameter lattice
// box (a, b, c, alpha, beta, gamma minimums and maximums), and an
// optional target volume range, draw a random lattice whose shape
// satisfies that group's crystal-family metric constraints.
//
// Grounded on
// original_source/external/randSpg/src/randSpg.cpp's
// generateLatticeForSpg (the per-family branch structure: triclinic
// imposes no equalities, monoclinic fixes alpha=gamma=90, orthorhombic
// fixes all three angles, tetragonal/trigonal/hexagonal additionally
// force a=b, cubic forces a=b=c and all angles to 90) and
// createValidCrystal (the rescale-then-re-validate-then-retry loop,
// bounded to 1000 attempts).
package lattice

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidBox is returned when the caller's lattice box cannot
// satisfy the requested space group's family constraints (e.g. a
// cubic group was requested but the box excludes 90-degree angles).
var ErrInvalidBox = errors.New("lattice: requested box cannot satisfy this space group's family constraints")

// ErrExhausted is returned when 1000 sample-and-rescale attempts all
// fail to land within the caller's box after volume rescaling.
var ErrExhausted = errors.New("lattice: exceeded maximum attempts to find a lattice within the requested box")

const maxAttempts = 1000

// Params is the six-parameter lattice box: lengths in angstrom,
// angles in degrees.
type Params struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// Lattice is one concrete drawn lattice.
type Lattice struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// Family classifies a space group into one of the six crystal
// families that constrain lattice shape. Trigonal
// groups are folded into Hexagonal here, matching
// generateLatticeForSpg's documented use of hexagonal axes for both
// (see DESIGN.md's Open Question #1 — rhombohedral axes are not
// supported).
type Family int

const (
	Triclinic Family = iota
	Monoclinic
	Orthorhombic
	Tetragonal
	Hexagonal // covers both trigonal (hexagonal axes) and hexagonal proper
	Cubic
)

// FamilyOf classifies spg (1..230) into its crystal family.
func FamilyOf(spg int) (Family, error) {
	switch {
	case spg < 1 || spg > 230:
		return 0, errors.Errorf("lattice: space group out of range [1,230]: got %d", spg)
	case spg <= 2:
		return Triclinic, nil
	case spg <= 15:
		return Monoclinic, nil
	case spg <= 74:
		return Orthorhombic, nil
	case spg <= 142:
		return Tetragonal, nil
	case spg <= 194:
		return Hexagonal, nil
	default:
		return Cubic, nil
	}
}

func randIn(rng *rand.Rand, lo, hi float64) float64 {
	if lo >= hi {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// Draw samples one lattice for spg's crystal family from within mins
// and maxes, without volume rescaling. It returns ErrInvalidBox if the
// family's metric equalities cannot be satisfied by the given box.
func Draw(rng *rand.Rand, spg int, mins, maxes Params) (Lattice, error) {
	fam, err := FamilyOf(spg)
	if err != nil {
		return Lattice{}, err
	}

	need90 := func(lo, hi float64) bool { return lo <= 90 && 90 <= hi }
	need120 := func(lo, hi float64) bool { return lo <= 120 && 120 <= hi }

	switch fam {
	case Triclinic:
		return Lattice{
			A: randIn(rng, mins.A, maxes.A), B: randIn(rng, mins.B, maxes.B), C: randIn(rng, mins.C, maxes.C),
			Alpha: randIn(rng, mins.Alpha, maxes.Alpha), Beta: randIn(rng, mins.Beta, maxes.Beta), Gamma: randIn(rng, mins.Gamma, maxes.Gamma),
		}, nil

	case Monoclinic:
		if !need90(mins.Alpha, maxes.Alpha) || !need90(mins.Gamma, maxes.Gamma) {
			return Lattice{}, errors.Wrap(ErrInvalidBox, "monoclinic requires alpha=gamma=90 to be in range")
		}
		return Lattice{
			A: randIn(rng, mins.A, maxes.A), B: randIn(rng, mins.B, maxes.B), C: randIn(rng, mins.C, maxes.C),
			Alpha: 90, Gamma: 90, Beta: randIn(rng, mins.Beta, maxes.Beta),
		}, nil

	case Orthorhombic:
		if !need90(mins.Alpha, maxes.Alpha) || !need90(mins.Beta, maxes.Beta) || !need90(mins.Gamma, maxes.Gamma) {
			return Lattice{}, errors.Wrap(ErrInvalidBox, "orthorhombic requires all angles=90 to be in range")
		}
		return Lattice{
			A: randIn(rng, mins.A, maxes.A), B: randIn(rng, mins.B, maxes.B), C: randIn(rng, mins.C, maxes.C),
			Alpha: 90, Beta: 90, Gamma: 90,
		}, nil

	case Tetragonal:
		if !need90(mins.Alpha, maxes.Alpha) || !need90(mins.Beta, maxes.Beta) || !need90(mins.Gamma, maxes.Gamma) {
			return Lattice{}, errors.Wrap(ErrInvalidBox, "tetragonal requires all angles=90 to be in range")
		}
		ab, err := equalWithinBoth(rng, mins.A, maxes.A, mins.B, maxes.B)
		if err != nil {
			return Lattice{}, errors.Wrap(err, "tetragonal requires a=b to be satisfiable")
		}
		return Lattice{
			A: ab, B: ab, C: randIn(rng, mins.C, maxes.C),
			Alpha: 90, Beta: 90, Gamma: 90,
		}, nil

	case Hexagonal:
		if !need90(mins.Alpha, maxes.Alpha) || !need90(mins.Beta, maxes.Beta) {
			return Lattice{}, errors.Wrap(ErrInvalidBox, "hexagonal/trigonal requires alpha=beta=90 to be in range")
		}
		if !need120(mins.Gamma, maxes.Gamma) {
			return Lattice{}, errors.Wrap(ErrInvalidBox, "hexagonal/trigonal requires gamma=120 to be in range")
		}
		ab, err := equalWithinBoth(rng, mins.A, maxes.A, mins.B, maxes.B)
		if err != nil {
			return Lattice{}, errors.Wrap(err, "hexagonal/trigonal requires a=b to be satisfiable")
		}
		return Lattice{
			A: ab, B: ab, C: randIn(rng, mins.C, maxes.C),
			Alpha: 90, Beta: 90, Gamma: 120,
		}, nil

	case Cubic:
		if !need90(mins.Alpha, maxes.Alpha) || !need90(mins.Beta, maxes.Beta) || !need90(mins.Gamma, maxes.Gamma) {
			return Lattice{}, errors.Wrap(ErrInvalidBox, "cubic requires all angles=90 to be in range")
		}
		lo, hi := mins.A, maxes.A
		if mins.B > lo {
			lo = mins.B
		}
		if mins.C > lo {
			lo = mins.C
		}
		if maxes.B < hi {
			hi = maxes.B
		}
		if maxes.C < hi {
			hi = maxes.C
		}
		if lo > hi {
			return Lattice{}, errors.Wrap(ErrInvalidBox, "cubic requires a=b=c to be satisfiable")
		}
		abc := randIn(rng, lo, hi)
		return Lattice{A: abc, B: abc, C: abc, Alpha: 90, Beta: 90, Gamma: 90}, nil

	default:
		return Lattice{}, errors.Errorf("lattice: unhandled family %v", fam)
	}
}

func equalWithinBoth(rng *rand.Rand, aLo, aHi, bLo, bHi float64) (float64, error) {
	lo := math.Max(aLo, bLo)
	hi := math.Min(aHi, bHi)
	if lo > hi {
		return 0, errors.New("lattice: no value satisfies both ranges")
	}
	return randIn(rng, lo, hi), nil
}

// Volume returns the unit cell volume implied by l's six parameters,
// via the metric tensor determinant (the same tensor the Cartesian
// conversion in internal/xtal uses).
func Volume(l Lattice) float64 {
	m := MetricTensor(l)
	return math.Sqrt(mat.Det(m))
}

// MetricTensor returns the 3x3 Gram matrix of the lattice vectors,
// built from the six cell parameters.
func MetricTensor(l Lattice) *mat.Dense {
	toRad := math.Pi / 180
	ca := math.Cos(l.Alpha * toRad)
	cb := math.Cos(l.Beta * toRad)
	cg := math.Cos(l.Gamma * toRad)
	a, b, c := l.A, l.B, l.C
	return mat.NewDense(3, 3, []float64{
		a * a, a * b * cg, a * c * cb,
		a * b * cg, b * b, b * c * ca,
		a * c * cb, b * c * ca, c * c,
	})
}

// Rescale returns l scaled uniformly so its volume becomes
// targetVolume, preserving angles and the a:b:c ratio (mirrors
// Crystal::rescaleVolume: scalingFactor = cbrt(target/current)).
func Rescale(l Lattice, targetVolume float64) Lattice {
	current := Volume(l)
	if current <= 0 {
		return l
	}
	factor := math.Cbrt(targetVolume / current)
	return Lattice{
		A: l.A * factor, B: l.B * factor, C: l.C * factor,
		Alpha: l.Alpha, Beta: l.Beta, Gamma: l.Gamma,
	}
}

// Sample draws a lattice for spg within [mins, maxes], optionally
// rescaling its volume into [minVolume, maxVolume] (either bound may
// be zero to mean "unconstrained"), retrying up to 1000 times if the
// rescaled lattice falls back outside the box (mirrors
// createValidCrystal's retry loop).
func Sample(rng *rand.Rand, spg int, mins, maxes Params, minVolume, maxVolume float64) (Lattice, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		l, err := Draw(rng, spg, mins, maxes)
		if err != nil {
			return Lattice{}, err
		}

		v := Volume(l)
		switch {
		case maxVolume > 0 && v > maxVolume:
			l = Rescale(l, randIn(rng, minVolume, maxVolume))
		case minVolume > 0 && v < minVolume:
			l = Rescale(l, randIn(rng, minVolume, maxVolume))
		}

		if mins.A <= l.A && l.A <= maxes.A &&
			mins.B <= l.B && l.B <= maxes.B &&
			mins.C <= l.C && l.C <= maxes.C {
			return l, nil
		}
	}
	return Lattice{}, errors.Wrapf(ErrExhausted, "spg %d after %d attempts", spg, maxAttempts)
}
