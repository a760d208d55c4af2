// Package spgxtal generates random atomic crystal structures
// belonging to a caller-chosen space group.
//
// Given a space group number, a multiset of species with per-species
// atom counts, a lattice-parameter box, and optional interatomic-
// distance and forcing constraints, RandomCrystal searches for
// combinatorially valid Wyckoff assignments (internal/solver), prunes
// them against any forced-letter or general-orbit requirement, draws a
// lattice consistent with the group's crystal family (internal/
// lattice), and places every atom's full symmetry orbit while
// enforcing minimum interatomic distances (internal/placement,
// internal/xtal) — retrying at each of those levels independently, the
// way original_source/external/randSpg/src/randSpg.cpp's
// randSpgCrystal does.
package spgxtal

import (
	stderrors "errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarat-asymmetrica/spgxtal/internal/cellfill"
	"github.com/sarat-asymmetrica/spgxtal/internal/lattice"
	"github.com/sarat-asymmetrica/spgxtal/internal/placement"
	"github.com/sarat-asymmetrica/spgxtal/internal/radii"
	"github.com/sarat-asymmetrica/spgxtal/internal/solver"
	"github.com/sarat-asymmetrica/spgxtal/internal/template"
	"github.com/sarat-asymmetrica/spgxtal/internal/wyckoff"
	"github.com/sarat-asymmetrica/spgxtal/internal/xtal"
)

// Verbosity controls how much a request logs: quiet, result-only, or
// verbose.
type Verbosity int

const (
	VerbosityQuiet Verbosity = iota
	VerbosityResult
	VerbosityVerbose
)

// Species is one input species: atomic number and how many atoms of
// it the generated cell must contain.
type Species struct {
	AtomicNumber int
	Count        int
}

// ForcedLetter pins one species to a specific Wyckoff letter,
// narrowing the solver's search instead of expanding it. A species may
// appear more than once in a Request's ForcedLetters (e.g. forced onto
// both 'a' and 'b'); each entry prunes the possibility list
// independently.
type ForcedLetter struct {
	AtomicNumber int
	Letter       byte
}

// Request is every caller-controlled input to RandomCrystal.
type Request struct {
	SpaceGroup int
	Species    []Species

	LatticeMins, LatticeMaxes lattice.Params
	MinVolume, MaxVolume      float64

	IADScaling  float64
	MinRadius   float64
	ManualRadii map[int]float64

	ForcedLetters []ForcedLetter

	// SkipGeneralOrbitRequirement opts out of the default requirement
	// that every generated crystal place at least one atom on the
	// space group's most general (non-unique) orbit. The zero value
	// (false) keeps the requirement on, matching the documented
	// default of requiring a general orbit; set this true to allow an
	// all-unique-orbit assignment.
	SkipGeneralOrbitRequirement bool

	MaxAttempts int
	Verbosity   Verbosity

	// Rand is the caller-supplied source of randomness. A nil Rand is
	// replaced by a source seeded with the constant 1, so every call
	// that leaves it nil draws the same random sequence (see
	// SPEC_FULL.md's DOMAIN STACK note on why this repository keeps
	// math/rand instead of adopting a third-party RNG).
	Rand *rand.Rand
}

// Crystal is the generated structure: a lattice plus every placed
// atom, in fractional coordinates.
type Crystal struct {
	Lattice lattice.Lattice
	Atoms   []xtal.Atom
}

// Kind classifies why RandomCrystal failed, for callers that want to
// branch on the failure mode instead of just logging the error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidSpaceGroup
	KindInvalidBox
	KindInfeasible
	KindAttemptsExhausted
	KindBadDatabase
	KindBadTemplate
)

// Error wraps an underlying error with a Kind, so callers can recover
// it with errors.As without string-matching messages.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func kindError(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// classifyPlacementError maps the concrete sentinel a placement/lattice
// failure wraps back to a Kind, so callers see KindInvalidBox for a box
// that excludes every angle the group's family requires and
// KindAttemptsExhausted only for a genuine exhausted-attempts failure.
func classifyPlacementError(err error) Kind {
	switch {
	case stderrors.Is(err, lattice.ErrInvalidBox):
		return KindInvalidBox
	case stderrors.Is(err, template.ErrBadTemplate):
		return KindBadTemplate
	default:
		return KindAttemptsExhausted
	}
}

var logger = mustLogger()

func mustLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func speciesCounts(species []Species) []solver.SpeciesCount {
	out := make([]solver.SpeciesCount, len(species))
	for i, s := range species {
		out[i] = solver.SpeciesCount{AtomicNumber: s.AtomicNumber, Count: s.Count}
	}
	return out
}

// IsSpgPossible reports whether spg can host the given species counts
// at all, without attempting to draw a lattice or place atoms. This is
// the fast, combinatorics-only feasibility check, without drawing a
// lattice or placing atoms.
func IsSpgPossible(spg int, species []Species) (bool, error) {
	return solver.Possible(spg, speciesCounts(species), wyckoff.Default)
}

// prunedPossibilities runs the combinatorial solver and applies every
// forced-letter and general-orbit requirement req carries, returning
// the surviving System Possibility list for random witness extraction.
func prunedPossibilities(req Request) ([]solver.SystemPossibility, error) {
	counts := speciesCounts(req.Species)
	possibilities, err := solver.FindSystemPossibilities(req.SpaceGroup, counts, wyckoff.Default)
	if err != nil {
		return nil, err
	}

	for _, f := range req.ForcedLetters {
		possibilities = solver.RemoveWithoutWyckPosForSpecies(possibilities, f.Letter, 1, f.AtomicNumber)
	}

	if !req.SkipGeneralOrbitRequirement {
		orbits, err := wyckoff.Default.Positions(req.SpaceGroup)
		if err != nil {
			return nil, err
		}
		possibilities = solver.RemoveWithoutGeneralWyckPos(possibilities, orbits, 1)
	}

	return possibilities, nil
}

// RandomCrystal generates one random crystal satisfying req.
func RandomCrystal(req Request) (*Crystal, error) {
	correlationID := uuid.New().String()
	log := logger.With(zap.String("request_id", correlationID), zap.Int("space_group", req.SpaceGroup))

	if err := wyckoff.Validate(req.SpaceGroup); err != nil {
		return nil, kindError(KindInvalidSpaceGroup, err)
	}

	rng := req.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	possibilities, err := prunedPossibilities(req)
	if err != nil {
		return nil, kindError(KindBadDatabase, err)
	}
	if len(possibilities) == 0 {
		return nil, kindError(KindInfeasible, errors.Errorf("spg %d has no Wyckoff assignment satisfying the requested composition and forcing constraints", req.SpaceGroup))
	}

	if req.Verbosity >= VerbosityVerbose {
		log.Info("system possibilities found", zap.Int("count", len(possibilities)))
	}

	oracle := radii.New(req.IADScaling, req.MinRadius, req.ManualRadii)

	forcedPairs := make([]solver.ForcedPair, len(req.ForcedLetters))
	for i, f := range req.ForcedLetters {
		forcedPairs[i] = solver.ForcedPair{AtomicNumber: f.AtomicNumber, Letter: f.Letter}
	}

	placeReq := placement.Request{
		SpaceGroup:    req.SpaceGroup,
		LatticeMins:   req.LatticeMins,
		LatticeMaxes:  req.LatticeMaxes,
		MinVolume:     req.MinVolume,
		MaxVolume:     req.MaxVolume,
		MaxAttempts:   req.MaxAttempts,
		CellFillDB:    cellfill.Default,
		MinIAD:        oracle.MinIAD,
		Possibilities: possibilities,
		ForcedPairs:   forcedPairs,
	}

	c, err := placement.GenerateCrystal(rng, placeReq)
	if err != nil {
		log.Warn("crystal generation failed", zap.Error(err))
		return nil, kindError(classifyPlacementError(err), err)
	}

	if req.Verbosity >= VerbosityResult {
		log.Info("crystal generated", zap.Int("atom_count", len(c.Atoms)))
	}

	return &Crystal{Lattice: c.Lattice, Atoms: c.Atoms}, nil
}
