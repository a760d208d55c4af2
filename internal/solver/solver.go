// Package solver implements the combinatorial Wyckoff-assignment
// solver: given a space group and a multiset of
// species, find every way to partition each species' atom count across
// the group's Wyckoff orbits such that no site-symmetric ("unique")
// orbit is claimed by more atoms, across every species combined, than
// it physically offers.
//
// Source pattern replaced: the upstream solver
// escapes its recursion early via a C++ exception once a single
// satisfying assignment is found ("find only one" mode). Go has no
// equivalent control-flow shortcut that composes with deferred
// cleanup, so this package threads a "stop, we already have enough"
// signal through an explicit (results, stop bool) return instead —
// every recursive call either keeps exploring or unwinds cleanly,
// never a panic.
package solver

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/spgxtal/internal/wyckoff"
)

// ErrInfeasible names the condition of a request with no Wyckoff
// assignment. No function in this package returns it:
// FindSystemPossibilities reports infeasibility (including a failed
// fast parity pre-check) as a nil, nil result and Possible as false.
var ErrInfeasible = errors.New("solver: no Wyckoff assignment satisfies the requested atom counts")

// OrbitGroup bundles every orbit of a space group sharing a
// (multiplicity, unique) pair. Orbits in the same group are
// interchangeable for counting purposes but remain individually
// trackable, since each is a distinct physical position in the cell.
type OrbitGroup struct {
	Multiplicity int
	Unique       bool
	Orbits       []wyckoff.Orbit
}

// GroupOrbits partitions a space group's orbit list into OrbitGroups,
// preserving increasing-multiplicity order (mirrors
// groupSimilarWyckPositions in the upstream combinatorics source).
func GroupOrbits(orbits []wyckoff.Orbit) []OrbitGroup {
	var groups []OrbitGroup
	for _, o := range orbits {
		idx := -1
		for i, g := range groups {
			if g.Multiplicity == o.Multiplicity && g.Unique == o.Unique {
				idx = i
				break
			}
		}
		if idx == -1 {
			groups = append(groups, OrbitGroup{Multiplicity: o.Multiplicity, Unique: o.Unique})
			idx = len(groups) - 1
		}
		groups[idx].Orbits = append(groups[idx].Orbits, o)
	}
	return groups
}

// Assignment is one concrete orbit claimed for one species, as
// returned by RandomAssignment. Every atom sharing this orbit is
// placed from the same unevaluated template; the placement engine
// samples the free parameters itself, once per physical point.
type Assignment struct {
	AtomicNumber int
	Orbit        wyckoff.Orbit
}

// ChosenSubset is how many atoms of one species draw from one orbit
// group within a SingleSpeciesPossibility, and which orbits of that
// group remain available to draw from. Orbits shrinks during random
// witness extraction as unique orbits are claimed; it never shrinks
// during enumeration.
type ChosenSubset struct {
	Multiplicity int
	Unique       bool
	Orbits       []wyckoff.Orbit
	NumToChoose  int
}

// SingleSpeciesPossibility is one way to cover a species' atom count
// using a specific combination of orbit groups (multiplicities sum to
// the requested count).
type SingleSpeciesPossibility struct {
	AtomicNumber int
	Subsets      []ChosenSubset
}

// usedMultiplicity returns the total atom count this possibility
// covers.
func (p SingleSpeciesPossibility) usedMultiplicity() int {
	total := 0
	for _, s := range p.Subsets {
		total += s.Multiplicity * s.NumToChoose
	}
	return total
}

// SystemPossibility is a full, cross-species-consistent assignment:
// one SingleSpeciesPossibility per requested species, with no unique
// orbit group claimed by more atoms, summed across every species, than
// it has orbits to offer.
type SystemPossibility struct {
	PerSpecies []SingleSpeciesPossibility
}

// FastParityCheck implements a quick infeasibility
// pre-check: if every orbit of the space group has even multiplicity,
// no odd atom count can ever be covered, regardless of combinatorics.
// It never reports a feasible request as infeasible, only the reverse
// shortcut — a full search is still required to confirm feasibility.
func FastParityCheck(orbits []wyckoff.Orbit, atomCounts []int) bool {
	allEven := true
	for _, o := range orbits {
		if o.Multiplicity%2 != 0 {
			allEven = false
			break
		}
	}
	if !allEven {
		return true
	}
	for _, n := range atomCounts {
		if n%2 != 0 {
			return false
		}
	}
	return true
}

// trackEntry is one orbit group's usage state during a single
// species' enumeration: how many times it has been claimed so far,
// and whether the search is still allowed to revisit it (false once a
// "skip it" branch has passed this entry by).
type trackEntry struct {
	Group        OrbitGroup
	NumTimesUsed int
	KeepUsing    bool
}

func newTrackEntries(groups []OrbitGroup) []trackEntry {
	out := make([]trackEntry, len(groups))
	for i, g := range groups {
		out[i] = trackEntry{Group: g, KeepUsing: true}
	}
	return out
}

func cloneTrackEntries(t []trackEntry) []trackEntry {
	out := make([]trackEntry, len(t))
	copy(out, t)
	return out
}

// firstAvailableIndex returns the first entry the search may still
// use or skip, or -1 once every entry has been passed by.
func firstAvailableIndex(t []trackEntry) int {
	for i, e := range t {
		if e.KeepUsing {
			return i
		}
	}
	return -1
}

// positionIsUsable reports whether e's orbit group can absorb one more
// use given atomsLeft atoms still to place and the find-only-one
// non-unique bias.
func positionIsUsable(e trackEntry, atomsLeft int, onlyNonUnique bool) bool {
	if onlyNonUnique && e.Group.Unique {
		return false
	}
	if e.Group.Multiplicity > atomsLeft {
		return false
	}
	if e.Group.Unique && e.NumTimesUsed >= len(e.Group.Orbits) {
		return false
	}
	return true
}

// convertToPossibility turns a fully-decided tracker state into a
// SingleSpeciesPossibility, dropping groups that were never used.
func convertToPossibility(atomicNumber int, t []trackEntry) SingleSpeciesPossibility {
	var subsets []ChosenSubset
	for _, e := range t {
		if e.NumTimesUsed == 0 {
			continue
		}
		orbits := make([]wyckoff.Orbit, len(e.Group.Orbits))
		copy(orbits, e.Group.Orbits)
		subsets = append(subsets, ChosenSubset{
			Multiplicity: e.Group.Multiplicity,
			Unique:       e.Group.Unique,
			Orbits:       orbits,
			NumToChoose:  e.NumTimesUsed,
		})
	}
	return SingleSpeciesPossibility{AtomicNumber: atomicNumber, Subsets: subsets}
}

// findCombinations recursively enumerates every way to cover
// atomsLeft atoms from tracker's remaining orbit groups. Every
// reachable entry is explored along two branches, always in this
// order: use it again (recurse with NumTimesUsed incremented and the
// same index still available), then skip it for good (recurse with
// KeepUsing cleared, moving on to the next entry). When findOnlyOne is
// set, the first completed possibility stops the whole search; the
// stop signal propagates back up through every pending branch.
func findCombinations(tracker []trackEntry, atomsLeft int, onlyNonUnique, findOnlyOne bool, atomicNumber int) ([]SingleSpeciesPossibility, bool) {
	if atomsLeft == 0 {
		return nil, false
	}
	idx := firstAvailableIndex(tracker)
	if idx < 0 {
		return nil, false
	}

	var results []SingleSpeciesPossibility
	entry := tracker[idx]
	if positionIsUsable(entry, atomsLeft, onlyNonUnique) {
		used := cloneTrackEntries(tracker)
		used[idx].NumTimesUsed++
		remaining := atomsLeft - entry.Group.Multiplicity
		if remaining == 0 {
			poss := convertToPossibility(atomicNumber, used)
			if findOnlyOne {
				return []SingleSpeciesPossibility{poss}, true
			}
			results = append(results, poss)
		} else {
			sub, stop := findCombinations(used, remaining, onlyNonUnique, findOnlyOne, atomicNumber)
			results = append(results, sub...)
			if stop {
				return results, true
			}
		}
	}

	skipped := cloneTrackEntries(tracker)
	skipped[idx].KeepUsing = false
	sub, stop := findCombinations(skipped, atomsLeft, onlyNonUnique, findOnlyOne, atomicNumber)
	results = append(results, sub...)
	return results, stop
}

// allSingleSpeciesPossibilities enumerates every SingleSpeciesPossibility
// covering atomCount atoms of atomicNumber across groups.
func allSingleSpeciesPossibilities(atomicNumber, atomCount int, groups []OrbitGroup) []SingleSpeciesPossibility {
	results, _ := findCombinations(newTrackEntries(groups), atomCount, false, false, atomicNumber)
	return results
}

// oneSingleSpeciesPossibility finds a single covering partition,
// biasing away from unique orbits first (so later species in a system
// search get first refusal on whatever unique orbits remain) and
// falling back to the unbiased search only if that comes up empty.
func oneSingleSpeciesPossibility(atomicNumber, atomCount int, groups []OrbitGroup, preferNonUnique bool) (SingleSpeciesPossibility, bool) {
	if preferNonUnique {
		if results, stop := findCombinations(newTrackEntries(groups), atomCount, true, true, atomicNumber); stop {
			return results[0], true
		}
	}
	if results, stop := findCombinations(newTrackEntries(groups), atomCount, false, true, atomicNumber); stop {
		return results[0], true
	}
	return SingleSpeciesPossibility{}, false
}

// subsetKey identifies the underlying orbit group a ChosenSubset draws
// from, independent of which species holds it, so cross-species unique
// usage can be summed correctly even though every species carries its
// own copy of the group's orbit list.
func subsetKey(s ChosenSubset) string {
	letters := make([]byte, len(s.Orbits))
	for i, o := range s.Orbits {
		letters[i] = o.Letter
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

// tooManyUniqueOrbitsUsed reports whether sys claims more atoms from
// some unique orbit group, summed across every species that draws from
// it, than that group has orbits to offer (mirrors
// tooManyOfAUniquePositionUsed / moreUniquePositionsUsedThanAvailable).
func tooManyUniqueOrbitsUsed(sys SystemPossibility) bool {
	used := make(map[string]int)
	avail := make(map[string]int)
	for _, sp := range sys.PerSpecies {
		for _, subset := range sp.Subsets {
			if !subset.Unique {
				continue
			}
			key := subsetKey(subset)
			used[key] += subset.NumToChoose
			avail[key] = len(subset.Orbits)
		}
	}
	for key, n := range used {
		if n > avail[key] {
			return true
		}
	}
	return false
}

// joinSingleWithSystem extends every existing SystemPossibility with
// every SingleSpeciesPossibility for the next species, in a Cartesian
// product, discarding any combination that over-claims a unique orbit
// group across species.
func joinSingleWithSystem(single []SingleSpeciesPossibility, sysPoss []SystemPossibility) []SystemPossibility {
	if len(sysPoss) == 0 {
		out := make([]SystemPossibility, 0, len(single))
		for _, s := range single {
			out = append(out, SystemPossibility{PerSpecies: []SingleSpeciesPossibility{s}})
		}
		return out
	}
	var joined []SystemPossibility
	for _, sys := range sysPoss {
		for _, s := range single {
			perSpecies := make([]SingleSpeciesPossibility, len(sys.PerSpecies)+1)
			copy(perSpecies, sys.PerSpecies)
			perSpecies[len(sys.PerSpecies)] = s
			candidate := SystemPossibility{PerSpecies: perSpecies}
			if !tooManyUniqueOrbitsUsed(candidate) {
				joined = append(joined, candidate)
			}
		}
	}
	return joined
}

// SpeciesCount is one input species: its atomic number and how many
// atoms of it the requested cell must contain.
type SpeciesCount struct {
	AtomicNumber int
	Count        int
}

// FindSystemPossibilities enumerates every cross-species-consistent
// SystemPossibility covering every (atomicNumber, count) pair in
// species. The result is the full set the §4.1 Pruners and the random
// witness extractor operate over — a System Possibility list, not a
// single witness, so pruning and uniform sampling have a set to work
// with. A nil, nil return means the composition is infeasible for spg.
func FindSystemPossibilities(spg int, species []SpeciesCount, db wyckoff.Database) ([]SystemPossibility, error) {
	orbits, err := db.Positions(spg)
	if err != nil {
		return nil, err
	}
	groups := GroupOrbits(orbits)

	counts := make([]int, len(species))
	for i, s := range species {
		counts[i] = s.Count
	}
	if !FastParityCheck(orbits, counts) {
		return nil, nil
	}

	var sysPoss []SystemPossibility
	for _, s := range species {
		single := allSingleSpeciesPossibilities(s.AtomicNumber, s.Count, groups)
		if len(single) == 0 {
			return nil, nil
		}
		sysPoss = joinSingleWithSystem(single, sysPoss)
		if len(sysPoss) == 0 {
			return nil, nil
		}
	}
	return sysPoss, nil
}

// Possible reports whether any SystemPossibility exists for spg and
// species, without needing the caller to care about the enumeration.
// This backs the is_spg_possible / IsSpgPossible entry point.
func Possible(spg int, species []SpeciesCount, db wyckoff.Database) (bool, error) {
	orbits, err := db.Positions(spg)
	if err != nil {
		return false, err
	}
	groups := GroupOrbits(orbits)

	counts := make([]int, len(species))
	for i, s := range species {
		counts[i] = s.Count
	}
	if !FastParityCheck(orbits, counts) {
		return false, nil
	}

	for _, bias := range [2]bool{true, false} {
		if found := trySystemWitness(species, groups, bias); found {
			return true, nil
		}
	}
	return false, nil
}

// trySystemWitness is the fast single-witness search backing Possible:
// every species but the last is searched biased away from unique
// orbits, so the last species gets first refusal on whatever unique
// orbits remain; it never needs the full enumeration, only confirmation
// that at least one valid combination exists.
func trySystemWitness(species []SpeciesCount, groups []OrbitGroup, bias bool) bool {
	var sys SystemPossibility
	for i, s := range species {
		preferNonUnique := bias && i != len(species)-1
		poss, found := oneSingleSpeciesPossibility(s.AtomicNumber, s.Count, groups, preferNonUnique)
		if !found {
			return false
		}
		sys.PerSpecies = append(sys.PerSpecies, poss)
		if tooManyUniqueOrbitsUsed(sys) {
			return false
		}
	}
	return true
}

// letterUsageCount reports how many times letter is used across sys,
// scoped to atomicNumber when scoped is true. A unique letter counts
// as used once the instant any matching Chosen-Subset claims it,
// regardless of that subset's NumToChoose — the actual physical orbit
// may be drawn by whichever species' random witness extraction claims
// it first, but the group is already spoken for either way.
func letterUsageCount(sys SystemPossibility, letter byte, atomicNumber int, scoped bool) int {
	total := 0
	for _, sp := range sys.PerSpecies {
		if scoped && sp.AtomicNumber != atomicNumber {
			continue
		}
		for _, subset := range sp.Subsets {
			for _, o := range subset.Orbits {
				if o.Letter != letter {
					continue
				}
				if subset.Unique {
					return 1
				}
				total += subset.NumToChoose
			}
		}
	}
	return total
}

// RemoveWithoutWyckPos keeps only the System Possibilities that use
// letter at least minUses times somewhere in the system (§4.1 Pruner
// remove_possibilities_without_wyck_pos(letter, min_uses)).
func RemoveWithoutWyckPos(possibilities []SystemPossibility, letter byte, minUses int) []SystemPossibility {
	var kept []SystemPossibility
	for _, sys := range possibilities {
		if letterUsageCount(sys, letter, 0, false) >= minUses {
			kept = append(kept, sys)
		}
	}
	return kept
}

// RemoveWithoutWyckPosForSpecies is RemoveWithoutWyckPos scoped to one
// species (the optional z parameter of
// remove_possibilities_without_wyck_pos(letter, min_uses, z)).
func RemoveWithoutWyckPosForSpecies(possibilities []SystemPossibility, letter byte, minUses, atomicNumber int) []SystemPossibility {
	var kept []SystemPossibility
	for _, sys := range possibilities {
		if letterUsageCount(sys, letter, atomicNumber, true) >= minUses {
			kept = append(kept, sys)
		}
	}
	return kept
}

// RemoveWithoutGeneralWyckPos keeps only the System Possibilities that
// use spg's most general orbit (the database's last, always non-unique,
// entry) at least minUses times (§4.1 Pruner
// remove_possibilities_without_general_wyck_pos(g, min_uses)).
func RemoveWithoutGeneralWyckPos(possibilities []SystemPossibility, orbits []wyckoff.Orbit, minUses int) []SystemPossibility {
	if len(orbits) == 0 {
		return possibilities
	}
	general := orbits[len(orbits)-1].Letter
	return RemoveWithoutWyckPos(possibilities, general, minUses)
}

// ForcedPair pins one species to a specific Wyckoff letter during
// random witness extraction.
type ForcedPair struct {
	AtomicNumber int
	Letter       byte
}

// cloneSystemPossibility deep-copies sys so RandomAssignment's
// in-place bookkeeping (decrementing NumToChoose, shrinking Orbits)
// never mutates the caller's possibility list, which is reused across
// every placement attempt.
func cloneSystemPossibility(sys SystemPossibility) SystemPossibility {
	out := SystemPossibility{PerSpecies: make([]SingleSpeciesPossibility, len(sys.PerSpecies))}
	for i, sp := range sys.PerSpecies {
		subsets := make([]ChosenSubset, len(sp.Subsets))
		for j, s := range sp.Subsets {
			orbits := make([]wyckoff.Orbit, len(s.Orbits))
			copy(orbits, s.Orbits)
			subsets[j] = ChosenSubset{Multiplicity: s.Multiplicity, Unique: s.Unique, Orbits: orbits, NumToChoose: s.NumToChoose}
		}
		out.PerSpecies[i] = SingleSpeciesPossibility{AtomicNumber: sp.AtomicNumber, Subsets: subsets}
	}
	return out
}

// takeForcedOrbit finds the first Chosen-Subset of atomicNumber's
// species offering letter with at least one draw remaining, claims one
// use of it, and returns the concrete orbit (mirrors
// decrementChoiceFromSystemPossibility).
func takeForcedOrbit(sys *SystemPossibility, atomicNumber int, letter byte) (wyckoff.Orbit, bool) {
	for i := range sys.PerSpecies {
		sp := &sys.PerSpecies[i]
		if sp.AtomicNumber != atomicNumber {
			continue
		}
		for j := range sp.Subsets {
			subset := &sp.Subsets[j]
			if subset.NumToChoose == 0 {
				continue
			}
			for _, o := range subset.Orbits {
				if o.Letter == letter {
					subset.NumToChoose--
					return o, true
				}
			}
		}
	}
	return wyckoff.Orbit{}, false
}

// removeOrbitEverywhere erases every orbit matching letter from every
// Chosen-Subset across the whole system possibility, so no later draw
// (forced or random) can re-pick a unique orbit another species just
// claimed (mirrors removePositionFromSystemPossibility).
func removeOrbitEverywhere(sys *SystemPossibility, letter byte) {
	for i := range sys.PerSpecies {
		sp := &sys.PerSpecies[i]
		for j := range sp.Subsets {
			subset := &sp.Subsets[j]
			kept := subset.Orbits[:0]
			for _, o := range subset.Orbits {
				if o.Letter != letter {
					kept = append(kept, o)
				}
			}
			subset.Orbits = kept
		}
	}
}

// RandomAssignment performs §4.1's random witness extraction: pick a
// uniformly random System Possibility from possibilities, prepend
// every forced pair (decrementing its Chosen-Subset's count), then draw
// each remaining Chosen-Subset's NumToChoose orbits without
// replacement — removing a drawn unique orbit from every Chosen-Subset
// in the witness the instant it is drawn, so it can never be drawn
// again by another species. Returns nil if possibilities is empty, or
// if a forced pair or a later draw cannot be satisfied by the chosen
// witness (an overconstrained witness; the caller should try another
// attempt, not treat this as fatal).
func RandomAssignment(rng *rand.Rand, possibilities []SystemPossibility, forced []ForcedPair) []Assignment {
	if len(possibilities) == 0 {
		return nil
	}
	chosen := cloneSystemPossibility(possibilities[rng.Intn(len(possibilities))])

	var out []Assignment
	for _, f := range forced {
		orbit, ok := takeForcedOrbit(&chosen, f.AtomicNumber, f.Letter)
		if !ok {
			return nil
		}
		out = append(out, Assignment{AtomicNumber: f.AtomicNumber, Orbit: orbit})
		if orbit.Unique {
			removeOrbitEverywhere(&chosen, orbit.Letter)
		}
	}

	for i := range chosen.PerSpecies {
		sp := &chosen.PerSpecies[i]
		for j := range sp.Subsets {
			subset := &sp.Subsets[j]
			for subset.NumToChoose > 0 {
				if len(subset.Orbits) == 0 {
					return nil
				}
				k := rng.Intn(len(subset.Orbits))
				orbit := subset.Orbits[k]
				out = append(out, Assignment{AtomicNumber: sp.AtomicNumber, Orbit: orbit})
				subset.NumToChoose--
				if orbit.Unique {
					removeOrbitEverywhere(&chosen, orbit.Letter)
				}
			}
		}
	}
	return out
}
