package placement

import (
	"math/rand"
	"testing"

	"github.com/sarat-asymmetrica/spgxtal/internal/cellfill"
	"github.com/sarat-asymmetrica/spgxtal/internal/lattice"
	"github.com/sarat-asymmetrica/spgxtal/internal/radii"
	"github.com/sarat-asymmetrica/spgxtal/internal/solver"
	"github.com/sarat-asymmetrica/spgxtal/internal/wyckoff"
	"github.com/sarat-asymmetrica/spgxtal/internal/xtal"
)

func TestPlaceOneUniqueOrbitSucceedsInOneAttempt(t *testing.T) {
	orbits, err := wyckoff.Default.Positions(225)
	if err != nil {
		t.Fatal(err)
	}
	var aOrbit wyckoff.Orbit
	for _, o := range orbits {
		if o.Letter == 'a' {
			aOrbit = o
		}
	}
	if aOrbit.Letter != 'a' {
		t.Fatal("expected to find orbit a in spg 225")
	}

	c := xtal.New(lattice.Lattice{A: 10, B: 10, C: 10, Alpha: 90, Beta: 90, Gamma: 90})
	rng := rand.New(rand.NewSource(1))
	o := radii.New(1.0, 0.0, nil)

	ok := PlaceOne(rng, c, 225, solver.Assignment{AtomicNumber: 11, Orbit: aOrbit}, cellfill.Default, o.MinIAD)
	if !ok {
		t.Fatal("placing a unique orbit into an empty cell should always succeed")
	}
	if len(c.Atoms) != 4 {
		t.Errorf("len(Atoms) after filling orbit a (mult 4) = %d, want 4", len(c.Atoms))
	}
}

func TestGenerateCrystalRockSalt(t *testing.T) {
	sysPoss, err := solver.FindSystemPossibilities(225, []solver.SpeciesCount{
		{AtomicNumber: 11, Count: 4},
		{AtomicNumber: 17, Count: 4},
	}, wyckoff.Default)
	if err != nil {
		t.Fatal(err)
	}
	if len(sysPoss) == 0 {
		t.Fatal("rock salt assignment should be feasible")
	}

	rng := rand.New(rand.NewSource(42))
	o := radii.New(0.5, 0.0, nil) // shrink radii so the small cell below isn't overconstrained
	req := Request{
		SpaceGroup:    225,
		LatticeMins:   lattice.Params{A: 5, B: 5, C: 5, Alpha: 90, Beta: 90, Gamma: 90},
		LatticeMaxes:  lattice.Params{A: 6, B: 6, C: 6, Alpha: 90, Beta: 90, Gamma: 90},
		MaxAttempts:   200,
		CellFillDB:    cellfill.Default,
		MinIAD:        o.MinIAD,
		Possibilities: sysPoss,
	}

	c, err := GenerateCrystal(rng, req)
	if err != nil {
		t.Fatalf("GenerateCrystal error: %v", err)
	}
	if len(c.Atoms) != 8 {
		t.Errorf("len(Atoms) = %d, want 8 (4 Na + 4 Cl)", len(c.Atoms))
	}
	var na, cl int
	for _, a := range c.Atoms {
		switch a.AtomicNumber {
		case 11:
			na++
		case 17:
			cl++
		}
	}
	if na != 4 || cl != 4 {
		t.Errorf("got %d Na and %d Cl, want 4 and 4", na, cl)
	}
}

func TestGenerateCrystalFailsWhenIADUnreasonable(t *testing.T) {
	sysPoss, err := solver.FindSystemPossibilities(225, []solver.SpeciesCount{
		{AtomicNumber: 11, Count: 4},
		{AtomicNumber: 17, Count: 4},
	}, wyckoff.Default)
	if err != nil {
		t.Fatal(err)
	}
	if len(sysPoss) == 0 {
		t.Fatal("rock salt assignment should be feasible")
	}

	rng := rand.New(rand.NewSource(7))
	o := radii.New(1.0, 1000.0, nil) // absurd floor guarantees every IAD check fails
	req := Request{
		SpaceGroup:    225,
		LatticeMins:   lattice.Params{A: 5, B: 5, C: 5, Alpha: 90, Beta: 90, Gamma: 90},
		LatticeMaxes:  lattice.Params{A: 6, B: 6, C: 6, Alpha: 90, Beta: 90, Gamma: 90},
		MaxAttempts:   5,
		CellFillDB:    cellfill.Default,
		MinIAD:        o.MinIAD,
		Possibilities: sysPoss,
	}

	_, err = GenerateCrystal(rng, req)
	if err == nil {
		t.Fatal("GenerateCrystal should fail when the minimum IAD floor is unreasonably large")
	}
}
