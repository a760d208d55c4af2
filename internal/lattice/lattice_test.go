package lattice

import (
	"math"
	"math/rand"
	"testing"
)

func wideBox() (Params, Params) {
	mins := Params{A: 3, B: 3, C: 3, Alpha: 60, Beta: 60, Gamma: 60}
	maxes := Params{A: 10, B: 10, C: 10, Alpha: 120, Beta: 120, Gamma: 120}
	return mins, maxes
}

func TestFamilyOfBoundaries(t *testing.T) {
	cases := []struct {
		spg  int
		want Family
	}{
		{1, Triclinic}, {2, Triclinic},
		{3, Monoclinic}, {15, Monoclinic},
		{16, Orthorhombic}, {74, Orthorhombic},
		{75, Tetragonal}, {142, Tetragonal},
		{143, Hexagonal}, {194, Hexagonal},
		{195, Cubic}, {230, Cubic},
	}
	for _, tc := range cases {
		got, err := FamilyOf(tc.spg)
		if err != nil {
			t.Fatalf("FamilyOf(%d) error: %v", tc.spg, err)
		}
		if got != tc.want {
			t.Errorf("FamilyOf(%d) = %v, want %v", tc.spg, got, tc.want)
		}
	}
}

func TestFamilyOfRejectsOutOfRange(t *testing.T) {
	if _, err := FamilyOf(0); err == nil {
		t.Error("FamilyOf(0) should fail")
	}
	if _, err := FamilyOf(231); err == nil {
		t.Error("FamilyOf(231) should fail")
	}
}

func TestDrawCubicEnforcesEqualLengthsAndAngles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mins, maxes := wideBox()
	for i := 0; i < 50; i++ {
		l, err := Draw(rng, 225, mins, maxes)
		if err != nil {
			t.Fatalf("Draw error: %v", err)
		}
		if l.A != l.B || l.B != l.C {
			t.Errorf("cubic lattice should have a=b=c, got %+v", l)
		}
		if l.Alpha != 90 || l.Beta != 90 || l.Gamma != 90 {
			t.Errorf("cubic lattice should have all angles 90, got %+v", l)
		}
	}
}

func TestDrawHexagonalEnforcesGamma120(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	mins, maxes := wideBox()
	l, err := Draw(rng, 194, mins, maxes)
	if err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	if l.A != l.B {
		t.Errorf("hexagonal lattice should have a=b, got %+v", l)
	}
	if l.Alpha != 90 || l.Beta != 90 || l.Gamma != 120 {
		t.Errorf("hexagonal lattice should have alpha=beta=90, gamma=120, got %+v", l)
	}
}

func TestDrawMonoclinicFixesAlphaGammaOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	mins, maxes := wideBox()
	l, err := Draw(rng, 4, mins, maxes)
	if err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	if l.Alpha != 90 || l.Gamma != 90 {
		t.Errorf("monoclinic lattice should have alpha=gamma=90, got %+v", l)
	}
}

func TestDrawRejectsBoxExcluding90Degrees(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	mins := Params{A: 3, B: 3, C: 3, Alpha: 100, Beta: 100, Gamma: 100}
	maxes := Params{A: 10, B: 10, C: 10, Alpha: 110, Beta: 110, Gamma: 110}
	if _, err := Draw(rng, 225, mins, maxes); err == nil {
		t.Error("Draw should fail: 90 degrees is excluded from the box but cubic requires it")
	}
}

func TestVolumeOfCubeMatchesSideCubed(t *testing.T) {
	l := Lattice{A: 2, B: 2, C: 2, Alpha: 90, Beta: 90, Gamma: 90}
	got := Volume(l)
	want := 8.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Volume(cube side 2) = %v, want %v", got, want)
	}
}

func TestRescalePreservesAnglesAndRatio(t *testing.T) {
	l := Lattice{A: 2, B: 4, C: 6, Alpha: 90, Beta: 90, Gamma: 90}
	target := 1000.0
	r := Rescale(l, target)
	if math.Abs(Volume(r)-target) > 1e-6 {
		t.Errorf("Rescale volume = %v, want %v", Volume(r), target)
	}
	if r.Alpha != l.Alpha || r.Beta != l.Beta || r.Gamma != l.Gamma {
		t.Error("Rescale should not change angles")
	}
	ratioBefore := l.A / l.B
	ratioAfter := r.A / r.B
	if math.Abs(ratioBefore-ratioAfter) > 1e-9 {
		t.Errorf("Rescale should preserve a:b ratio, got %v want %v", ratioAfter, ratioBefore)
	}
}

func TestSampleRespectsVolumeAndBoxConstraints(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	mins := Params{A: 2, B: 2, C: 2, Alpha: 90, Beta: 90, Gamma: 90}
	maxes := Params{A: 20, B: 20, C: 20, Alpha: 90, Beta: 90, Gamma: 90}
	l, err := Sample(rng, 225, mins, maxes, 100, 200)
	if err != nil {
		t.Fatalf("Sample error: %v", err)
	}
	v := Volume(l)
	if v < 100-1e-6 || v > 200+1e-6 {
		t.Errorf("Sample volume = %v, want within [100,200]", v)
	}
	if l.A < mins.A || l.A > maxes.A {
		t.Errorf("Sample a = %v, out of box [%v,%v]", l.A, mins.A, maxes.A)
	}
}

func TestSampleExhaustsWhenBoxAndVolumeConflict(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	// A box that only allows small cells, but a volume target that
	// forces rescaling far outside that same box every time.
	mins := Params{A: 2, B: 2, C: 2, Alpha: 90, Beta: 90, Gamma: 90}
	maxes := Params{A: 2.01, B: 2.01, C: 2.01, Alpha: 90, Beta: 90, Gamma: 90}
	_, err := Sample(rng, 225, mins, maxes, 100000, 200000)
	if err == nil {
		t.Error("Sample should exhaust attempts when volume target is incompatible with the box")
	}
}
