package cellfill

import "testing"

func TestKnownGroupHasCentering(t *testing.T) {
	info, err := Default.Info(225)
	if err != nil {
		t.Fatalf("Info(225) error: %v", err)
	}
	if len(info.Centering) != 4 {
		t.Errorf("Fm-3m should have 4 centering vectors, got %d", len(info.Centering))
	}
	if len(info.Coset) != 48 {
		t.Errorf("Fm-3m should have 48 coset ops, got %d", len(info.Coset))
	}
}

func TestGeneralMultiplicityMatchesCenteringTimesCoset(t *testing.T) {
	// mult(general position) == len(Centering) * len(Coset), for every
	// pinned group's point-group order as derived independently from
	// the Wyckoff database (see internal/wyckoff's pinned general-orbit
	// multiplicities).
	cases := []struct {
		spg       int
		wantTotal int
	}{
		{1, 1},
		{2, 2},
		{4, 2},
		{19, 4},
		{47, 8},
		{62, 8},
		{99, 8},
		{139, 32},
		{167, 36},
		{176, 12},
		{194, 24},
		{200, 24},
		{216, 96},
		{225, 192},
		{229, 96},
		{230, 96},
	}
	for _, tc := range cases {
		info, err := Default.Info(tc.spg)
		if err != nil {
			t.Fatalf("Info(%d) error: %v", tc.spg, err)
		}
		got := len(info.Centering) * len(info.Coset)
		if got != tc.wantTotal {
			t.Errorf("spg %d: centering(%d)*coset(%d) = %d, want %d",
				tc.spg, len(info.Centering), len(info.Coset), got, tc.wantTotal)
		}
	}
}

func TestIdentityIsAlwaysAPresentOperation(t *testing.T) {
	for _, spg := range []int{1, 2, 4, 19, 47, 62, 99, 139, 167, 176, 194, 200, 216, 225, 229, 230} {
		info, err := Default.Info(spg)
		if err != nil {
			t.Fatalf("Info(%d) error: %v", spg, err)
		}
		x, y, z := info.Coset[0].Eval(0.3, 0.4, 0.5)
		if x != 0.3 || y != 0.4 || z != 0.5 {
			t.Errorf("spg %d: first coset op should be the identity, got (%v,%v,%v)", spg, x, y, z)
		}
	}
}

func TestUnknownGroupNotLoaded(t *testing.T) {
	if _, err := Default.Info(3); err == nil {
		t.Fatal("Info(3) should fail: not in the pinned table")
	}
}

func TestInvalidGroupRejected(t *testing.T) {
	if _, err := Default.Info(0); err == nil {
		t.Fatal("Info(0) should fail range validation")
	}
	if _, err := Default.Info(999); err == nil {
		t.Fatal("Info(999) should fail range validation")
	}
}
