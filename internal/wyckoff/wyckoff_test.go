package wyckoff

import "testing"

func TestValidateRange(t *testing.T) {
	if err := Validate(0); err == nil {
		t.Error("Validate(0) should fail")
	}
	if err := Validate(231); err == nil {
		t.Error("Validate(231) should fail")
	}
	if err := Validate(1); err != nil {
		t.Errorf("Validate(1) = %v, want nil", err)
	}
	if err := Validate(230); err != nil {
		t.Errorf("Validate(230) = %v, want nil", err)
	}
}

func TestDefaultPositionsKnownGroup(t *testing.T) {
	orbits, err := Default.Positions(225)
	if err != nil {
		t.Fatalf("Positions(225) error: %v", err)
	}
	if len(orbits) == 0 {
		t.Fatal("Positions(225) returned no orbits")
	}
	last := orbits[len(orbits)-1]
	if last.Unique {
		t.Errorf("last orbit of spg 225 should be the general position, got unique=%v", last.Unique)
	}
	if last.Letter != 'l' {
		t.Errorf("general position of spg 225 should be letter l, got %c", last.Letter)
	}
	if last.Multiplicity != 192 {
		t.Errorf("general position of spg 225 should have multiplicity 192, got %d", last.Multiplicity)
	}
}

func TestPositionsOrderedByIncreasingMultiplicity(t *testing.T) {
	for _, spg := range []int{2, 47, 139, 225} {
		orbits, err := Default.Positions(spg)
		if err != nil {
			t.Fatalf("Positions(%d) error: %v", spg, err)
		}
		for i := 1; i < len(orbits); i++ {
			if orbits[i].Multiplicity < orbits[i-1].Multiplicity {
				t.Errorf("spg %d: orbit %c (mult %d) out of order after %c (mult %d)",
					spg, orbits[i].Letter, orbits[i].Multiplicity,
					orbits[i-1].Letter, orbits[i-1].Multiplicity)
			}
		}
	}
}

func TestUnknownGroupNotLoaded(t *testing.T) {
	_, err := Default.Positions(3)
	if err == nil {
		t.Fatal("Positions(3) should fail: not in the pinned table")
	}
}

func TestInvalidGroupRejected(t *testing.T) {
	_, err := Default.Positions(0)
	if err == nil {
		t.Fatal("Positions(0) should fail validation")
	}
}

func TestSpg19AllOrbitsEvenMultiplicity(t *testing.T) {
	orbits, err := Default.Positions(19)
	if err != nil {
		t.Fatalf("Positions(19) error: %v", err)
	}
	for _, o := range orbits {
		if o.Multiplicity%2 != 0 {
			t.Errorf("spg 19 orbit %c has odd multiplicity %d, want all-even", o.Letter, o.Multiplicity)
		}
	}
}

func TestUniqueOrbitsHaveNoFreeVariable(t *testing.T) {
	orbits, err := Default.Positions(2)
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range orbits {
		if o.Unique == o.Template.IsUnique() {
			continue
		}
		t.Errorf("orbit %c: Unique=%v disagrees with template.IsUnique()=%v", o.Letter, o.Unique, o.Template.IsUnique())
	}
}
