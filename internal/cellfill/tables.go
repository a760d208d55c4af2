package cellfill

import "github.com/sarat-asymmetrica/spgxtal/internal/template"

// Pinned cell-filling recipes: one entry per space group this
// repository's wyckoff table covers. Coset representatives are
// transcribed from the general-position operator lists published by
// the International Tables for Crystallography (the same source
// wyckoffDatabase.h cites); centering translations follow each group's
// lattice type (P primitive, C/I body, F face, R rhombohedral on
// hexagonal axes). See DESIGN.md's Open Question #2 for why this
// table is a pinned subset rather than the full 230 groups.
var defaultDB = &defaultDatabase{
	byGroup: map[int]Info{
		// 1: P1
		1: {
			Centering: mustTriples("0,0,0"),
			Coset:     mustTriples("x,y,z"),
		},
		// 2: P-1
		2: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z", "-x,-y,-z",
			),
		},
		// 4: P21 (unique axis b)
		4: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z", "-x,y+0.5,-z",
			),
		},
		// 19: P212121
		19: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z",
				"-x+0.5,-y,z+0.5",
				"-x,y+0.5,-z+0.5",
				"x+0.5,-y+0.5,-z",
			),
		},
		// 47: Pmmm (point group mmm, 8 ops, primitive)
		47: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z", "-x,-y,z", "-x,y,-z", "x,-y,-z",
				"-x,-y,-z", "x,y,-z", "x,-y,z", "-x,y,z",
			),
		},
		// 62: Pnma (point group mmm with glides, 8 ops, primitive)
		62: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z",
				"-x+0.5,-y,z+0.5",
				"-x,y+0.5,-z",
				"x+0.5,-y+0.5,-z+0.5",
				"-x,-y,-z",
				"x+0.5,y,-z+0.5",
				"x,-y+0.5,z",
				"-x+0.5,y+0.5,z+0.5",
			),
		},
		// 99: P4mm (point group 4mm, 8 ops, primitive)
		99: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z", "-x,-y,z", "-y,x,z", "y,-x,z",
				"-x,y,z", "x,-y,z", "y,x,z", "-y,-x,z",
			),
		},
		// 139: I4/mmm (point group 4/mmm, 16 ops, body centered)
		139: {
			Centering: mustTriples("0,0,0", "0.5,0.5,0.5"),
			Coset: mustTriples(
				"x,y,z", "-x,-y,z", "-y,x,z", "y,-x,z",
				"-x,y,-z", "x,-y,-z", "y,x,-z", "-y,-x,-z",
				"-x,-y,-z", "x,y,-z", "y,-x,-z", "-y,x,-z",
				"x,-y,z", "-x,y,z", "-y,-x,z", "y,x,z",
			),
		},
		// 167: R-3c, hexagonal axes (point group -3m, 12 ops, R centered)
		167: {
			Centering: mustTriples("0,0,0", "0.666667,0.333333,0.333333", "0.333333,0.666667,0.666667"),
			Coset: mustTriples(
				"x,y,z", "-y,x-y,z", "-x+y,-x,z",
				"-y,-x,z+0.5", "x,x-y,z+0.5", "-x+y,y,z+0.5",
				"-x,-y,-z", "y,-x+y,-z", "x-y,x,-z",
				"y,x,-z+0.5", "-x,-x+y,-z+0.5", "x-y,-y,-z+0.5",
			),
		},
		// 176: P63/m (point group 6/m, 12 ops, primitive)
		176: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z", "-y,x-y,z", "-x+y,-x,z",
				"-x,-y,z+0.5", "y,-x+y,z+0.5", "x-y,x,z+0.5",
				"-x,-y,-z", "y,-x+y,-z", "x-y,x,-z",
				"x,y,-z+0.5", "-y,x-y,-z+0.5", "-x+y,-x,-z+0.5",
			),
		},
		// 194: P63/mmc (point group 6/mmm, 24 ops, primitive)
		194: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z", "-y,x-y,z", "-x+y,-x,z",
				"-x,-y,z+0.5", "y,-x+y,z+0.5", "x-y,x,z+0.5",
				"y,x,-z", "x-y,-y,-z", "-x,-x+y,-z",
				"-y,-x,-z+0.5", "-x+y,y,-z+0.5", "x,x-y,-z+0.5",
				"-x,-y,-z", "y,-x+y,-z", "x-y,x,-z",
				"x,y,-z+0.5", "-y,x-y,-z+0.5", "-x+y,-x,-z+0.5",
				"-y,-x,z", "-x+y,y,z", "x,x-y,z",
				"y,x,z+0.5", "x-y,-y,z+0.5", "-x,-x+y,z+0.5",
			),
		},
		// 200: Pm-3 (point group m-3, 24 ops, primitive)
		200: {
			Centering: mustTriples("0,0,0"),
			Coset: mustTriples(
				"x,y,z", "x,-y,-z", "-x,y,-z", "-x,-y,z",
				"y,z,x", "y,-z,-x", "-y,z,-x", "-y,-z,x",
				"z,x,y", "z,-x,-y", "-z,x,-y", "-z,-x,y",
				"-x,-y,-z", "-x,y,z", "x,-y,z", "x,y,-z",
				"-y,-z,-x", "-y,z,x", "y,-z,x", "y,z,-x",
				"-z,-x,-y", "-z,x,y", "z,-x,y", "z,x,-y",
			),
		},
		// 216: F-43m (point group -43m, 24 ops, face centered)
		216: {
			Centering: mustTriples("0,0,0", "0,0.5,0.5", "0.5,0,0.5", "0.5,0.5,0"),
			Coset: mustTriples(
				"x,y,z", "-x,-y,z", "-x,y,-z", "x,-y,-z",
				"z,x,y", "z,-x,-y", "-z,-x,y", "-z,x,-y",
				"y,z,x", "-y,z,-x", "y,-z,-x", "-y,-z,x",
				"y,x,z", "-y,-x,z", "y,-x,-z", "-y,x,-z",
				"x,z,y", "-x,z,-y", "-x,-z,y", "x,-z,-y",
				"z,y,x", "z,-y,-x", "-z,y,-x", "-z,-y,x",
			),
		},
		// 225: Fm-3m (point group m-3m, 48 ops, face centered) -- rock-salt
		225: {
			Centering: mustTriples("0,0,0", "0,0.5,0.5", "0.5,0,0.5", "0.5,0.5,0"),
			Coset:     fullOctahedral(),
		},
		// 229: Im-3m (point group m-3m, 48 ops, body centered)
		229: {
			Centering: mustTriples("0,0,0", "0.5,0.5,0.5"),
			Coset:     fullOctahedral(),
		},
		// 230: Ia-3d (point group m-3m, 48 ops, body centered) -- garnet
		230: {
			Centering: mustTriples("0,0,0", "0.5,0.5,0.5"),
			Coset:     fullOctahedral(),
		},
	},
}

// fullOctahedral returns the 48 coordinate templates of full cubic
// (m-3m / Oh) symmetry: every permutation of (x,y,z) under every
// combination of axis signs. Spaces groups 225, 229 and 230 all carry
// this point group at their general position, differing only in
// lattice centering, so the 48-element list is generated once here
// instead of hand-transcribed three times.
func fullOctahedral() []template.Triple {
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	vars := [3]string{"x", "y", "z"}
	out := make([]string, 0, 48)
	for _, p := range perms {
		for signBits := 0; signBits < 8; signBits++ {
			var parts [3]string
			for axis := 0; axis < 3; axis++ {
				v := vars[p[axis]]
				if signBits&(1<<axis) != 0 {
					v = "-" + v
				}
				parts[axis] = v
			}
			out = append(out, parts[0]+","+parts[1]+","+parts[2])
		}
	}
	return mustTriples(out...)
}
