package wyckoff

// Pinned Wyckoff orbit data, transcribed from the upstream randSpg
// project's wyckoffDatabase.h (see original_source/external/randSpg/
// include/wyckoffDatabase.h; that file in turn cites the Bilbao
// Crystallographic Server's tables, scraped 2015-12-04). Per DESIGN.md
// Open Question #2, this repository pins one entry per crystal family
// plus every space group this repository's test scenarios name,
// rather than transcribing the full 230-entry table — a production
// deployment supplies the rest behind the same Database interface.
//
// Group 47 (Pmmm) is transcribed exactly as upstream (it does contain
// odd-multiplicity special positions) and is not used for the fast-parity test in this
// repository's own test suite; see DESIGN.md for the substitution.
var defaultDB = &defaultDatabase{
	byGroup: map[int][]Orbit{
		// 1: P1 (triclinic)
		1: {
			orbit('a', 1, "x,y,z"),
		},
		// 2: P-1 (triclinic)
		2: {
			orbit('a', 1, "0,0,0"),
			orbit('b', 1, "0,0,0.5"),
			orbit('c', 1, "0,0.5,0"),
			orbit('d', 1, "0.5,0,0"),
			orbit('e', 1, "0.5,0.5,0"),
			orbit('f', 1, "0.5,0,0.5"),
			orbit('g', 1, "0,0.5,0.5"),
			orbit('h', 1, "0.5,0.5,0.5"),
			orbit('i', 2, "x,y,z"),
		},
		// 4: P21 (monoclinic, unique axis b)
		4: {
			orbit('a', 2, "x,y,z"),
		},
		// 19: P212121 (orthorhombic) -- every orbit has multiplicity 4;
		// this repository's fast-parity test uses this group instead of
		// the literal 47 used in the worked fast-parity example (see DESIGN.md).
		19: {
			orbit('a', 4, "x,y,z"),
		},
		// 47: Pmmm (orthorhombic)
		47: {
			orbit('a', 1, "0,0,0"),
			orbit('b', 1, "0.5,0,0"),
			orbit('c', 1, "0,0,0.5"),
			orbit('d', 1, "0.5,0,0.5"),
			orbit('e', 1, "0,0.5,0"),
			orbit('f', 1, "0.5,0.5,0"),
			orbit('g', 1, "0,0.5,0.5"),
			orbit('h', 1, "0.5,0.5,0.5"),
			orbit('i', 2, "x,0,0"),
			orbit('j', 2, "x,0,0.5"),
			orbit('k', 2, "x,0.5,0"),
			orbit('l', 2, "x,0.5,0.5"),
			orbit('m', 2, "0,y,0"),
			orbit('n', 2, "0,y,0.5"),
			orbit('o', 2, "0.5,y,0"),
			orbit('p', 2, "0.5,y,0.5"),
			orbit('q', 2, "0,0,z"),
			orbit('r', 2, "0,0.5,z"),
			orbit('s', 2, "0.5,0,z"),
			orbit('t', 2, "0.5,0.5,z"),
			orbit('u', 4, "0,y,z"),
			orbit('v', 4, "0.5,y,z"),
			orbit('w', 4, "x,0,z"),
			orbit('x', 4, "x,0.5,z"),
			orbit('y', 4, "x,y,0"),
			orbit('z', 4, "x,y,0.5"),
			orbit('A', 8, "x,y,z"),
		},
		// 62: Pnma (orthorhombic)
		62: {
			orbit('a', 4, "0,0,0"),
			orbit('b', 4, "0,0,0.5"),
			orbit('c', 4, "x,0.25,z"),
			orbit('d', 8, "x,y,z"),
		},
		// 99: P4mm (tetragonal)
		99: {
			orbit('a', 1, "0,0,z"),
			orbit('b', 1, "0.5,0.5,z"),
			orbit('c', 2, "0.5,0,z"),
			orbit('d', 4, "x,x,z"),
			orbit('e', 4, "x,0,z"),
			orbit('f', 4, "x,0.5,z"),
			orbit('g', 8, "x,y,z"),
		},
		// 139: I4/mmm (tetragonal)
		139: {
			orbit('a', 2, "0,0,0"),
			orbit('b', 2, "0,0,0.5"),
			orbit('c', 4, "0,0.5,0"),
			orbit('d', 4, "0,0.5,0.25"),
			orbit('e', 4, "0,0,z"),
			orbit('f', 8, "0.25,0.25,0.25"),
			orbit('g', 8, "0,0.5,z"),
			orbit('h', 8, "x,x,0"),
			orbit('i', 8, "x,0,0"),
			orbit('j', 8, "x,0.5,0"),
			orbit('k', 16, "x,x+0.5,0.25"),
			orbit('l', 16, "x,y,0"),
			orbit('m', 16, "x,x,z"),
			orbit('n', 16, "0,y,z"),
			orbit('o', 32, "x,y,z"),
		},
		// 167: R-3c (trigonal, hexagonal axes)
		167: {
			orbit('a', 6, "0,0,0.25"),
			orbit('b', 6, "0,0,0"),
			orbit('c', 12, "0,0,z"),
			orbit('d', 18, "0.5,0,0"),
			orbit('e', 18, "x,0,0.25"),
			orbit('f', 36, "x,y,z"),
		},
		// 176: P63/m (hexagonal)
		176: {
			orbit('a', 2, "0,0,0.25"),
			orbit('b', 2, "0,0,0"),
			orbit('c', 2, "0.333333,0.666667,0.25"),
			orbit('d', 2, "0.666667,0.333333,0.25"),
			orbit('e', 4, "0,0,z"),
			orbit('f', 4, "0.333333,0.666667,z"),
			orbit('g', 6, "0.5,0,0"),
			orbit('h', 6, "x,y,0.25"),
			orbit('i', 12, "x,y,z"),
		},
		// 194: P63/mmc (hexagonal)
		194: {
			orbit('a', 2, "0,0,0"),
			orbit('b', 2, "0,0,0.25"),
			orbit('c', 2, "0.333333,0.666667,0.25"),
			orbit('d', 2, "0.333333,0.666667,0.75"),
			orbit('e', 4, "0,0,z"),
			orbit('f', 4, "0.333333,0.666667,z"),
			orbit('g', 6, "0.5,0,0"),
			orbit('h', 6, "x,2x,0.25"),
			orbit('i', 12, "x,0,0"),
			orbit('j', 12, "x,y,0.25"),
			orbit('k', 12, "x,2x,z"),
			orbit('l', 24, "x,y,z"),
		},
		// 200: Pm-3 (cubic)
		200: {
			orbit('a', 1, "0,0,0"),
			orbit('b', 1, "0.5,0.5,0.5"),
			orbit('c', 3, "0,0.5,0.5"),
			orbit('d', 3, "0.5,0,0"),
			orbit('e', 6, "x,0,0"),
			orbit('f', 6, "x,0,0.5"),
			orbit('g', 6, "x,0.5,0"),
			orbit('h', 6, "x,0.5,0.5"),
			orbit('i', 8, "x,x,x"),
			orbit('j', 12, "0,y,z"),
			orbit('k', 12, "0.5,y,z"),
			orbit('l', 24, "x,y,z"),
		},
		// 216: F-43m (cubic)
		216: {
			orbit('a', 4, "0,0,0"),
			orbit('b', 4, "0.5,0.5,0.5"),
			orbit('c', 4, "0.25,0.25,0.25"),
			orbit('d', 4, "0.75,0.75,0.75"),
			orbit('e', 16, "x,x,x"),
			orbit('f', 24, "x,0,0"),
			orbit('g', 24, "x,0.25,0.25"),
			orbit('h', 48, "x,x,z"),
			orbit('i', 96, "x,y,z"),
		},
		// 225: Fm-3m (cubic) -- rock-salt space group
		225: {
			orbit('a', 4, "0,0,0"),
			orbit('b', 4, "0.5,0.5,0.5"),
			orbit('c', 8, "0.25,0.25,0.25"),
			orbit('d', 24, "0,0.25,0.25"),
			orbit('e', 24, "x,0,0"),
			orbit('f', 32, "x,x,x"),
			orbit('g', 48, "x,0.25,0.25"),
			orbit('h', 48, "0,y,y"),
			orbit('i', 48, "0.5,y,y"),
			orbit('j', 96, "0,y,z"),
			orbit('k', 96, "x,x,z"),
			orbit('l', 192, "x,y,z"),
		},
		// 229: Im-3m (cubic)
		229: {
			orbit('a', 2, "0,0,0"),
			orbit('b', 6, "0,0.5,0.5"),
			orbit('c', 8, "0.25,0.25,0.25"),
			orbit('d', 12, "0.25,0,0.5"),
			orbit('e', 12, "x,0,0"),
			orbit('f', 16, "x,x,x"),
			orbit('g', 24, "x,0,0.5"),
			orbit('h', 24, "0,y,y"),
			orbit('i', 48, "0.25,y,-y+0.5"),
			orbit('j', 48, "0,y,z"),
			orbit('k', 48, "x,x,z"),
			orbit('l', 96, "x,y,z"),
		},
		// 230: Ia-3d (cubic) -- the garnet space group
		230: {
			orbit('a', 16, "0,0,0"),
			orbit('b', 16, "0.125,0.125,0.125"),
			orbit('c', 24, "0.125,0,0.25"),
			orbit('d', 24, "0.375,0,0.25"),
			orbit('e', 32, "x,x,x"),
			orbit('f', 48, "x,0,0.25"),
			orbit('g', 48, "0.125,y,-y+0.25"),
			orbit('h', 96, "x,y,z"),
		},
	},
}
