package cliconfig

// elementSymbols is indexed by atomic number - 1, mirroring
// original_source/external/randSpg/src/elemInfo.cpp's atomicSymbols
// vector (index 0 unused there; here the slice holds no placeholder
// so lookups go through symbolToAtomicNum instead of direct indexing).
var elementSymbols = []string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi",
	"Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc",
	"Lv", "Ts", "Og",
}

var symbolToAtomicNum = buildSymbolIndex()

func buildSymbolIndex() map[string]int {
	m := make(map[string]int, len(elementSymbols))
	for i, sym := range elementSymbols {
		m[sym] = i + 1
	}
	return m
}

// atomicNumberForSymbol mirrors ElemInfo::getAtomicNum's linear lookup
// (here a map, since the table is loaded once and reused across many
// lookups per options file). It reports 0, false for an unrecognized
// symbol rather than the source's silent out-of-range index.
func atomicNumberForSymbol(symbol string) (int, bool) {
	z, ok := symbolToAtomicNum[symbol]
	return z, ok
}
