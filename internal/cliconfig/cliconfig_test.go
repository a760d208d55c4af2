package cliconfig

import (
	"strings"
	"testing"
)

const sampleOptions = `# this first line is a comment, like the original format
composition = Na 4 Cl 4
spacegroups = 1-3,225
latticeMins = 3,3,3,60,60,60
latticeMaxes = 10,10,10,120,120,120
numOfEachSpgToGenerate = 2
forceMostGeneralWyckPos = False
forceWyckPos Na = a
setRadius Cl = 1.5
minVolume = 50
maxVolume = 500
maxAttempts = 250
verbosity = v
`

func TestReadFullOptionsFile(t *testing.T) {
	opts, err := Read(strings.NewReader(sampleOptions))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(opts.Composition) != 2 || opts.Composition[0].AtomicNumber != 11 || opts.Composition[0].Count != 4 {
		t.Errorf("Composition = %+v, want [{11 4} {17 4}]", opts.Composition)
	}
	if got, want := opts.Spacegroups, []int{1, 2, 3, 225}; !intsEqual(got, want) {
		t.Errorf("Spacegroups = %v, want %v", got, want)
	}
	if opts.LatticeMins.A != 3 || opts.LatticeMaxes.Gamma != 120 {
		t.Errorf("lattice box not parsed correctly: %+v / %+v", opts.LatticeMins, opts.LatticeMaxes)
	}
	if opts.NumToGeneratePerSpg != 2 {
		t.Errorf("NumToGeneratePerSpg = %d, want 2", opts.NumToGeneratePerSpg)
	}
	if opts.ForceGeneralWyckPos {
		t.Error("ForceGeneralWyckPos should have been set to false")
	}
	if len(opts.ForcedLetters) != 1 || opts.ForcedLetters[0].AtomicNumber != 11 || opts.ForcedLetters[0].Letter != 'a' {
		t.Errorf("ForcedLetters = %+v, want [{11 'a'}]", opts.ForcedLetters)
	}
	if len(opts.RadiusOverrides) != 1 || opts.RadiusOverrides[0].AtomicNumber != 17 || opts.RadiusOverrides[0].Value != 1.5 {
		t.Errorf("RadiusOverrides = %+v, want [{17 1.5}]", opts.RadiusOverrides)
	}
	if opts.MinVolume != 50 || opts.MaxVolume != 500 || opts.MaxAttempts != 250 {
		t.Errorf("MinVolume/MaxVolume/MaxAttempts = %v/%v/%v", opts.MinVolume, opts.MaxVolume, opts.MaxAttempts)
	}
	if opts.Verbosity != VerbosityVerbose {
		t.Errorf("Verbosity = %q, want 'v'", opts.Verbosity)
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReadMissingCompositionIsAnError(t *testing.T) {
	_, err := Read(strings.NewReader("spacegroups = 1,2,3\n"))
	if err != ErrMissingComposition {
		t.Errorf("err = %v, want ErrMissingComposition", err)
	}
}

func TestReadMissingSpacegroupsIsAnError(t *testing.T) {
	_, err := Read(strings.NewReader("composition = Na 1\n"))
	if err != ErrMissingSpacegroups {
		t.Errorf("err = %v, want ErrMissingSpacegroups", err)
	}
}

func TestReadRejectsUnrecognizedOption(t *testing.T) {
	_, err := Read(strings.NewReader("composition = Na 1\nspacegroups = 1\nbogusOption = 5\n"))
	if err == nil {
		t.Error("expected an error for an unrecognized option")
	}
}

func TestReadRejectsUnrecognizedElementSymbol(t *testing.T) {
	_, err := Read(strings.NewReader("composition = Zz 1\nspacegroups = 1\n"))
	if err == nil {
		t.Error("expected an error for an unrecognized element symbol")
	}
}

func TestReadIgnoresInlineComments(t *testing.T) {
	opts, err := Read(strings.NewReader("composition = Na 1 # a comment\nspacegroups = 1 # another\n"))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(opts.Composition) != 1 || opts.Composition[0].Count != 1 {
		t.Errorf("Composition = %+v, want [{11 1}]", opts.Composition)
	}
}

func TestDefaultsMatchUpstreamConstructor(t *testing.T) {
	opts, err := Read(strings.NewReader("composition = Na 1\nspacegroups = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if opts.MaxAttempts != 100 {
		t.Errorf("default MaxAttempts = %d, want 100", opts.MaxAttempts)
	}
	if !opts.ForceGeneralWyckPos {
		t.Error("default ForceGeneralWyckPos should be true")
	}
	if opts.Verbosity != VerbosityRegular {
		t.Errorf("default Verbosity = %q, want 'r'", opts.Verbosity)
	}
	if opts.OutputDir != "." {
		t.Errorf("default OutputDir = %q, want %q", opts.OutputDir, ".")
	}
}
