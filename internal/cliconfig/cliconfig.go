// Package cliconfig reads the line-oriented options-file format: lines
// of `key = value`, a `#`-prefixed or trailing comment, a
// comma-and-hyphen spacegroup list, a six-number lattice string, and
// two "option atomicSymbol = value" forms (forceWyckPos, setRadius).
//
// Grounded on
// original_source/src/spgGen/src/spgGenOptions.cpp's
// interpretLineAndSetOption (trim, strip comment, split on the first
// '=', dispatch on the option name), read line-at-a-time with a
// bufio.Scanner instead of slurping the whole file into one string
// first.
package cliconfig

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sarat-asymmetrica/spgxtal/internal/lattice"
)

// ErrMissingComposition and ErrMissingSpacegroups mirror
// spgGenOptions.cpp's two mandatory-option checks: the original
// exits-as-failure when these are absent from the file, which is
// modeled here as a returned error instead of a printed message and a
// silently invalid options value.
var (
	ErrMissingComposition = errors.New("cliconfig: 'composition' was not set")
	ErrMissingSpacegroups = errors.New("cliconfig: 'spacegroups' was not set")
)

// SpeciesCount is one element of a parsed composition: an atomic
// number and how many atoms of it to place.
type SpeciesCount struct {
	AtomicNumber int
	Count        int
}

// ForcedLetter is a parsed `forceWyckPos <symbol> = <letter>` line.
type ForcedLetter struct {
	AtomicNumber int
	Letter       byte
}

// RadiusOverride is a parsed `setRadius <symbol> = <value>` line.
type RadiusOverride struct {
	AtomicNumber int
	Value        float64
}

// Verbosity is the parsed value of the `verbosity` option: 'n', 'r',
// or 'v', matching spgGenOptions.cpp's char field exactly.
type Verbosity byte

const (
	VerbosityNone    Verbosity = 'n'
	VerbosityRegular Verbosity = 'r'
	VerbosityVerbose Verbosity = 'v'
)

// Options is the parsed contents of one options file.
type Options struct {
	Composition []SpeciesCount
	Spacegroups []int

	LatticeMins, LatticeMaxes lattice.Params

	NumToGeneratePerSpg int
	ForceGeneralWyckPos bool

	ForcedLetters   []ForcedLetter
	RadiusOverrides []RadiusOverride
	SetAllMinRadii  bool
	MinRadii        float64
	ScalingFactor   float64

	MinVolume, MaxVolume float64
	MaxAttempts          int
	OutputDir            string
	Verbosity            Verbosity
}

// defaults mirrors SpgGenOptions's constructor field initializers.
func defaults() Options {
	return Options{
		LatticeMins:         lattice.Params{A: 3, B: 3, C: 3, Alpha: 60, Beta: 60, Gamma: 60},
		LatticeMaxes:        lattice.Params{A: 10, B: 10, C: 10, Alpha: 120, Beta: 120, Gamma: 120},
		NumToGeneratePerSpg: 1,
		ForceGeneralWyckPos: true,
		MinVolume:           -1,
		MaxVolume:           -1,
		MaxAttempts:         100,
		OutputDir:           ".",
		Verbosity:           VerbosityRegular,
	}
}

// Read parses an options file from r.
func Read(r io.Reader) (Options, error) {
	opts := defaults()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if err := interpretLine(&opts, line); err != nil {
			return opts, err
		}
	}
	if err := scanner.Err(); err != nil {
		return opts, errors.Wrap(err, "cliconfig: reading options file")
	}

	if opts.Composition == nil {
		return opts, ErrMissingComposition
	}
	if len(opts.Spacegroups) == 0 {
		return opts, ErrMissingSpacegroups
	}
	return opts, nil
}

func interpretLine(opts *Options, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	if i := strings.Index(line, "#"); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if line == "" {
		return nil
	}

	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return errors.Errorf("cliconfig: malformed line %q (expected 'key = value')", line)
	}
	option := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	switch {
	case option == "composition":
		comp, err := parseComposition(value)
		if err != nil {
			return err
		}
		opts.Composition = comp
	case option == "spacegroups":
		spgs, err := parseSpacegroups(value)
		if err != nil {
			return err
		}
		opts.Spacegroups = spgs
	case option == "latticeMins":
		l, err := parseLatticeString(value)
		if err != nil {
			return err
		}
		opts.LatticeMins = l
	case option == "latticeMaxes":
		l, err := parseLatticeString(value)
		if err != nil {
			return err
		}
		opts.LatticeMaxes = l
	case option == "numOfEachSpgToGenerate":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrap(err, "cliconfig: numOfEachSpgToGenerate")
		}
		opts.NumToGeneratePerSpg = n
	case option == "forceMostGeneralWyckPos":
		b, err := parseBoolLetter(value)
		if err != nil {
			return err
		}
		opts.ForceGeneralWyckPos = b
	case strings.HasPrefix(option, "forceWyckPos"):
		symbol, err := secondWord(option, "forceWyckPos")
		if err != nil {
			return err
		}
		if len(value) != 1 {
			return errors.Errorf("cliconfig: forceWyckPos value must be a single letter, got %q", value)
		}
		z, ok := atomicNumberForSymbol(symbol)
		if !ok {
			return errors.Errorf("cliconfig: unrecognized element symbol %q", symbol)
		}
		opts.ForcedLetters = append(opts.ForcedLetters, ForcedLetter{AtomicNumber: z, Letter: value[0]})
	case strings.HasPrefix(option, "setRadius"):
		symbol, err := secondWord(option, "setRadius")
		if err != nil {
			return err
		}
		z, ok := atomicNumberForSymbol(symbol)
		if !ok {
			return errors.Errorf("cliconfig: unrecognized element symbol %q", symbol)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrap(err, "cliconfig: setRadius value")
		}
		opts.RadiusOverrides = append(opts.RadiusOverrides, RadiusOverride{AtomicNumber: z, Value: v})
	case option == "setMinRadii":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrap(err, "cliconfig: setMinRadii")
		}
		opts.SetAllMinRadii = true
		opts.MinRadii = v
	case option == "scalingFactor":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrap(err, "cliconfig: scalingFactor")
		}
		opts.ScalingFactor = v
	case option == "minVolume":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrap(err, "cliconfig: minVolume")
		}
		opts.MinVolume = v
	case option == "maxVolume":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Wrap(err, "cliconfig: maxVolume")
		}
		opts.MaxVolume = v
	case option == "maxAttempts":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrap(err, "cliconfig: maxAttempts")
		}
		opts.MaxAttempts = n
	case option == "outputDir":
		opts.OutputDir = value
	case option == "verbosity":
		if len(value) == 0 || !strings.ContainsRune("nrv", rune(value[0])) {
			return errors.Errorf("cliconfig: verbosity must be 'n', 'r', or 'v', got %q", value)
		}
		opts.Verbosity = Verbosity(value[0])
	default:
		return errors.Errorf("cliconfig: unrecognized option %q", option)
	}
	return nil
}

// secondWord splits "prefix symbol" (the option side of a
// "forceWyckPos Na = a" line) and returns symbol.
func secondWord(option, prefix string) (string, error) {
	fields := strings.Fields(option)
	if len(fields) != 2 || fields[0] != prefix {
		return "", errors.Errorf("cliconfig: expected '%s <symbol>', got %q", prefix, option)
	}
	return fields[1], nil
}

func parseBoolLetter(value string) (bool, error) {
	if value == "" {
		return false, errors.New("cliconfig: empty boolean value")
	}
	switch value[0] {
	case 'T', 't':
		return true, nil
	case 'F', 'f':
		return false, nil
	default:
		return false, errors.Errorf("cliconfig: invalid boolean value %q (want True/False/T/F)", value)
	}
}

// parseComposition reads a "Na 4 Cl 4"-style symbol/count list, the
// same shape a generation request uses for its atoms field, keyed by
// element symbol instead of raw atomic number for readability in an
// options file.
func parseComposition(value string) ([]SpeciesCount, error) {
	fields := strings.Fields(value)
	if len(fields)%2 != 0 || len(fields) == 0 {
		return nil, errors.Errorf("cliconfig: composition must be pairs of 'Symbol Count', got %q", value)
	}
	out := make([]SpeciesCount, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		z, ok := atomicNumberForSymbol(fields[i])
		if !ok {
			return nil, errors.Errorf("cliconfig: unrecognized element symbol %q", fields[i])
		}
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "cliconfig: composition count for %q", fields[i])
		}
		out = append(out, SpeciesCount{AtomicNumber: z, Count: n})
	}
	return out, nil
}

// parseSpacegroups reads a comma-and-hyphen list ("1-5,10,225"),
// mirroring createSpgVector: split on commas, expand hyphen ranges,
// sort, and deduplicate.
func parseSpacegroups(value string) ([]int, error) {
	value = strings.ReplaceAll(value, " ", "")
	var out []int
	seen := make(map[int]bool)
	for _, piece := range strings.Split(value, ",") {
		if piece == "" {
			continue
		}
		if dash := strings.Index(piece, "-"); dash > 0 {
			lo, err := strconv.Atoi(piece[:dash])
			if err != nil {
				return nil, errors.Wrapf(err, "cliconfig: spacegroups range %q", piece)
			}
			hi, err := strconv.Atoi(piece[dash+1:])
			if err != nil {
				return nil, errors.Wrapf(err, "cliconfig: spacegroups range %q", piece)
			}
			for spg := lo; spg <= hi; spg++ {
				if !seen[spg] {
					seen[spg] = true
					out = append(out, spg)
				}
			}
			continue
		}
		n, err := strconv.Atoi(piece)
		if err != nil {
			return nil, errors.Wrapf(err, "cliconfig: spacegroups entry %q", piece)
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out, nil
}

// parseLatticeString reads "a,b,c,alpha,beta,gamma".
func parseLatticeString(value string) (lattice.Params, error) {
	fields := strings.Split(value, ",")
	if len(fields) != 6 {
		return lattice.Params{}, errors.Errorf("cliconfig: lattice string must have 6 comma-separated values, got %q", value)
	}
	nums := make([]float64, 6)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return lattice.Params{}, errors.Wrapf(err, "cliconfig: lattice value %q", f)
		}
		nums[i] = v
	}
	return lattice.Params{A: nums[0], B: nums[1], C: nums[2], Alpha: nums[3], Beta: nums[4], Gamma: nums[5]}, nil
}
