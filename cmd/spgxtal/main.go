// Command spgxtal is the CLI surface: an
// options file in, either a feasibility check or a generated crystal
// out. It is intentionally thin — a cobra front end over the
// spgxtal/internal/cliconfig parser and the spgxtal package itself —
// since the CLI and the options-file format are scoped out of
// correctness requirements and names them only so the interface
// surface exists and can be tested.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarat-asymmetrica/spgxtal"
	"github.com/sarat-asymmetrica/spgxtal/internal/cliconfig"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "spgxtal",
		Short: "Generate random atomic crystal structures for a given space group",
	}
	root.AddCommand(newGenerateCmd(), newCheckCmd())
	return root
}

func loadOptions(path string) (cliconfig.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return cliconfig.Options{}, err
	}
	defer f.Close()
	return cliconfig.Read(f)
}

func toRequest(opts cliconfig.Options, spg int) spgxtal.Request {
	species := make([]spgxtal.Species, len(opts.Composition))
	for i, sp := range opts.Composition {
		species[i] = spgxtal.Species{AtomicNumber: sp.AtomicNumber, Count: sp.Count}
	}
	forced := make([]spgxtal.ForcedLetter, len(opts.ForcedLetters))
	for i, f := range opts.ForcedLetters {
		forced[i] = spgxtal.ForcedLetter{AtomicNumber: f.AtomicNumber, Letter: f.Letter}
	}
	radii := make(map[int]float64, len(opts.RadiusOverrides))
	for _, r := range opts.RadiusOverrides {
		radii[r.AtomicNumber] = r.Value
	}
	minRadius := 0.0
	if opts.SetAllMinRadii {
		minRadius = opts.MinRadii
	}

	verbosity := spgxtal.VerbosityResult
	switch opts.Verbosity {
	case cliconfig.VerbosityNone:
		verbosity = spgxtal.VerbosityQuiet
	case cliconfig.VerbosityVerbose:
		verbosity = spgxtal.VerbosityVerbose
	}

	return spgxtal.Request{
		SpaceGroup:                  spg,
		Species:                     species,
		LatticeMins:                 opts.LatticeMins,
		LatticeMaxes:                opts.LatticeMaxes,
		MinVolume:                   opts.MinVolume,
		MaxVolume:                   opts.MaxVolume,
		IADScaling:                  opts.ScalingFactor,
		MinRadius:                   minRadius,
		ManualRadii:                 radii,
		ForcedLetters:               forced,
		SkipGeneralOrbitRequirement: !opts.ForceGeneralWyckPos,
		MaxAttempts:                 opts.MaxAttempts,
		Verbosity:                   verbosity,
		Rand:                        rand.New(rand.NewSource(rand.Int63())),
	}
}

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <options-file>",
		Short: "Generate one crystal per configured space group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(args[0])
			if err != nil {
				return err
			}
			for _, spg := range opts.Spacegroups {
				for n := 0; n < opts.NumToGeneratePerSpg; n++ {
					req := toRequest(opts, spg)
					c, err := spgxtal.RandomCrystal(req)
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "spg %d attempt %d: %v\n", spg, n+1, err)
						continue
					}
					printPoscarLike(cmd.OutOrStdout(), spg, c)
				}
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <options-file>",
		Short: "Report whether each configured space group can host the composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(args[0])
			if err != nil {
				return err
			}
			species := make([]spgxtal.Species, len(opts.Composition))
			for i, sp := range opts.Composition {
				species[i] = spgxtal.Species{AtomicNumber: sp.AtomicNumber, Count: sp.Count}
			}
			for _, spg := range opts.Spacegroups {
				ok, err := spgxtal.IsSpgPossible(spg, species)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%d: error: %v\n", spg, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %v\n", spg, ok)
			}
			return nil
		},
	}
}

// printPoscarLike writes a minimal VASP-POSCAR-shaped rendering of the
// generated cell: POSCAR output is an out-of-scope-for-
// correctness but named interface, so this covers the shape (the six
// lattice parameters on one line, then one atomic-number-and-
// fractional-coordinate line per atom) without
// claiming compatibility with every POSCAR reader's quirks.
func printPoscarLike(w interface{ Write([]byte) (int, error) }, spg int, c *spgxtal.Crystal) {
	fmt.Fprintf(w, "generated spg %d\n", spg)
	fmt.Fprintf(w, "%.6f %.6f %.6f %.6f %.6f %.6f\n",
		c.Lattice.A, c.Lattice.B, c.Lattice.C, c.Lattice.Alpha, c.Lattice.Beta, c.Lattice.Gamma)
	for _, a := range c.Atoms {
		fmt.Fprintf(w, "%d %.6f %.6f %.6f\n", a.AtomicNumber, a.X, a.Y, a.Z)
	}
}
