package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/nnfold/sparsefold/pseudoknot"
	"github.com/nnfold/sparsefold/restriction"
	"github.com/nnfold/sparsefold/sparsefold"
	"github.com/nnfold/sparsefold/thermo"
	"github.com/urfave/cli/v2"
)

// main is the entry point for our command line app. We separate it from the
// actual &cli.App to help with testing.
func main() {
	run(os.Args)
}

// run is separated from main and application for debugging's sake.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the sparsefold CLI: a single command taking an
// optional positional sequence (or one line of standard input) and the
// flags spec.md §6 names.
func application() *cli.App {
	return &cli.App{
		Name:      "sparsefold",
		Usage:     "Fold an RNA sequence to its minimum free energy secondary structure.",
		UsageText: "sparsefold [options] [sequence]",
		Version:   "0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print arena and candidate statistics after folding"},
			&cli.BoolFlag{Name: "mark-candidates", Aliases: []string{"m"}, Usage: "emit { } at positions whose base pair is a registered candidate"},
			&cli.StringFlag{Name: "input-structure", Aliases: []string{"r"}, Usage: "restriction string of the same length as the sequence"},
			&cli.IntFlag{Name: "dangles", Aliases: []string{"d"}, Value: 2, Usage: "dangling-end mode, 1 or 2"},
			&cli.BoolFlag{Name: "pseudoknot", Aliases: []string{"p"}, Usage: "enable the two-plane pseudoknot overlay"},
			&cli.BoolFlag{Name: "noGC", Usage: "disable trace-arrow garbage collection and candidate shrinking"},
		},
		Action: foldCommand,
	}
}

func foldCommand(c *cli.Context) error {
	sequence, err := readSequence(c)
	if err != nil {
		return err
	}

	cfg := sparsefold.Config{
		Dangles:        c.Int("dangles"),
		MarkCandidates: c.Bool("mark-candidates"),
		NoGC:           c.Bool("noGC"),
	}
	restrictionStr := c.String("input-structure")
	if restrictionStr == "" {
		restrictionStr = allDots(len(sequence))
	}

	seq, err := thermo.NewSequence(sequence)
	if err != nil {
		return err
	}
	oracle := thermo.NewOracle(thermo.NewDefaultParams(37.0), cfg.Dangles)

	if c.Bool("pseudoknot") {
		return runPseudoknot(c, seq, restrictionStr, oracle, cfg, c.Bool("verbose"))
	}
	return runSingleFold(c, seq, restrictionStr, oracle, cfg, c.Bool("verbose"))
}

func runSingleFold(c *cli.Context, seq thermo.Sequence, restrictionStr string, oracle *thermo.Oracle, cfg sparsefold.Config, verbose bool) error {
	restr, err := restriction.Parse(restrictionStr)
	if err != nil {
		return err
	}
	engine, err := sparsefold.New(seq, restr, oracle, cfg)
	if err != nil {
		return err
	}
	energy := engine.Fold()
	structure := engine.Trace()

	fmt.Fprintln(c.App.Writer, seq.Raw)
	fmt.Fprintf(c.App.Writer, "%s (%.2f)\n", structure, float64(energy)/100)

	if verbose {
		printVerbose(c, engine)
	}
	return nil
}

func runPseudoknot(c *cli.Context, seq thermo.Sequence, restrictionStr string, oracle *thermo.Oracle, cfg sparsefold.Config, verbose bool) error {
	result, err := pseudoknot.Fold(seq, restrictionStr, oracle, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, seq.Raw)
	fmt.Fprintf(c.App.Writer, "%s (%.2f)\n", result.Structure, float64(result.Energy)/100)
	if verbose {
		w := c.App.ErrWriter
		if w == nil {
			w = os.Stderr
		}
		fmt.Fprintf(w, "plane1_energy=%.2f plane2_energy=%.2f\n", float64(result.Energy1)/100, float64(result.Energy2)/100)
	}
	return nil
}

func printVerbose(c *cli.Context, e *sparsefold.Engine) {
	stats := e.ArenaStats()
	loops := e.LoopCounts()
	w := c.App.ErrWriter
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w,
		"candidates_total=%d arrows_registered=%d arrows_avoided=%d arrows_gc'd=%d final_arena_size=%d\n",
		e.CandidateCount(), stats.Registered, stats.Avoided, stats.GCd, stats.FinalSize)
	fmt.Fprintf(w,
		"loops: hairpin=%d stack=%d bulge=%d interior=%d multi=%d\n",
		loops[sparsefold.LoopHairpin], loops[sparsefold.LoopStack], loops[sparsefold.LoopBulge],
		loops[sparsefold.LoopInterior], loops[sparsefold.LoopMulti])
	fmt.Fprintf(w, "arena_sound=%t\n", e.ArenaSound())
}

func readSequence(c *cli.Context) (string, error) {
	if c.Args().Len() > 0 {
		return c.Args().First(), nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", &sparsefold.ArgParseError{Reason: "no sequence given and standard input is empty"}
	}
	return scanner.Text(), nil
}

func allDots(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '.'
	}
	return string(b)
}
