// Command tuplegen regenerates the per-arity source files of the tuple
// package.
//
// It is driven by a single ceiling value: every arity from 1 to -max gets
// one generated file. The default ceiling matches the committed tree; the
// extended tier is selected with -max 24.
//
// Usage:
//
//	tuplegen [-max 12] [-dir tuple] [-v]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/amp-labs/tuples/internal/gen"
)

func main() {
	maxArity := flag.Int("max", gen.DefaultMaxArity, "highest tuple arity to generate")
	dir := flag.String("dir", ".", "directory to write generated files to")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := newLogger(*verbose)

	if err := run(log, *dir, *maxArity); err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(log *slog.Logger, dir string, maxArity int) error {
	if maxArity < 1 || maxArity > gen.ExtendedMaxArity {
		return fmt.Errorf("%w: -max %d not in [1, %d]", gen.ErrCeiling, maxArity, gen.ExtendedMaxArity)
	}

	emitter := gen.NewEmitter(log)
	files := make([][]byte, maxArity+1)

	// Arities render independently, so fan the work out.
	pool := pond.NewPool(runtime.NumCPU())
	group := pool.NewGroup()

	for n := 1; n <= maxArity; n++ {
		group.SubmitErr(func() error {
			src, err := emitter.ArityFile(n)
			if err != nil {
				return err
			}

			files[n] = src

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("rendering arity files: %w", err)
	}

	pool.StopAndWait()

	for n := 1; n <= maxArity; n++ {
		name := filepath.Join(dir, gen.ArityFileName(n))
		if err := os.WriteFile(name, files[n], 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}

		log.Debug("wrote arity file", "file", name, "arity", n)
	}

	log.Info("generated tuple arities", "max", maxArity, "dir", dir)

	return nil
}
