// Command typedgen generates typed accessors for named tuple shapes.
//
// It reads a YAML manifest declaring shapes, unique-type accessors, and
// marker keys, validates every request against the shapes' slot lists, and
// emits one Go source file. Validation failures (ambiguous type, unknown
// type, out-of-range position) exit non-zero, so a go:generate run fails
// the build instead of deferring the error to runtime.
//
// Usage:
//
//	typedgen -manifest shapes.yaml [-o shapes_gen.go] [-max 12] [-v]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/amp-labs/tuples/internal/gen"
	"github.com/amp-labs/tuples/internal/manifest"
)

func main() {
	path := flag.String("manifest", "shapes.yaml", "shape manifest to read")
	out := flag.String("o", "", "output file (defaults to the manifest name with a _gen.go suffix)")
	maxArity := flag.Int("max", gen.DefaultMaxArity, "arity ceiling the tuple package was generated with")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := newLogger(*verbose)

	if err := run(log, *path, *out, *maxArity); err != nil {
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

func run(log *slog.Logger, path, out string, maxArity int) error {
	f, err := manifest.Load(path)
	if err != nil {
		return err
	}

	if err := f.Validate(maxArity); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	src, err := gen.NewEmitter(log).Accessors(f)
	if err != nil {
		return err
	}

	if out == "" {
		out = outputName(path)
	}

	if err := os.WriteFile(out, src, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	log.Info("generated typed accessors", "manifest", path, "out", out, "shapes", len(f.Tuples))

	return nil
}

func outputName(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}

	return base + "_gen.go"
}
