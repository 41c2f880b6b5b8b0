// Package wtf turns a recorded WebGL trace into a standalone native
// program that replays it.
//
// Generate drives the whole pipeline: load the trace database, segment
// its event stream into steps, translate every recorded call into native
// statements, assemble one C++ translation unit between the fixed replay
// runtime prologue and epilogue, and hand the result to the native
// toolchain. An optional dry-run replays the translated steps in-process
// against a headless driver first, which audits handle resolution and
// call coverage without touching a compiler or a display.
//
//	err := wtf.Generate("captures/aquarium.wtf-trace.json",
//	    wtf.WithOutputBase("out/aquarium"),
//	    wtf.WithDryRun(true))
//
// The package produces no log output by default; call SetLogger to
// enable it.
package wtf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dreamfrog/tracing-framework/codegen"
	"github.com/dreamfrog/tracing-framework/replay"
	"github.com/dreamfrog/tracing-framework/toolchain"
	"github.com/dreamfrog/tracing-framework/trace"
)

// BuildError reports a nonzero toolchain exit. The toolchain's combined
// output is carried verbatim so the caller can pass it through to the
// console.
type BuildError struct {
	ExitCode int
	Output   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("wtf: build failed with exit code %d", e.ExitCode)
}

// Generate translates the trace at tracePath into <base>.cc and builds
// it into the executable at <base>, where base defaults to the trace
// path with its extension stripped.
//
// Input errors (unreadable trace, no zones) and build errors are
// returned; translation itself never fails on coverage gaps — unknown
// calls become visible markers in the generated source.
func Generate(tracePath string, opts ...Option) error {
	o := newOptions(opts)
	log := Logger()

	db, err := trace.Load(tracePath)
	if err != nil {
		return err
	}

	base := o.outputBase
	if base == "" {
		base = strings.TrimSuffix(tracePath, filepath.Ext(tracePath))
	}
	name := db.Name()
	if name == "" {
		name = filepath.Base(base)
	}

	// The first zone carries the recorded timeline; traces written by
	// the capture tool have exactly one.
	zone := db.Zones()[0]
	steps := trace.BuildSteps(zone.EventList(), zone.FrameList())
	log.Info("trace loaded", "name", name, "events", len(zone.EventList()), "steps", len(steps))

	tr := codegen.NewTranslator(codegen.WithTranslatorLogger(log))
	em := codegen.NewEmitter(tr, codegen.WithDebug(o.debug), codegen.WithEmitterLogger(log))
	units := em.EmitSteps(steps)

	source := base + ".cc"
	if err := os.WriteFile(source, codegen.Assemble(name, units), 0o644); err != nil {
		return fmt.Errorf("wtf: writing %s: %w", source, err)
	}
	log.Info("source written", "path", source)

	if o.dryRun {
		if err := dryRun(o.driver, name, units); err != nil {
			return err
		}
	}

	if o.skipBuild {
		return nil
	}

	builder := toolchain.NewBuilder(
		toolchain.WithConfig(o.toolchain),
		toolchain.WithLogger(log),
	)
	res, err := builder.Build(source, base)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &BuildError{ExitCode: res.ExitCode, Output: res.Output}
	}
	log.Info("build succeeded", "output", base)
	return nil
}

// dryRun replays the translated units in-process against the named
// driver.
func dryRun(driverName, title string, units []codegen.StepUnit) error {
	driver, err := replay.NewDriver(driverName)
	if err != nil {
		return err
	}
	rt, err := replay.New(driver, codegen.BindSteps(units),
		replay.WithLogger(Logger()),
		replay.WithTitle(title),
		replay.WithTick(0),
	)
	if err != nil {
		return err
	}
	return rt.Run()
}
