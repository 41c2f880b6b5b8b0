// Package toolchain invokes the native compiler that turns a generated
// replay source file into an executable. It is a thin, synchronous
// collaborator: one blocking subprocess call returning a structured
// result, gated on the platforms whose compiler and link flags are
// known.
package toolchain

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/BurntSushi/toml"
)

// ErrUnsupportedPlatform is returned when no toolchain invocation is
// known for the host platform.
var ErrUnsupportedPlatform = errors.New("toolchain: unsupported platform")

// Config names the compiler and the flags appended after the source and
// output arguments. A config file can override any field:
//
//	compiler = "clang++"
//	flags = ["-I/opt/sdl2/include", "-L/opt/sdl2/lib"]
//	link = ["-lSDL2", "-lGLESv2"]
type Config struct {
	// Compiler is the compiler executable name or path.
	Compiler string `toml:"compiler"`
	// Flags are compile flags.
	Flags []string `toml:"flags"`
	// Link are the link libraries and linker flags, appended last.
	Link []string `toml:"link"`
}

// DefaultConfig returns the stock Linux invocation: g++ against SDL2,
// GLES2, libm, and pthreads.
func DefaultConfig() Config {
	return Config{
		Compiler: "g++",
		Flags:    []string{"-std=c++11", "-O2", "-I/usr/include/SDL2"},
		Link:     []string{"-lSDL2", "-lGLESv2", "-lm", "-lpthread"},
	}
}

// LoadConfig reads a TOML config file and fills unset fields from the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	var override Config
	if _, err := toml.DecodeFile(path, &override); err != nil {
		return Config{}, fmt.Errorf("toolchain: reading %s: %w", path, err)
	}
	if override.Compiler != "" {
		cfg.Compiler = override.Compiler
	}
	if override.Flags != nil {
		cfg.Flags = override.Flags
	}
	if override.Link != nil {
		cfg.Link = override.Link
	}
	return cfg, nil
}

// Result is the outcome of one compiler invocation.
type Result struct {
	// ExitCode is the toolchain's exit status.
	ExitCode int
	// Output is the combined stdout and stderr, passed through verbatim
	// so toolchain diagnostics reach the console unmangled.
	Output string
}

// runner executes the prepared command and returns its combined output.
// Tests stub this out; production use runs the real subprocess.
type runner func(cmd *exec.Cmd) ([]byte, error)

// Builder invokes the native toolchain.
type Builder struct {
	cfg  Config
	goos string
	run  runner
	log  *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithConfig sets the toolchain configuration.
func WithConfig(cfg Config) Option {
	return func(b *Builder) { b.cfg = cfg }
}

// WithLogger sets the builder's logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// withGOOS and withRunner exist for tests.
func withGOOS(goos string) Option {
	return func(b *Builder) { b.goos = goos }
}

func withRunner(run runner) Option {
	return func(b *Builder) { b.run = run }
}

// NewBuilder creates a builder with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		cfg:  DefaultConfig(),
		goos: runtime.GOOS,
		run:  func(cmd *exec.Cmd) ([]byte, error) { return cmd.CombinedOutput() },
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build compiles source into the executable at output. It blocks until
// the toolchain exits. A nonzero toolchain exit is reported through the
// Result, not as an error; errors mean the toolchain could not be
// invoked at all or the platform is unsupported.
func (b *Builder) Build(source, output string) (Result, error) {
	if b.goos != "linux" {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, b.goos)
	}

	args := []string{source, "-o", output}
	args = append(args, b.cfg.Flags...)
	args = append(args, b.cfg.Link...)

	b.log.Info("invoking toolchain", "compiler", b.cfg.Compiler, "source", source, "output", output)
	cmd := exec.Command(b.cfg.Compiler, args...)
	out, err := b.run(cmd)

	res := Result{Output: string(out)}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("toolchain: running %s: %w", b.cfg.Compiler, err)
	}
	return res, nil
}
