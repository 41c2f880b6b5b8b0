package wtf

import "github.com/dreamfrog/tracing-framework/toolchain"

// Option configures a Generate run.
// Use functional options to customize pipeline behavior.
//
// Example:
//
//	// Translate and build with defaults
//	err := wtf.Generate("trace.json")
//
//	// Translate only, with annotated source
//	err := wtf.Generate("trace.json", wtf.WithDebug(true), wtf.WithSkipBuild(true))
type Option func(*options)

// options holds optional configuration for a Generate run.
type options struct {
	outputBase string
	debug      bool
	dryRun     bool
	skipBuild  bool
	driver     string
	toolchain  toolchain.Config
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) options {
	o := options{
		driver:    "headless",
		toolchain: toolchain.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOutputBase sets the base path for generated artifacts: the
// translated source is written to <base>.cc and the executable to
// <base>. The default is the trace path with its extension stripped.
func WithOutputBase(base string) Option {
	return func(o *options) {
		o.outputBase = base
	}
}

// WithDebug annotates the generated source with a comment per recorded
// event, carrying its timestamp and call name.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithDryRun replays the translated steps in-process before building,
// using the driver selected by WithDriver. Handle resolution and call
// coverage problems surface as warnings without a compile.
func WithDryRun(dryRun bool) Option {
	return func(o *options) {
		o.dryRun = dryRun
	}
}

// WithSkipBuild stops the pipeline after writing the translated source,
// leaving the native toolchain untouched.
func WithSkipBuild(skip bool) Option {
	return func(o *options) {
		o.skipBuild = skip
	}
}

// WithDriver selects the registered replay driver used for dry-runs.
// The default is "headless".
func WithDriver(name string) Option {
	return func(o *options) {
		o.driver = name
	}
}

// WithToolchainConfig overrides the native toolchain configuration used
// for the build stage.
func WithToolchainConfig(cfg toolchain.Config) Option {
	return func(o *options) {
		o.toolchain = cfg
	}
}
