// Package codegen translates a recorded trace into a native replay
// program.
//
// The pipeline has four stages. The Call Translator maps each recorded
// call, by qualified name, onto typed statements: direct native calls,
// object allocations and deletions against the per-context handle table,
// context lifecycle operations, typed-array data declarations, and inert
// markers for calls that cannot be reproduced. The Step Emitter runs the
// translator over each step of the trace and closes every step as one
// named unit. The Program Assembler renders the units into a single C++
// translation unit between a fixed runtime prologue and epilogue, ready
// for the toolchain package. BindSteps compiles the same units into
// executable step functions for the in-process replay runtime, so a
// translated trace can be audited headlessly without building anything.
//
// Translation never fails on coverage gaps: unknown call names and
// unsupported payload shapes become visible marker statements in the
// output, shifting fidelity loss to a visual diff instead of aborting
// the run.
package codegen
