package codegen

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed assets/prologue.cc
var prologueSrc string

//go:embed assets/epilogue.cc
var epilogueSrc string

// Assemble concatenates the fixed runtime prologue, one function per
// step unit, the positional step-function table, the trace-name
// constant, and the fixed epilogue into one C++ translation unit. The
// result is written once and never mutated; the build step consumes it
// as an opaque file.
func Assemble(traceName string, units []StepUnit) []byte {
	var sb strings.Builder
	sb.WriteString(prologueSrc)
	sb.WriteString("\n\n")

	for _, u := range units {
		writeStepFunction(&sb, u)
		sb.WriteString("\n")
	}

	sb.WriteString("static const StepFunction __steps[] = {\n")
	for _, u := range units {
		fmt.Fprintf(&sb, "  step_%d,\n", u.Index)
	}
	sb.WriteString("};\n\n")

	fmt.Fprintf(&sb, "const char* __trace_name = %s;\n", cppQuote(traceName))
	sb.WriteString("int __step_count = _countof(__steps);\n")
	sb.WriteString("StepFunction* __get_steps() { return (StepFunction*)__steps; }\n")
	sb.WriteString("\n")
	sb.WriteString(epilogueSrc)

	return []byte(sb.String())
}

// writeStepFunction renders one step body: the step-local scratch buffer
// and scratch identifier, the null-context placeholder, then the unit's
// statements.
func writeStepFunction(sb *strings.Builder, u StepUnit) {
	fmt.Fprintf(sb, "static void step_%d(Replay* replay) {\n", u.Index)
	sb.WriteString("  char scratch_buffer[2048];\n")
	sb.WriteString("  GLuint id = 0;\n")
	sb.WriteString("  CanvasContext* context = NULL;\n")

	w := &lineWriter{}
	for _, s := range u.Stmts {
		s.emit(w)
	}
	sb.WriteString(w.sb.String())

	sb.WriteString("  (void)scratch_buffer;\n")
	sb.WriteString("  (void)id;\n")
	sb.WriteString("  (void)context;\n")
	sb.WriteString("}\n")
}
