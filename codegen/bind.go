package codegen

import (
	"errors"
	"fmt"

	"github.com/dreamfrog/tracing-framework/replay"
	"github.com/dreamfrog/tracing-framework/trace"
)

// BindSteps compiles step units into executable step functions for the
// in-process replay runtime. Each function interprets its unit's
// statements against the runtime: context operations go through the
// context registry, handle operations through the current context's
// object table, and native calls through the driver.
//
// Statement failures inside a step are collected and returned but never
// abort the remaining statements; replay semantics are
// log-and-continue.
func BindSteps(units []StepUnit) []replay.StepFunc {
	funcs := make([]replay.StepFunc, len(units))
	for i, u := range units {
		funcs[i] = func(rt *replay.Runtime) error {
			return runUnit(rt, u)
		}
	}
	return funcs
}

func runUnit(rt *replay.Runtime, u StepUnit) error {
	var (
		ctx  *replay.Context
		data = make(map[string][]float64)
		errs []error
	)

	fail := func(err error) {
		errs = append(errs, fmt.Errorf("step %d: %w", u.Index, err))
	}

	for _, stmt := range u.Stmts {
		switch s := stmt.(type) {
		case MakeCurrentStmt:
			if s.Handle == trace.NoContext {
				ctx = nil
				continue
			}
			c, err := rt.MakeContextCurrent(s.Handle, s.Width, s.Height)
			if err != nil {
				fail(err)
				continue
			}
			ctx = c

		case CreateContextStmt:
			c, err := rt.CreateContext(s.Handle)
			if err != nil {
				fail(err)
				continue
			}
			ctx = c

		case GenStmt:
			if ctx == nil {
				fail(errNoContext(genFnName(s.Kind)))
				continue
			}
			id := ctx.Canvas().GenObject(s.Kind)
			ctx.SetObject(s.Kind, s.Handle, id)

		case DeleteStmt:
			if ctx == nil {
				fail(errNoContext("delete " + s.Kind.String()))
				continue
			}
			id := ctx.GetObject(s.Kind, s.Handle)
			ctx.Canvas().DeleteObject(s.Kind, id)

		case LocationStmt:
			if ctx == nil {
				fail(errNoContext("glGetUniformLocation"))
				continue
			}
			program := ctx.GetObject(trace.KindProgram, s.Program)
			loc := ctx.Canvas().UniformLocation(program, s.Name)
			ctx.SetObject(trace.KindUniformLocation, s.Handle, loc)

		case ShaderSourceStmt:
			if ctx == nil {
				fail(errNoContext("glShaderSource"))
				continue
			}
			shader := ctx.GetObject(trace.KindShader, s.Shader)
			err := ctx.Canvas().Call("glShaderSource", []replay.Value{
				replay.IntVal(int64(shader)),
				replay.StrVal(s.Source),
			})
			if err != nil {
				fail(err)
			}

		case DataStmt:
			data[s.Name] = s.Values

		case CallStmt:
			if ctx == nil {
				fail(errNoContext(s.Fn))
				continue
			}
			vals := make([]replay.Value, len(s.Args))
			for i, a := range s.Args {
				vals[i] = resolveArg(ctx, data, a)
			}
			if err := ctx.Canvas().Call(s.Fn, vals); err != nil {
				fail(err)
			}

		case CheckStmt:
			if ctx != nil {
				if code := ctx.Canvas().Err(); code != 0 {
					rt.Logger().Warn("call raised error", "step", u.Index, "code", code)
				}
			}

		case MarkerStmt:
			rt.Marker(s.Text)

		case CommentStmt:
			// Informational only.
		}
	}
	return errors.Join(errs...)
}

func errNoContext(op string) error {
	return fmt.Errorf("%s issued with no current context", op)
}

func genFnName(kind trace.ObjectKind) string {
	switch kind {
	case trace.KindProgram:
		return "glCreateProgram"
	case trace.KindShader:
		return "glCreateShader"
	}
	return genFn(kind)
}

// resolveArg maps a statement argument to its resolved native value.
// Lookups resolve through the current context's object table; data
// references resolve through the step's declared payloads.
func resolveArg(ctx *replay.Context, data map[string][]float64, a Arg) replay.Value {
	switch a.kind {
	case argInt:
		return replay.IntVal(a.i)
	case argFloat:
		return replay.FloatVal(a.f)
	case argBool:
		if a.b {
			return replay.IntVal(1)
		}
		return replay.IntVal(0)
	case argStr:
		return replay.StrVal(a.s)
	case argPtr:
		return replay.PtrVal(a.i)
	case argLookup:
		return replay.IntVal(int64(ctx.GetObject(a.objKind, a.handle)))
	case argData:
		return replay.DataVal(data[a.s])
	}
	return replay.IntVal(0)
}
