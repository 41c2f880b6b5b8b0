package codegen

import (
	"strings"
	"testing"

	"github.com/dreamfrog/tracing-framework/replay"
	"github.com/dreamfrog/tracing-framework/trace"
)

// replayUnits runs units to completion against a fresh headless driver
// and returns the driver for inspection.
func replayUnits(t *testing.T, units []StepUnit) (*replay.Headless, *replay.Runtime) {
	t.Helper()
	driver := replay.NewHeadless()
	rt, err := replay.New(driver, BindSteps(units), replay.WithTick(0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := rt.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return driver, rt
}

func TestBindStepsResolvesHandles(t *testing.T) {
	tr := NewTranslator()
	em := NewEmitter(tr)
	steps := []trace.Step{{
		Context: trace.NoContext,
		Events: []trace.Event{
			{Name: trace.CreateContextCall, Args: map[string]trace.Value{
				"handle": trace.Handle(1),
			}},
			{Name: "WebGLRenderingContext#createBuffer", Args: map[string]trace.Value{
				"value": trace.Handle(7),
			}},
			{Name: "WebGLRenderingContext#bindBuffer", Args: map[string]trace.Value{
				"target": trace.Number(34962),
				"buffer": trace.Handle(7),
			}},
			{Name: "WebGLRenderingContext#deleteBuffer", Args: map[string]trace.Value{
				"buffer": trace.Handle(7),
			}},
		},
	}}
	driver, _ := replayUnits(t, em.EmitSteps(steps))

	canvases := driver.Canvases()
	if len(canvases) != 1 {
		t.Fatalf("len(canvases) = %d, want 1", len(canvases))
	}
	calls := canvases[0].Calls()
	wantInOrder := []string{
		"gen buffer -> 1",
		"glBindBuffer(34962, 1)",
		"delete buffer 1",
	}
	i := 0
	for _, want := range wantInOrder {
		found := false
		for ; i < len(calls); i++ {
			if calls[i] == want {
				found = true
				i++
				break
			}
		}
		if !found {
			t.Fatalf("call log missing or misordered %q:\n%s", want, strings.Join(calls, "\n"))
		}
	}
}

func TestBindStepsContextCarriesAcrossSteps(t *testing.T) {
	em := NewEmitter(NewTranslator())
	steps := trace.BuildSteps(
		[]trace.Event{
			{Name: trace.CreateContextCall, Time: 1, Args: map[string]trace.Value{
				"handle": trace.Handle(1),
			}},
			{Name: "WebGLRenderingContext#clear", Time: 5, Args: map[string]trace.Value{
				"mask": trace.Number(16384),
			}},
		},
		[]trace.Frame{{Number: 0, EndTime: 2}},
	)
	driver, rt := replayUnits(t, em.EmitSteps(steps))

	calls := driver.Canvases()[0].Calls()
	found := false
	for _, c := range calls {
		if c == "glClear(16384)" {
			found = true
		}
	}
	if !found {
		t.Errorf("second step's call missing from log:\n%s", strings.Join(calls, "\n"))
	}
	if rt.Markers() != 0 {
		t.Errorf("Markers = %d, want 0", rt.Markers())
	}
}

func TestBindStepsShaderAndUniforms(t *testing.T) {
	em := NewEmitter(NewTranslator())
	steps := []trace.Step{{
		Context: trace.NoContext,
		Events: []trace.Event{
			{Name: trace.CreateContextCall, Args: map[string]trace.Value{
				"handle": trace.Handle(1),
			}},
			{Name: "WebGLRenderingContext#createProgram", Args: map[string]trace.Value{
				"value": trace.Handle(2),
			}},
			{Name: "WebGLRenderingContext#createShader", Args: map[string]trace.Value{
				"value": trace.Handle(3),
				"type":  trace.Number(35633),
			}},
			{Name: "WebGLRenderingContext#shaderSource", Args: map[string]trace.Value{
				"shader": trace.Handle(3),
				"source": trace.String("void main() {}"),
			}},
			{Name: "WebGLRenderingContext#getUniformLocation", Args: map[string]trace.Value{
				"program": trace.Handle(2),
				"name":    trace.String("u_mvp"),
				"value":   trace.Handle(9),
			}},
			{Name: "WebGLRenderingContext#uniform1i", Args: map[string]trace.Value{
				"location": trace.Handle(9),
				"x":        trace.Number(0),
			}},
		},
	}}
	driver, _ := replayUnits(t, em.EmitSteps(steps))

	calls := strings.Join(driver.Canvases()[0].Calls(), "\n")
	for _, want := range []string{
		"gen program -> 1",
		"gen shader -> 2",
		`glShaderSource(2, "void main() {}")`,
		`location 1 "u_mvp" -> 3`,
		"glUniform1i(3, 0)",
	} {
		if !strings.Contains(calls, want) {
			t.Errorf("call log missing %q:\n%s", want, calls)
		}
	}
}

func TestBindStepsMarkers(t *testing.T) {
	em := NewEmitter(NewTranslator())
	steps := []trace.Step{{
		Context: trace.NoContext,
		Events: []trace.Event{
			{Name: trace.CreateContextCall, Args: map[string]trace.Value{
				"handle": trace.Handle(1),
			}},
			{Name: "WebGLRenderingContext#readPixels", Args: map[string]trace.Value{}},
		},
	}}
	_, rt := replayUnits(t, em.EmitSteps(steps))
	if rt.Markers() != 1 {
		t.Errorf("Markers = %d, want 1", rt.Markers())
	}
}

func TestBindStepsNoContext(t *testing.T) {
	em := NewEmitter(NewTranslator())
	steps := []trace.Step{{
		Context: trace.NoContext,
		Events: []trace.Event{
			{Name: "WebGLRenderingContext#clear", Args: map[string]trace.Value{
				"mask": trace.Number(16384),
			}},
		},
	}}
	funcs := BindSteps(em.EmitSteps(steps))
	rt, err := replay.New(replay.NewHeadless(), funcs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := rt.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// The step's error is collected and logged, not fatal.
	rt.IssueNextStep()
	if rt.State() != replay.StateFinished {
		t.Errorf("state = %v, want Finished", rt.State())
	}
}
