package wtf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dreamfrog/tracing-framework/toolchain"
	"github.com/dreamfrog/tracing-framework/trace"
)

const demoTrace = `{
	"name": "triangle",
	"zones": [{
		"id": 1,
		"name": "main",
		"type": "script",
		"events": [
			{"name": "wtf.webgl#createContext", "time": 1, "args": {"handle": {"$handle": 1}, "width": 640, "height": 480}},
			{"name": "WebGLRenderingContext#createBuffer", "time": 2, "args": {"value": {"$handle": 7}}},
			{"name": "WebGLRenderingContext#bindBuffer", "time": 3, "args": {"target": 34962, "buffer": {"$handle": 7}}},
			{"name": "WebGLRenderingContext#bufferData", "time": 4, "args": {"target": 34962, "data": {"$type": "float32", "$data": [0, 0.5, -0.5, -0.5, 0.5, -0.5]}, "usage": 35044}},
			{"name": "WebGLRenderingContext#drawArrays", "time": 8, "args": {"mode": 4, "first": 0, "count": 3}}
		],
		"frames": [
			{"number": 0, "startTime": 0, "endTime": 5}
		]
	}]
}`

func writeTrace(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateWritesSource(t *testing.T) {
	path := writeTrace(t, demoTrace)
	base := filepath.Join(filepath.Dir(path), "out")

	err := Generate(path,
		WithOutputBase(base),
		WithSkipBuild(true),
		WithDryRun(true),
	)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	src, err := os.ReadFile(base + ".cc")
	if err != nil {
		t.Fatalf("reading generated source: %v", err)
	}
	got := string(src)
	for _, want := range []string{
		`const char* __trace_name = "triangle";`,
		"static void step_0(Replay* replay) {",
		"static void step_1(Replay* replay) {",
		"context = replay->CreateContext(1);",
		"glBindBuffer(34962, context->GetObject(7));",
		"glDrawArrays(4, 0, 3);",
		"int main(",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateDefaultOutputBase(t *testing.T) {
	path := writeTrace(t, demoTrace)
	if err := Generate(path, WithSkipBuild(true)); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := strings.TrimSuffix(path, ".json") + ".cc"
	if _, err := os.Stat(want); err != nil {
		t.Errorf("generated source not at %s: %v", want, err)
	}
}

func TestGenerateDebugComments(t *testing.T) {
	path := writeTrace(t, demoTrace)
	base := filepath.Join(filepath.Dir(path), "dbg")
	if err := Generate(path, WithOutputBase(base), WithSkipBuild(true), WithDebug(true)); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	src, err := os.ReadFile(base + ".cc")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "// t=2 WebGLRenderingContext#createBuffer") {
		t.Error("debug mode did not annotate events")
	}
}

func TestGenerateLoadFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if err := Generate(filepath.Join(t.TempDir(), "absent.json"), WithSkipBuild(true)); err == nil {
			t.Error("Generate of missing trace succeeded, want error")
		}
	})

	t.Run("no zones", func(t *testing.T) {
		path := writeTrace(t, `{"name": "empty", "zones": []}`)
		err := Generate(path, WithSkipBuild(true))
		if !errors.Is(err, trace.ErrNoZones) {
			t.Errorf("err = %v, want ErrNoZones", err)
		}
	})
}

func TestGenerateUnknownDriver(t *testing.T) {
	path := writeTrace(t, demoTrace)
	err := Generate(path, WithSkipBuild(true), WithDryRun(true), WithDriver("no-such-driver"))
	if err == nil {
		t.Error("Generate with unknown driver succeeded, want error")
	}
}

func TestGenerateBuildFailure(t *testing.T) {
	path := writeTrace(t, demoTrace)
	err := Generate(path,
		WithToolchainConfig(toolchain.Config{Compiler: "no-such-compiler-xyz"}),
	)
	if err == nil {
		t.Fatal("Generate with missing compiler succeeded, want error")
	}
}
