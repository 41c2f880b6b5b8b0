package codegen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/dreamfrog/tracing-framework/trace"
)

// ev builds a recorded event from name/value pairs.
func ev(name string, args map[string]trace.Value) *trace.Event {
	return &trace.Event{Name: name, Args: args}
}

// render flattens statements into the text they contribute to a step
// body.
func render(stmts []Stmt) string {
	w := &lineWriter{}
	for _, s := range stmts {
		s.emit(w)
	}
	return w.sb.String()
}

// translate runs one event through a fresh translator.
func translate(t *testing.T, e *trace.Event) []Stmt {
	t.Helper()
	b := &Buffer{}
	NewTranslator().Translate(e, b)
	return b.Statements()
}

func TestTranslateUnknownCall(t *testing.T) {
	stmts := translate(t, ev("WebGLRenderingContext#getParameter", map[string]trace.Value{
		"pname": trace.Number(34930),
	}))
	if len(stmts) != 1 {
		t.Fatalf("len(stmts) = %d, want exactly 1 marker", len(stmts))
	}
	m, ok := stmts[0].(MarkerStmt)
	if !ok {
		t.Fatalf("stmts[0] = %T, want MarkerStmt", stmts[0])
	}
	if !strings.Contains(m.Text, "getParameter") || !strings.Contains(m.Text, "pname=34930") {
		t.Errorf("marker text %q missing call name or args", m.Text)
	}
}

func TestTranslateAppendsCheck(t *testing.T) {
	stmts := translate(t, ev("WebGLRenderingContext#clear", map[string]trace.Value{
		"mask": trace.Number(16384),
	}))
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want call + check", len(stmts))
	}
	if _, ok := stmts[1].(CheckStmt); !ok {
		t.Errorf("stmts[1] = %T, want CheckStmt", stmts[1])
	}
}

func TestSupported(t *testing.T) {
	tr := NewTranslator()
	if !tr.Supported("WebGLRenderingContext#drawArrays") {
		t.Error("drawArrays not supported")
	}
	if tr.Supported("WebGLRenderingContext#readPixels") {
		t.Error("readPixels reported supported")
	}
}

func TestTranslateDeterministic(t *testing.T) {
	e := ev("WebGLRenderingContext#linkProgram", map[string]trace.Value{
		"program": trace.Handle(2),
		"attributes": trace.Map(map[string]trace.Value{
			"color":    trace.Number(1),
			"position": trace.Number(0),
			"normal":   trace.Number(2),
		}),
	})
	want := render(translate(t, e))
	for i := 0; i < 10; i++ {
		if got := render(translate(t, e)); got != want {
			t.Fatalf("translation differs across runs:\n%s\nvs\n%s", got, want)
		}
	}
}

func TestCreateThenBind(t *testing.T) {
	tr := NewTranslator()
	b := &Buffer{}
	tr.Translate(ev("WebGLRenderingContext#createBuffer", map[string]trace.Value{
		"value": trace.Handle(7),
	}), b)
	tr.Translate(ev("WebGLRenderingContext#bindBuffer", map[string]trace.Value{
		"target": trace.Number(34962),
		"buffer": trace.Handle(7),
	}), b)

	got := render(b.Statements())
	wantLines := []string{
		"glGenBuffers(1, &id);",
		"context->SetObject(7, id);",
		"glBindBuffer(34962, context->GetObject(7));",
	}
	pos := 0
	for _, line := range wantLines {
		i := strings.Index(got[pos:], line)
		if i < 0 {
			t.Fatalf("output missing or misordered %q:\n%s", line, got)
		}
		pos += i + len(line)
	}
}

func TestCreateShader(t *testing.T) {
	got := render(translate(t, ev("WebGLRenderingContext#createShader", map[string]trace.Value{
		"value": trace.Handle(3),
		"type":  trace.Number(35633),
	})))
	if !strings.Contains(got, "id = glCreateShader(35633);") {
		t.Errorf("output missing typed create:\n%s", got)
	}
	if !strings.Contains(got, "context->SetObject(3, id);") {
		t.Errorf("output missing table insert:\n%s", got)
	}
}

func TestDeleteKeepsEntry(t *testing.T) {
	got := render(translate(t, ev("WebGLRenderingContext#deleteBuffer", map[string]trace.Value{
		"buffer": trace.Handle(7),
	})))
	if !strings.Contains(got, "id = context->GetObject(7);") ||
		!strings.Contains(got, "glDeleteBuffers(1, &id);") {
		t.Errorf("unexpected delete form:\n%s", got)
	}
}

func TestShaderSourceLength(t *testing.T) {
	src := "void main() {\n  gl_Position = vec4(0.0);\n}"
	got := render(translate(t, ev("WebGLRenderingContext#shaderSource", map[string]trace.Value{
		"shader": trace.Handle(3),
		"source": trace.String(src),
	})))
	quoted := cppQuote(src)
	if !strings.Contains(got, "static const char* shader_source = "+quoted+";") {
		t.Errorf("output missing escaped source literal:\n%s", got)
	}
	wantLen := len(quoted) - 2
	if !strings.Contains(got, "static GLint shader_length = "+strconv.Itoa(wantLen)+";") {
		t.Errorf("output missing declared length %d:\n%s", wantLen, got)
	}
}

func TestGetUniformLocation(t *testing.T) {
	got := render(translate(t, ev("WebGLRenderingContext#getUniformLocation", map[string]trace.Value{
		"program": trace.Handle(2),
		"name":    trace.String("u_mvp"),
		"value":   trace.Handle(9),
	})))
	want := `context->SetObject(9, glGetUniformLocation(context->GetObject(2), "u_mvp"));`
	if !strings.Contains(got, want) {
		t.Errorf("output missing %q:\n%s", want, got)
	}
}

func TestLinkProgramBindsAttributes(t *testing.T) {
	got := render(translate(t, ev("WebGLRenderingContext#linkProgram", map[string]trace.Value{
		"program": trace.Handle(2),
		"attributes": trace.Map(map[string]trace.Value{
			"color":    trace.Number(1),
			"position": trace.Number(0),
		}),
	})))
	wantLines := []string{
		`glBindAttribLocation(context->GetObject(2), 0, "position");`,
		`glBindAttribLocation(context->GetObject(2), 1, "color");`,
		"glLinkProgram(context->GetObject(2));",
	}
	pos := 0
	for _, line := range wantLines {
		i := strings.Index(got[pos:], line)
		if i < 0 {
			t.Fatalf("output missing or misordered %q:\n%s", line, got)
		}
		pos += i + len(line)
	}
}

func TestUniformVectorCount(t *testing.T) {
	tests := []struct {
		name string
		call string
		n    int
		want string
	}{
		{"uniform3fv", "uniform3fv", 9, "glUniform3fv(context->GetObject(5), 3, data_0)"},
		{"uniform2iv", "uniform2iv", 4, "glUniform2iv(context->GetObject(5), 2, data_0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float64, tt.n)
			got := render(translate(t, ev(glPrefix+tt.call, map[string]trace.Value{
				"location": trace.Handle(5),
				"v":        trace.Array(&trace.TypedArray{Elem: trace.ElemFloat32, Tag: "float32", Values: values}),
			})))
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestUniformMatrixCount(t *testing.T) {
	values := make([]float64, 32)
	got := render(translate(t, ev("WebGLRenderingContext#uniformMatrix4fv", map[string]trace.Value{
		"location":  trace.Handle(5),
		"transpose": trace.Bool(false),
		"value":     trace.Array(&trace.TypedArray{Elem: trace.ElemFloat32, Tag: "float32", Values: values}),
	})))
	if !strings.Contains(got, "glUniformMatrix4fv(context->GetObject(5), 2, 0, data_0)") {
		t.Errorf("output missing matrix call with count 2:\n%s", got)
	}
}

func TestUniformScalar(t *testing.T) {
	got := render(translate(t, ev("WebGLRenderingContext#uniform2f", map[string]trace.Value{
		"location": trace.Handle(5),
		"x":        trace.Number(1),
		"y":        trace.Number(0.5),
	})))
	if !strings.Contains(got, "glUniform2f(context->GetObject(5), 1.0, 0.5)") {
		t.Errorf("unexpected scalar uniform:\n%s", got)
	}
}
