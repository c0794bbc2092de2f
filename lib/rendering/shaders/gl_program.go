package shaders

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Diagnostic is one driver-supplied build failure message.
type Diagnostic struct {
	Stage string
	Log   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Stage, strings.TrimRight(d.Log, "\x00\n"))
}

// Diagnostics collects the compile and link failures of one build.
type Diagnostics struct {
	Entries []Diagnostic
}

func (d *Diagnostics) add(stage, text string) {
	d.Entries = append(d.Entries, Diagnostic{Stage: stage, Log: text})
}

// Failed reports whether any stage failed to compile or the link failed.
func (d *Diagnostics) Failed() bool {
	return len(d.Entries) > 0
}

func (d *Diagnostics) String() string {
	msgs := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		msgs[i] = e.String()
	}
	return strings.Join(msgs, "; ")
}

// Program owns one linked GL program object.
type Program struct {
	id       uint32
	released bool
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program object. Safe to call more than once; only
// the first call touches the GL.
func (p *Program) Delete() {
	if p.released {
		return
	}
	p.released = true
	gl.DeleteProgram(p.id)
}

// Build compiles both stages and links them into one program. Build
// failures are collected and logged rather than aborting: the returned
// program is always usable as a handle, though rendering with a failed
// build is undefined. Both stage objects are deleted after the link
// attempt, whatever its outcome.
func Build(src Sources) (*Program, *Diagnostics) {
	d := &Diagnostics{}

	vertexShader := compileStage(src.Vertex, gl.VERTEX_SHADER, "vertex", d)
	fragmentShader := compileStage(src.Fragment, gl.FRAGMENT_SHADER, "fragment", d)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))

		d.add("link", logmsg)
	}

	// stage objects are link-time-only artifacts
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	for _, e := range d.Entries {
		slog.Error(fmt.Sprintf("shader build: %s", e), slog.String("module", "shaders"))
	}

	return &Program{id: program}, d
}

func compileStage(source string, shaderType uint32, stage string, d *Diagnostics) uint32 {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))

		d.add(stage, clog)
	}

	return shader
}
