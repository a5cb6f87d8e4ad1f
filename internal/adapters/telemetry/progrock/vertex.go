package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/exportgen/internal/core/domain"
)

// Vertex records the generation of one installation on a progrock tape.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log writes msg to the vertex output. Warnings and errors go to stderr.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished. A failed generation leaves the
// vertex errored.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
