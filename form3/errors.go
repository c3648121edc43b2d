package form3

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/soypat/meshgen"
)

// shapeErr holds a panic recovered from a must3 builder.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the panic value when it is an error so callers can match
// meshgen.ErrDegenerate and friends.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// recoverShape must be deferred directly by a Build function. It turns a
// must3 panic into the named error result and drops the partial mesh.
func recoverShape(kind Kind, m **meshgen.Mesh, err *error) {
	a := recover()
	if a == nil {
		return
	}
	se := &shapeErr{
		panicObj: a,
		stack:    string(debug.Stack()),
	}
	meshgen.Logger().Warn("builder assertion failed",
		slog.String("kind", kind.String()),
		slog.Any("panic", a),
		slog.String("stack", se.stack),
	)
	*m = nil
	*err = fmt.Errorf("%s: %w", kind, se)
}
