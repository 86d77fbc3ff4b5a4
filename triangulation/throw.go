package triangulation

import "github.com/pkg/errors"

// Threading error returns through every geometric constructor would add a
// ton of complexity to the engine's inner loops. Instead, contract
// violations panic, and the public API recovers to convert to an error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
