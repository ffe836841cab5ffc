package renderer

import (
	"go.uber.org/multierr"

	"github.com/kjkrol/raymarch/pkg/gfx"
)

// maxPendingErrors bounds the getError loop; a lost context can keep
// reporting without ever returning NO_ERROR.
const maxPendingErrors = 16

// drainErrors collects the error flags reported by next until it returns
// noError.
func drainErrors(next func() uint32, noError uint32) error {
	var err error
	for i := 0; i < maxPendingErrors; i++ {
		code := next()
		if code == noError {
			break
		}
		err = multierr.Append(err, gfx.GLError(code))
	}
	return err
}
