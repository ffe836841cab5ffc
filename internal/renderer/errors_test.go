package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/kjkrol/raymarch/pkg/gfx"
)

func queue(codes ...uint32) func() uint32 {
	return func() uint32 {
		if len(codes) == 0 {
			return 0
		}
		c := codes[0]
		codes = codes[1:]
		return c
	}
}

func TestDrainErrors_None(t *testing.T) {
	assert.NoError(t, drainErrors(queue(), 0))
}

func TestDrainErrors_Collects(t *testing.T) {
	err := drainErrors(queue(uint32(gfx.InvalidEnum), uint32(gfx.InvalidOperation)), 0)
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Equal(t, []error{gfx.InvalidEnum, gfx.InvalidOperation}, errs)
	assert.ErrorIs(t, err, gfx.InvalidOperation)
}

func TestDrainErrors_Bounded(t *testing.T) {
	calls := 0
	err := drainErrors(func() uint32 {
		calls++
		return uint32(gfx.ContextLost)
	}, 0)
	assert.Equal(t, maxPendingErrors, calls)
	assert.Len(t, multierr.Errors(err), maxPendingErrors)
}
