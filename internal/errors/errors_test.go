package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOutOfStock = New("out of stock")

func reserve() error {
	return WithStack(errOutOfStock)
}

func placeOrder() error {
	return Wrap(reserve(), "place order")
}

func TestWrapKeepsSentinel(t *testing.T) {
	err := placeOrder()

	assert.True(t, Is(err, errOutOfStock))
	assert.Equal(t, "place order: out of stock", err.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
}

func TestFrames(t *testing.T) {
	frames := Frames(placeOrder(), 2)

	require.Len(t, frames, 2)
	// The deepest stack is the one recorded closest to the failure.
	assert.Contains(t, frames[0], "reserve (")
	assert.Contains(t, frames[0], "errors_test.go:")
	assert.Contains(t, frames[1], "placeOrder (")
}

func TestFrames_NoStack(t *testing.T) {
	assert.Nil(t, Frames(errOutOfStock, DefaultFrameLimit))
	assert.Nil(t, Frames(nil, DefaultFrameLimit))
}
