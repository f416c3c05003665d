package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_NominalPath(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusPreparing))
	assert.True(t, StatusPreparing.CanTransition(StatusReady))
	assert.True(t, StatusReady.CanTransition(StatusCompleted))
}

func TestStatus_CancellationWindow(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusCancelled))
	assert.True(t, StatusPreparing.CanTransition(StatusCancelled))

	// once the food is ready, cancelling is off the table
	assert.False(t, StatusReady.CanTransition(StatusCancelled))
	assert.False(t, StatusCompleted.CanTransition(StatusCancelled))
}

func TestStatus_NoSkippingOrRewinding(t *testing.T) {
	assert.False(t, StatusPending.CanTransition(StatusReady))
	assert.False(t, StatusPending.CanTransition(StatusCompleted))
	assert.False(t, StatusReady.CanTransition(StatusPreparing))
	assert.False(t, StatusPreparing.CanTransition(StatusPending))
}

func TestStatus_TerminalStates(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusPreparing.Terminal())
	assert.False(t, StatusReady.Terminal())

	assert.False(t, Status("bogus").Terminal())
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("shipped").Valid())
}
