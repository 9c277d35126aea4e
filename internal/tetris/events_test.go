package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDrain(t *testing.T) {
	var q Queue[SpawnRequested]
	assert.Empty(t, q.Drain())

	q.Send(SpawnRequested{})
	q.Send(SpawnRequested{})
	assert.Equal(t, 2, q.Len())

	assert.Len(t, q.Drain(), 2)
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Drain())
}
