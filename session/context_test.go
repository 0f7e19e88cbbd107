package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
	"github.com/katalvlaran/stepsearch/session"
)

func TestRandomEndpoints_SameComponent(t *testing.T) {
	rows, err := gridgraph.ParseRows([]string{
		"11#1",
		"11#1",
		"##.#",
		"1###",
	})
	require.NoError(t, err)
	gg, err := gridgraph.From2D(rows, gridgraph.Conn4)
	require.NoError(t, err)

	ctx := session.NewContext(1)
	for i := 0; i < 100; i++ {
		origin, goal, err := ctx.RandomEndpoints(gg)
		require.NoError(t, err)
		assert.NotEqual(t, origin, goal)
		assert.True(t, gg.Connected(origin, goal), "%v and %v", origin, goal)
	}
}

func TestRandomEndpoints_Deterministic(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	a, b := session.NewContext(99), session.NewContext(99)
	for i := 0; i < 10; i++ {
		o1, g1, err := a.RandomEndpoints(gg)
		require.NoError(t, err)
		o2, g2, err := b.RandomEndpoints(gg)
		require.NoError(t, err)
		assert.Equal(t, []core.Point{o1, g1}, []core.Point{o2, g2})
	}
}

func TestRandomEndpoints_NoComponent(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	_, _, err = session.NewContext(1).RandomEndpoints(gg)
	require.ErrorIs(t, err, session.ErrNoEndpoints)
}

func TestMailbox_FIFO(t *testing.T) {
	m := session.NewMailbox()
	m.Post(session.Message{Topic: "a"})
	m.Post(session.Message{Topic: "b"})
	require.Equal(t, 2, m.Len())
	got := m.Drain()
	assert.Equal(t, []session.Message{{Topic: "a"}, {Topic: "b"}}, got)
	assert.Empty(t, m.Drain())
}
