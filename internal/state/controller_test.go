package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeSquare(t *testing.T, c *Controller) {
	t.Helper()
	for _, p := range []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100)} {
		f := c.PointerDown(p)
		require.True(t, f.Changed, "placing %v", p)
		c.PointerUp()
	}
}

func countType(cmds []Command, ct CommandType) int {
	n := 0
	for _, c := range cmds {
		if c.Type() == ct {
			n++
		}
	}
	return n
}

func TestControllerPlacesPoints(t *testing.T) {
	c := NewController()

	f := c.PointerDown(Pt(0, 0))
	assert.True(t, f.Redraw)
	assert.Equal(t, 1, countType(f.Commands, CmdDrawPoint))
	assert.Equal(t, 1, countType(f.Commands, CmdDrawLabel))
	assert.False(t, f.Readout.HasAreas)

	st, _ := c.State()
	assert.Equal(t, Idle, st)
	c.PointerUp()

	f = c.PointerDown(Pt(100, 0))
	assert.Equal(t, 1, countType(f.Commands, CmdDrawSegment))
	c.PointerUp()

	f = c.PointerDown(Pt(100, 100))
	assert.Equal(t, 3, countType(f.Commands, CmdDrawPoint))
	assert.Equal(t, 2, countType(f.Commands, CmdDrawSegment))
	assert.Equal(t, 1, countType(f.Commands, CmdDrawParallelogram))
	assert.Equal(t, 1, countType(f.Commands, CmdDrawCircle))
	assert.True(t, f.Readout.HasAreas)
	assert.InDelta(t, 10000, f.Readout.ParallelogramArea, 1e-9)
	assert.InDelta(t, 10000, f.Readout.CircleArea, 1e-6)
}

func TestControllerPointerDownNearbySelects(t *testing.T) {
	c := NewController()
	placeSquare(t, c)

	f := c.PointerDown(Pt(103, 2))
	assert.False(t, f.Changed)
	st, idx := c.State()
	assert.Equal(t, Dragging, st)
	assert.Equal(t, 1, idx)
	assert.Len(t, c.Points(), 3)
}

func TestControllerFullNoHitIsNoop(t *testing.T) {
	c := NewController()
	placeSquare(t, c)

	f := c.PointerDown(Pt(400, 400))
	assert.False(t, f.Redraw)
	assert.False(t, f.Changed)
	st, _ := c.State()
	assert.Equal(t, Idle, st)
	assert.Len(t, c.Points(), 3)
}

func TestControllerDragRecomputes(t *testing.T) {
	c := NewController()
	for _, p := range []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)} {
		c.PointerDown(p)
		c.PointerUp()
	}
	// (10,0) sums to 10, within 11 of (0,0), so it selects instead of adding.
	require.Len(t, c.Points(), 2)

	c = NewController(WithHitRadius(2))
	for _, p := range []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)} {
		c.PointerDown(p)
		c.PointerUp()
	}
	require.Len(t, c.Points(), 3)
	s, ok := c.Shapes()
	require.True(t, ok)
	assert.Equal(t, Pt(0, 10), s.Fourth())
	assert.InDelta(t, 100, c.Readout().ParallelogramArea, 1e-9)

	c.PointerDown(Pt(10, 0))
	st, idx := c.State()
	require.Equal(t, Dragging, st)
	require.Equal(t, 1, idx)

	f := c.PointerMove(Pt(10, 5))
	assert.True(t, f.Changed)
	s, _ = c.Shapes()
	assert.Equal(t, Pt(0, 5), s.Fourth())
	assert.InDelta(t, 50, f.Readout.ParallelogramArea, 1e-9)
	assert.InDelta(t, 50, f.Readout.CircleArea, 1e-9)
	assert.Equal(t, Pt(10, 5), f.Readout.Cursor)

	c.PointerUp()
	st, idx = c.State()
	assert.Equal(t, Idle, st)
	assert.Equal(t, -1, idx)
}

func TestControllerIdleMoveOnlyUpdatesCursor(t *testing.T) {
	c := NewController()
	placeSquare(t, c)
	before := c.Points()

	f := c.PointerMove(Pt(300, 200))
	assert.False(t, f.Redraw)
	assert.Nil(t, f.Commands)
	assert.Equal(t, Pt(300, 200), f.Readout.Cursor)
	assert.Equal(t, "x: 300.000, y: 200.000", f.Readout.CursorText())
	assert.Equal(t, before, c.Points())
}

func TestControllerPointerUpWhenIdle(t *testing.T) {
	c := NewController()
	c.PointerUp()
	st, idx := c.State()
	assert.Equal(t, Idle, st)
	assert.Equal(t, -1, idx)
}

func TestControllerReset(t *testing.T) {
	c := NewController()
	placeSquare(t, c)
	c.PointerDown(Pt(0, 0))

	f := c.Reset()
	assert.Empty(t, c.Points())
	assert.Empty(t, f.Commands)
	assert.Zero(t, f.Readout.ParallelogramArea)
	assert.Zero(t, f.Readout.CircleArea)
	assert.Equal(t, "", f.Readout.ParallelogramText())
	assert.Equal(t, "", f.Readout.CircleText())
	st, _ := c.State()
	assert.Equal(t, Idle, st)
	_, ok := c.Shapes()
	assert.False(t, ok)

	// Points can be added again after a reset.
	f = c.PointerDown(Pt(5, 5))
	assert.True(t, f.Changed)
}

func TestControllerLoad(t *testing.T) {
	c := NewController()
	f := c.Load([]Point{Pt(0, 0), Pt(100, 0), Pt(100, 100)})
	assert.True(t, f.Readout.HasAreas)
	assert.Equal(t, "10000.00", f.Readout.ParallelogramText())

	f = c.Load([]Point{Pt(0, 0)})
	assert.False(t, f.Readout.HasAreas)
	assert.Equal(t, 0, countType(f.Commands, CmdDrawCircle))
}

func TestControllerLabels(t *testing.T) {
	c := NewController(WithLabelOffset(20))
	c.PointerDown(Pt(1, 2))

	var labels []DrawLabelCommand
	for _, cmd := range c.Frame().Commands {
		if l, ok := cmd.(DrawLabelCommand); ok {
			labels = append(labels, l)
		}
	}
	require.Len(t, labels, 1)
	assert.Equal(t, Pt(21, 22), labels[0].Position)
	assert.Equal(t, "(1.0, 2.0)", labels[0].Text)
}
