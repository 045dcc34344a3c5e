package state

import (
	"fmt"

	"GeoBoard/internal/logging"
)

// DefaultLabelOffset is how far a coordinate label sits from its point.
const DefaultLabelOffset = 13.0

// DragState is the controller's interaction state.
type DragState uint8

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Readout holds the numeric values shown next to the drawing surface.
type Readout struct {
	ParallelogramArea float64
	CircleArea        float64
	// HasAreas is false until shapes have been derived and after a reset.
	HasAreas bool
	Cursor   Point
}

// CursorText formats the cursor position readout.
func (r Readout) CursorText() string {
	return fmt.Sprintf("x: %.3f, y: %.3f", r.Cursor.X, r.Cursor.Y)
}

// ParallelogramText formats the parallelogram area, or "" before any derivation.
func (r Readout) ParallelogramText() string {
	if !r.HasAreas {
		return ""
	}
	return fmt.Sprintf("%.2f", r.ParallelogramArea)
}

// CircleText formats the circle area, or "" before any derivation.
func (r Readout) CircleText() string {
	if !r.HasAreas {
		return ""
	}
	return fmt.Sprintf("%.2f", r.CircleArea)
}

// Frame is the output of one controller transition.
type Frame struct {
	// Commands is the full scene. Nil when Redraw is false.
	Commands []Command
	Readout  Readout
	// Redraw is set when the scene must be drawn again.
	Redraw bool
	// Changed is set when the point set was mutated.
	Changed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithHitRadius sets the hit-test radius.
func WithHitRadius(r float64) Option {
	return func(c *Controller) { c.radius = r }
}

// WithHitTest selects the hit-test mode.
func WithHitTest(h HitTest) Option {
	return func(c *Controller) { c.mode = h }
}

// WithLabelOffset sets the distance between a point and its label.
func WithLabelOffset(off float64) Option {
	return func(c *Controller) { c.labelOffset = off }
}

// Controller turns pointer events into point set edits and emits the
// resulting scene as render commands. It is owned by one session and is
// not safe for concurrent use.
type Controller struct {
	points      *PointSet
	state       DragState
	dragIndex   int
	shapes      Shapes
	hasShapes   bool
	readout     Readout
	radius      float64
	mode        HitTest
	labelOffset float64
}

// NewController creates a controller with an empty point set.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		dragIndex:   -1,
		radius:      CircleRadius,
		labelOffset: DefaultLabelOffset,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.points = NewPointSet(c.radius, c.mode)
	return c
}

// State returns the current drag state and, when dragging, the index of
// the dragged point.
func (c *Controller) State() (DragState, int) {
	return c.state, c.dragIndex
}

// Points returns a copy of the current points.
func (c *Controller) Points() []Point { return c.points.Points() }

// Shapes returns the derived shapes, if three points are present.
func (c *Controller) Shapes() (Shapes, bool) { return c.shapes, c.hasShapes }

// Readout returns the current readout values.
func (c *Controller) Readout() Readout { return c.readout }

// PointerDown selects a nearby point for dragging, or places a new point.
func (c *Controller) PointerDown(p Point) Frame {
	if i, ok := c.points.NearestIndex(p); ok {
		c.state, c.dragIndex = Dragging, i
		logging.Logger().Debug("[SKETCH] drag start", "index", i)
		return c.frame(false)
	}
	if c.points.Add(p) {
		logging.Logger().Debug("[SKETCH] point added", "point", p.String(), "count", c.points.Len())
		c.derive()
		return c.frame(true)
	}
	return Frame{Readout: c.readout}
}

// PointerMove moves the dragged point to p. When idle only the cursor
// readout changes.
func (c *Controller) PointerMove(p Point) Frame {
	c.readout.Cursor = p
	if c.state != Dragging {
		return Frame{Readout: c.readout}
	}
	if !c.points.Replace(c.dragIndex, p) {
		return Frame{Readout: c.readout}
	}
	c.derive()
	return c.frame(true)
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() {
	if c.state == Dragging {
		logging.Logger().Debug("[SKETCH] drag end", "index", c.dragIndex)
	}
	c.state, c.dragIndex = Idle, -1
}

// Reset clears all points and area readouts and returns to Idle.
func (c *Controller) Reset() Frame {
	c.points.Clear()
	c.shapes, c.hasShapes = Shapes{}, false
	c.readout.ParallelogramArea = 0
	c.readout.CircleArea = 0
	c.readout.HasAreas = false
	c.state, c.dragIndex = Idle, -1
	logging.Logger().Debug("[SKETCH] reset")
	return c.frame(true)
}

// Load replaces the point set wholesale, ending any drag. Viewers use it
// to mirror a host.
func (c *Controller) Load(pts []Point) Frame {
	c.points.Load(pts)
	c.state, c.dragIndex = Idle, -1
	c.derive()
	return c.frame(true)
}

// Frame returns the current scene without changing state.
func (c *Controller) Frame() Frame {
	return c.frame(false)
}

func (c *Controller) derive() {
	s, ok := DeriveSet(c.points)
	if !ok {
		c.shapes, c.hasShapes = Shapes{}, false
		c.readout.ParallelogramArea, c.readout.CircleArea = 0, 0
		c.readout.HasAreas = false
		return
	}
	c.shapes, c.hasShapes = s, true
	c.readout.ParallelogramArea = s.ParallelogramArea
	c.readout.CircleArea = s.CircleArea
	c.readout.HasAreas = true
}

func (c *Controller) frame(changed bool) Frame {
	return Frame{
		Commands: c.Commands(),
		Readout:  c.readout,
		Redraw:   true,
		Changed:  changed,
	}
}

// Commands builds the render commands for the current scene.
func (c *Controller) Commands() []Command {
	pts := c.points.points
	off := Pt(c.labelOffset, c.labelOffset)

	cmds := make([]Command, 0, 3*len(pts)+3)
	for _, p := range pts {
		cmds = append(cmds,
			DrawPointCommand{Center: p},
			DrawLabelCommand{Position: p.Add(off), Text: p.String()},
		)
	}
	for i := 0; i+1 < len(pts); i++ {
		cmds = append(cmds, DrawSegmentCommand{From: pts[i], To: pts[i+1]})
	}
	if c.hasShapes {
		d := c.shapes.Fourth()
		cmds = append(cmds,
			DrawParallelogramCommand{Vertices: c.shapes.Vertices},
			DrawLabelCommand{Position: d.Add(off), Text: d.String()},
			DrawCircleCommand{Center: c.shapes.Center, Radius: c.shapes.Radius},
		)
	}
	return cmds
}
