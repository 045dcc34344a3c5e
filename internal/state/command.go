package state

// CommandType identifies the kind of a render command.
type CommandType uint8

const (
	CmdDrawPoint         CommandType = iota // Point marker
	CmdDrawSegment                          // Line between two points
	CmdDrawParallelogram                    // Closing sides of the parallelogram
	CmdDrawCircle                           // Equal-area circle
	CmdDrawLabel                            // Text readout
)

var commandTypeNames = [...]string{
	CmdDrawPoint:         "DrawPoint",
	CmdDrawSegment:       "DrawSegment",
	CmdDrawParallelogram: "DrawParallelogram",
	CmdDrawCircle:        "DrawCircle",
	CmdDrawLabel:         "DrawLabel",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one drawing instruction emitted by the controller. Renderers
// execute commands; they hold no geometry of their own.
type Command interface {
	Type() CommandType
}

// DrawPointCommand draws a point marker centered on Center.
type DrawPointCommand struct {
	Center Point
}

func (DrawPointCommand) Type() CommandType { return CmdDrawPoint }

// DrawSegmentCommand draws a straight line.
type DrawSegmentCommand struct {
	From, To Point
}

func (DrawSegmentCommand) Type() CommandType { return CmdDrawSegment }

// DrawParallelogramCommand draws the parallelogram A, B, C, D. The sides
// A-B and B-C are already covered by segments, so renderers may draw only
// A-D-C.
type DrawParallelogramCommand struct {
	Vertices [4]Point
}

func (DrawParallelogramCommand) Type() CommandType { return CmdDrawParallelogram }

// DrawCircleCommand draws a circle outline.
type DrawCircleCommand struct {
	Center Point
	Radius float64
}

func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

// DrawLabelCommand draws Text with its top-left corner at Position.
type DrawLabelCommand struct {
	Position Point
	Text     string
}

func (DrawLabelCommand) Type() CommandType { return CmdDrawLabel }

// Renderer executes drawing commands on some surface.
type Renderer interface {
	DrawPoint(center Point)
	DrawSegment(from, to Point)
	DrawParallelogram(vertices [4]Point)
	DrawCircle(center Point, radius float64)
	DrawLabel(position Point, text string)
}

// Replay feeds cmds to r in order.
func Replay(r Renderer, cmds []Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case DrawPointCommand:
			r.DrawPoint(c.Center)
		case DrawSegmentCommand:
			r.DrawSegment(c.From, c.To)
		case DrawParallelogramCommand:
			r.DrawParallelogram(c.Vertices)
		case DrawCircleCommand:
			r.DrawCircle(c.Center, c.Radius)
		case DrawLabelCommand:
			r.DrawLabel(c.Position, c.Text)
		}
	}
}
