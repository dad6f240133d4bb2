package render

import (
	"encoding/json"

	"github.com/formen/formen/internal/shape"
)

// DrawCommand is a single drawing operation for a browser client to execute
// on a Canvas2D context.
type DrawCommand struct {
	Op          string        `json:"op"` // "rect", "circle" or "polygon"
	X           float64       `json:"x"`
	Y           float64       `json:"y"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Radius      float64       `json:"radius"`
	Points      []shape.Point `json:"points,omitempty"`
	Fill        string        `json:"fill,omitempty"`
	Stroke      string        `json:"stroke,omitempty"`
	StrokeWidth float64       `json:"strokeWidth,omitempty"`
	Dash        []float64     `json:"dash,omitempty"`
}

// CommandList records draw calls in painter's order (back to front).
type CommandList struct {
	commands []DrawCommand
}

func NewCommandList() *CommandList {
	return &CommandList{}
}

func (l *CommandList) Rect(x, y, width, height float64, style shape.Style) {
	cmd := styled("rect", style)
	cmd.X, cmd.Y, cmd.Width, cmd.Height = x, y, width, height
	l.commands = append(l.commands, cmd)
}

// Circle records a circle centered at (cx, cy).
func (l *CommandList) Circle(cx, cy, radius float64, style shape.Style) {
	cmd := styled("circle", style)
	cmd.X, cmd.Y, cmd.Radius = cx, cy, radius
	l.commands = append(l.commands, cmd)
}

func (l *CommandList) Polygon(points []shape.Point, style shape.Style) {
	cmd := styled("polygon", style)
	cmd.Points = append([]shape.Point(nil), points...)
	l.commands = append(l.commands, cmd)
}

// Commands returns the recorded commands. Never nil.
func (l *CommandList) Commands() []DrawCommand {
	if l.commands == nil {
		return []DrawCommand{}
	}
	return l.commands
}

// Reset drops all recorded commands.
func (l *CommandList) Reset() {
	l.commands = l.commands[:0]
}

// JSON serializes the commands.
func (l *CommandList) JSON() (string, error) {
	data, err := json.Marshal(l.Commands())
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

func styled(op string, style shape.Style) DrawCommand {
	return DrawCommand{
		Op:          op,
		Fill:        style.Fill,
		Stroke:      style.Stroke,
		StrokeWidth: style.LineWidth,
		Dash:        style.Dash,
	}
}
