// Package canvas holds the client-side drawing state machine. It is a
// pure protocol component: rendering happens behind Surface and
// broadcasting behind Emitter, so the whole interaction is testable
// without a display.
package canvas

import (
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

// Surface is the rendering side effect. Implementations draw on a real
// canvas widget; tests record calls.
type Surface interface {
	StrokeSegment(a, b domain.Point, style domain.Style)
	StrokePath(pts []domain.Point, style domain.Style)
	Clear()
}

// Emitter carries locally captured events toward the session client.
type Emitter interface {
	EmitSegment(s domain.Stroke)
	EmitStroke(s domain.Stroke)
	EmitClear()
}

type State int

const (
	StateIdle State = iota
	StateDrawing
)

// Controller owns pointer capture and incremental path construction
// for one drawing surface. Not safe for concurrent use: it belongs to
// the UI event goroutine, like the widgets it drives.
type Controller struct {
	surface Surface
	emitter Emitter
	style   domain.Style
	state   State
	points  []domain.Point
}

func NewController(surface Surface, emitter Emitter) *Controller {
	return &Controller{
		surface: surface,
		emitter: emitter,
		style:   domain.Style{Color: "#22d3ee", Size: 2},
	}
}

func (c *Controller) SetStyle(style domain.Style) { c.style = style }
func (c *Controller) State() State                { return c.state }

// PointerDown starts a stroke with the single down-point. Nothing is
// rendered yet: a one-point stroke is invisible by design.
func (c *Controller) PointerDown(p domain.Point) {
	if c.state == StateDrawing {
		return
	}
	c.state = StateDrawing
	c.points = append(c.points[:0], p)
}

// PointerMove appends the point and renders only the trailing two-point
// segment, keeping per-tick cost O(1) regardless of stroke length. The
// same segment is emitted immediately so remote lag stays bounded to
// one network hop.
func (c *Controller) PointerMove(p domain.Point) {
	if c.state != StateDrawing {
		return
	}
	c.points = append(c.points, p)
	a := c.points[len(c.points)-2]
	c.surface.StrokeSegment(a, p, c.style)
	c.emitter.EmitSegment(domain.Stroke{
		Color:  c.style.Color,
		Size:   c.style.Size,
		Points: []domain.Point{a, p},
	})
}

// PointerUp finalizes the stroke. The full point sequence is broadcast
// for receivers that missed intermediate segments; locally everything
// is already on the surface, so no re-render happens.
func (c *Controller) PointerUp() {
	if c.state != StateDrawing {
		return
	}
	c.state = StateIdle
	if len(c.points) >= 2 {
		pts := make([]domain.Point, len(c.points))
		copy(pts, c.points)
		c.emitter.EmitStroke(domain.Stroke{
			Color:  c.style.Color,
			Size:   c.style.Size,
			Points: pts,
		})
	}
	c.points = c.points[:0]
}

// PointerLeave is the pointer exiting the surface mid-stroke; it must
// finalize exactly like PointerUp so no stroke dangles in Drawing.
func (c *Controller) PointerLeave() { c.PointerUp() }

// Clear wipes the local surface and asks the room to do the same. The
// confirmation comes back via includeSender fan-out and re-clears
// idempotently.
func (c *Controller) Clear() {
	c.surface.Clear()
	c.emitter.EmitClear()
}

// HandleRemoteStroke renders a stroke from another participant exactly
// once, without touching local drawing state. Sub-two-point strokes
// leave no mark.
func (c *Controller) HandleRemoteStroke(s domain.Stroke) {
	if len(s.Points) < 2 {
		return
	}
	c.surface.StrokePath(s.Points, s.Style())
}

// HandleRemoteClear blanks the surface. An in-progress local stroke is
// left alone: its remaining segments keep rendering and it finalizes
// normally on pointer-up, an accepted minor inconsistency.
func (c *Controller) HandleRemoteClear() {
	c.surface.Clear()
}
