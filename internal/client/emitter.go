package client

import (
	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/canvas"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

// CanvasEmitter adapts a Session to canvas.Emitter. Send failures are
// logged and swallowed: local drawing keeps working while the room is
// unreachable, which is all best-effort delivery promises.
type CanvasEmitter struct {
	Session *Session
}

func (e CanvasEmitter) EmitSegment(s domain.Stroke) {
	if err := e.Session.SendSegment(s); err != nil {
		log.Warn().Err(err).Str("module", "client").Msg("segment not sent")
	}
}

func (e CanvasEmitter) EmitStroke(s domain.Stroke) {
	if err := e.Session.SendStroke(s); err != nil {
		log.Warn().Err(err).Str("module", "client").Msg("stroke not sent")
	}
}

func (e CanvasEmitter) EmitClear() {
	if err := e.Session.SendClear(); err != nil {
		log.Warn().Err(err).Str("module", "client").Msg("clear not sent")
	}
}

// RunCanvas forwards remote draw events into the controller until the
// session ends. Run it on the goroutine that owns the controller.
func RunCanvas(s *Session, ctrl *canvas.Controller) {
	for {
		select {
		case <-s.Done():
			return
		case stroke := <-s.Strokes():
			ctrl.HandleRemoteStroke(stroke)
		case <-s.Clears():
			ctrl.HandleRemoteClear()
		}
	}
}
