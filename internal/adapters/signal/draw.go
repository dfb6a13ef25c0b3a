package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/core"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

func (ctl *WSController) handleDrawJoin(sid core.SessionID, c *WsConn, data []byte) {
	ev, err := decodeRoomEvent(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad draw:join payload")
		return
	}
	if !ctl.limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("join rate limit")
		return
	}

	ctl.Reg.Join(sid, domain.DrawRoom(ev.Room))
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", string(ev.Room)).Msg("draw join")

	// Ack goes only to the joining handle; clients gate first paint on it.
	ctl.sendJSON(c, RoomEvent{Type: TypeDrawJoined, Room: ev.Room})
}

// Incremental two-point segments are disposable: a receiver that drops
// one recovers on the finalizing draw:full.
func (ctl *WSController) handleDrawSegment(sid core.SessionID, data []byte) {
	ev, err := decodeStrokeEvent(data, true)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad draw:segment payload")
		return
	}
	ctl.Reg.Relay(domain.DrawRoom(ev.Room), sid, data, core.ExcludeSender, false)
}

// A finalized stroke is state-recovery-bearing: members who missed
// segments rely on it, so it relays as a critical frame.
func (ctl *WSController) handleDrawFull(sid core.SessionID, data []byte) {
	ev, err := decodeStrokeEvent(data, false)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad draw:full payload")
		return
	}
	ctl.Reg.Relay(domain.DrawRoom(ev.Room), sid, data, core.ExcludeSender, true)
}

func (ctl *WSController) handleDrawClear(sid core.SessionID, data []byte) {
	ev, err := decodeRoomEvent(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad draw:clear payload")
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", string(ev.Room)).Msg("draw clear")
	ctl.Reg.Relay(domain.DrawRoom(ev.Room), sid, data, core.IncludeSender, true)
}
