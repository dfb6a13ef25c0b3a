package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/core"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

func (ctl *WSController) handleMetaJoin(sid core.SessionID, c *WsConn, data []byte) {
	ev, err := decodeRoomEvent(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad meta:join payload")
		return
	}
	if !ctl.limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("join rate limit")
		return
	}

	ctl.Reg.Join(sid, domain.MetaRoom(ev.Room))
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", string(ev.Room)).Msg("meta join")

	ctl.sendJSON(c, RoomEvent{Type: TypeMetaJoined, Room: ev.Room})
}

// Timer and progress are last-write-wins scalars: every member,
// the sender included, adopts the broadcast value.
func (ctl *WSController) handleMetaTimer(sid core.SessionID, data []byte) {
	ev, err := decodeTimerEvent(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad meta:timer payload")
		return
	}
	ctl.Reg.Relay(domain.MetaRoom(ev.Room), sid, data, core.IncludeSender, false)
}

func (ctl *WSController) handleMetaProgress(sid core.SessionID, data []byte) {
	ev, err := decodeProgressEvent(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad meta:progress payload")
		return
	}
	ctl.Reg.Relay(domain.MetaRoom(ev.Room), sid, data, core.IncludeSender, false)
}
