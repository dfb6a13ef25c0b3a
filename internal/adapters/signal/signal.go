package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/config"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

// WSController turns incoming WebSocket connections into session
// handles and dispatches their relay events.
type WSController struct {
	Reg     *core.Registry
	Cfg     *config.Config
	limiter *JoinRateLimiter
}

func NewWSController(reg *core.Registry, cfg *config.Config) *WSController {
	return &WSController{
		Reg:     reg,
		Cfg:     cfg,
		limiter: NewJoinRateLimiter(cfg.JoinLimit, cfg.JoinInterval),
	}
}

// WsConn is the outbound half of one session's transport. Sends are
// non-blocking: when the buffer is full the caller gets
// ErrBackpressure instead of stalling the room.
type WsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *WsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and runs the session until the
// transport drops. Each connection is its own session handle even when
// tabs share a client token, so includeSender fan-out reaches a second
// tab of the same user.
func (ctl *WSController) HandleWS(ctx context.Context, c *gin.Context) {
	sid := core.SessionID(uuid.NewString())
	log.Info().Str("module", "signal").Str("sid", string(sid)).
		Str("client_token", c.GetString("client_token")).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}

	conn := &WsConn{
		conn: ws,
		send: make(chan core.Frame, 32),
	}

	ctl.Reg.Attach(sid, conn)

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	ctl.readPump(ctx, sid, conn)
	cancel()
}
