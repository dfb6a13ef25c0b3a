package signal

func (ctl *WSController) handlePing(conn *WsConn) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: TypePong,
	}
	ctl.sendJSON(conn, resp)
}
