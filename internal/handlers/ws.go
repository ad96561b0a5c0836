package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// ConnectWS upgrades to a WebSocket on which every text message is a command
// batch (see [FieldHandler.Batch]). Each batch is answered with the field, or
// with an error payload when a command fails.
func (h FieldHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok || !h.authorize(w, r, s) {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("upgrade")
		return
	}
	defer c.Close()

	log := h.log.WithField("field_id", s.ID)
	log.Debug("ws connected")

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read")
			}
			break
		}
		if mt != websocket.TextMessage {
			err := c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "text only"))
			if err != nil {
				log.WithError(err).Warn("close")
			}
			break
		}

		text := string(message)
		log.WithField("text", text).Debug("\t>")

		var reply any
		if payload, failed := h.run(s, text); failed {
			reply = payload
		} else {
			reply = snapshot(s)
		}

		if err := c.WriteJSON(reply); err != nil {
			log.WithError(err).Error("write")
			break
		}
		log.Debug("\t< <field data>")
	}
}
