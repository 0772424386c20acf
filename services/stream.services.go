package services

import (
	"notehub-server/errors"
	"time"

	"github.com/gofiber/websocket/v2"
)

const maxStreamConnectionTime = 1 * time.Hour

func handleStreamError(ws *websocket.Conn, problem string, err string) {
	errors.HandleComplexError(problem, "ip: "+ws.RemoteAddr().String()+"; "+err)
}

// ClientStream pushes a user's events over a websocket until the client goes
// away. The read side only drains control frames.
func (s *Service) ClientStream(ws *websocket.Conn) {

	defer func() {
		if ws != nil && ws.Conn != nil {
			ws.Close()
		}
	}()

	userID := ws.Locals("userid").(string)

	subID, ch, err := s.Hub.Register(userID)
	if err != nil {
		handleStreamError(ws, "stream_register", err.Error())
		return
	}
	defer s.Hub.Unregister(subID)

	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			if err := ws.SetReadDeadline(time.Now().Add(maxStreamConnectionTime)); err != nil {
				return
			}
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case b, ok := <-ch:
			if !ok {
				return
			}
			if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
				handleStreamError(ws, "stream_write", err.Error())
				return
			}
		case <-done:
			return
		}
	}
}
