package ws

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/kiryu-dev/heckmeck/pkg/utils"
	"github.com/pkg/errors"
)

type client struct {
	conn *websocket.Conn
}

func newClient(conn *websocket.Conn) client {
	return client{conn: conn}
}

func (c client) WriteMessage(msg domain.Message) error {
	data, err := utils.MarshalJson(msg)
	if err != nil {
		return errors.WithMessage(err, "encode feed message")
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return errors.WithMessage(err, "set write deadline")
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return errors.WithMessage(err, "websocket conn write message")
	}
	return nil
}

// WaitClosed drains whatever the watcher sends and reports when the connection ends.
func (c client) WaitClosed() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.conn.NextReader(); err != nil {
				return
			}
		}
	}()
	return done
}

func (c client) Close() {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "feed closed")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
	_ = c.conn.Close()
}
