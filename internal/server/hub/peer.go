package hub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/docsync/pkg/api"
)

// peer одно WebSocket подключение
type peer struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	id        string
	userID    string
	opts      Options
	closeOnce sync.Once
}

func newPeer(conn *websocket.Conn, id, userID string, opts Options) *peer {
	return &peer{
		conn:   conn,
		send:   make(chan []byte, opts.SendBuffer),
		done:   make(chan struct{}),
		id:     id,
		userID: userID,
		opts:   opts,
	}
}

// enqueue ставит кадр в очередь отправки.
// Переполненная очередь закрывает подключение: участник получит init заново.
func (p *peer) enqueue(data []byte) bool {
	select {
	case <-p.done:
		return false
	default:
	}

	select {
	case p.send <- data:
		return true
	default:
		p.close()
		return false
	}
}

func (p *peer) sendError(message string) {
	data, err := api.Encode(api.Error{Message: message})
	if err != nil {
		return
	}
	p.enqueue(data)
}

func (p *peer) close() {
	p.closeOnce.Do(func() {
		close(p.done)
		_ = p.conn.Close()
	})
}

func (p *peer) closeWithMessage(code int, text string, timeout time.Duration) {
	_ = p.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text), time.Now().Add(timeout))
	p.close()
}

// writePump единственный писатель подключения
func (p *peer) writePump(logger *slog.Logger) {
	ping := time.NewTicker(p.opts.PongWait * 9 / 10)
	defer ping.Stop()
	defer p.close()

	for {
		select {
		case data := <-p.send:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.opts.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Debug("Write failed", "error", err)
				return
			}
		case <-ping.C:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.opts.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Debug("Ping failed", "error", err)
				return
			}
		case <-p.done:
			return
		}
	}
}

// readPump читает кадры до отключения. Ошибки протокола и приложения
// возвращаются участнику сообщением error, подключение остается открытым.
func (p *peer) readPump(ctx context.Context, rm *room, logger *slog.Logger) {
	p.conn.SetReadLimit(p.opts.MaxMessageSize)
	_ = p.conn.SetReadDeadline(time.Now().Add(p.opts.PongWait))
	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(p.opts.PongWait))
	})

	for {
		typ, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("Read failed", "error", err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		msg, err := api.Decode(data)
		if err != nil {
			logger.Warn("Invalid frame", "error", err)
			p.sendError(err.Error())
			continue
		}

		if err := p.handle(ctx, rm, msg); err != nil {
			logger.Warn("Message rejected", "type", msg.Type(), "error", err)
			p.sendError(err.Error())
		}
	}
}

// handle применяет сообщение участника
func (p *peer) handle(ctx context.Context, rm *room, msg api.Message) error {
	switch m := msg.(type) {
	case api.Update:
		if err := p.check(rm, m.UserID, m.DocumentID); err != nil {
			return err
		}
		return rm.update(ctx, p, m)
	case api.Cursor:
		if err := p.check(rm, m.UserID, m.DocumentID); err != nil {
			return err
		}
		return rm.cursor(ctx, p, m)
	default:
		return fmt.Errorf("unexpected %s message from client", msg.Type())
	}
}

// check сверяет идентификаторы сообщения с подключением
func (p *peer) check(rm *room, userID, documentID string) error {
	if userID != p.userID {
		return fmt.Errorf("user id %q does not match token", userID)
	}
	if documentID != rm.id {
		return fmt.Errorf("document id %q does not match channel", documentID)
	}
	return nil
}
