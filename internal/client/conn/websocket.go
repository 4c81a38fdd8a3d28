package conn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrHandshake сервер отклонил подключение
var ErrHandshake = errors.New("websocket handshake failed")

// WebSocketDialer открывает Channel поверх gorilla/websocket.
type WebSocketDialer struct {
	dialer       *websocket.Dialer
	writeTimeout time.Duration
}

// NewWebSocketDialer создает Dialer с таймаутом рукопожатия и записи.
func NewWebSocketDialer(handshakeTimeout, writeTimeout time.Duration) *WebSocketDialer {
	if handshakeTimeout <= 0 {
		handshakeTimeout = DefaultDialTimeout
	}
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &WebSocketDialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		writeTimeout: writeTimeout,
	}
}

// Dial подключается к target.Endpoint, передавая documentId и userId в query
// и токен в заголовке Authorization.
func (d *WebSocketDialer) Dial(ctx context.Context, target Target) (Channel, error) {
	endpoint, err := ChannelURL(target)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if target.Token != "" {
		header.Set("Authorization", "Bearer "+target.Token)
	}

	ws, resp, err := d.dialer.DialContext(ctx, endpoint, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%w: status %d", ErrHandshake, resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to dial %s: %w", target.Endpoint, err)
	}

	return &wsChannel{conn: ws, writeTimeout: d.writeTimeout}, nil
}

// ChannelURL строит адрес канала: http(s) заменяется на ws(s),
// documentId и userId добавляются в query.
func ChannelURL(target Target) (string, error) {
	u, err := url.Parse(target.Endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", target.Endpoint, err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("invalid endpoint %q: unsupported scheme %q", target.Endpoint, u.Scheme)
	}

	q := u.Query()
	q.Set("documentId", target.DocumentID)
	q.Set("userId", target.UserID)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

type wsChannel struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
	writeMu      sync.Mutex
	closeOnce    sync.Once
}

func (c *wsChannel) Send(ctx context.Context, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.writeTimeout)
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Receive блокируется до следующего кадра. Чтение прерывается только Close.
func (c *wsChannel) Receive(ctx context.Context) ([]byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil, ErrChannelClosed
			}
			return nil, fmt.Errorf("failed to read frame: %w", err)
		}
		if kind != websocket.TextMessage {
			continue
		}
		return data, nil
	}
}

func (c *wsChannel) Close() error {
	var err error
	c.closeOnce.Do(func() {
		// WriteControl допускает вызов параллельно с WriteMessage
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		err = c.conn.Close()
	})
	return err
}
