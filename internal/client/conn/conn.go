// Package conn управляет жизненным циклом канала синхронизации:
// подключение, переподключение с фиксированным интервалом, отправка и прием сообщений.
package conn

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

//go:generate moq -out listener_mock.go . Listener

var (
	// ErrClosed менеджер закрыт
	ErrClosed = errors.New("connection manager closed")

	// ErrAlreadyOpen Open вызван повторно
	ErrAlreadyOpen = errors.New("connection manager already open")

	// ErrChannelClosed канал закрыт
	ErrChannelClosed = errors.New("channel closed")
)

const (
	DefaultReconnectInterval = 3 * time.Second
	DefaultDialTimeout       = 10 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultSendBuffer        = 64
)

// Target адрес канала и идентификация участника
type Target struct {
	Endpoint   string
	DocumentID string
	UserID     string
	Token      string
}

// Channel двунаправленный канал сообщений (один кадр = одно сообщение).
type Channel interface {
	Send(ctx context.Context, data []byte) error
	Receive(ctx context.Context) ([]byte, error)
	Close() error
}

// Dialer открывает Channel к Target.
type Dialer interface {
	Dial(ctx context.Context, target Target) (Channel, error)
}

// Listener получает события менеджера. Вызовы выполняются последовательно
// в отдельной горутине, в порядке возникновения событий.
type Listener interface {
	OnOpen()
	OnMessage(msg api.Message)
	OnProtocolError(err error)
	OnStateChange(state models.ConnectionState)
}

// Options параметры менеджера, нулевые значения заменяются значениями по умолчанию.
type Options struct {
	ReconnectInterval time.Duration
	DialTimeout       time.Duration
	WriteTimeout      time.Duration
	SendBuffer        int
}

func (o Options) withDefaults() Options {
	if o.ReconnectInterval <= 0 {
		o.ReconnectInterval = DefaultReconnectInterval
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = DefaultDialTimeout
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultWriteTimeout
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = DefaultSendBuffer
	}
	return o
}
