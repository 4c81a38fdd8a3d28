// Package broker доставляет сообщения документа всем экземплярам сервера,
// обслуживающим этот документ.
package broker

import (
	"context"
	"errors"
)

// DefaultBuffer размер буфера подписки
const DefaultBuffer = 256

// ErrClosed брокер закрыт
var ErrClosed = errors.New("broker closed")

// Envelope сообщение документа с идентификатором отправителя.
// Origin позволяет не возвращать сообщение его автору.
type Envelope struct {
	Origin  string `json:"origin"`
	Payload []byte `json:"payload"`
}

// Subscription подписка на сообщения одного документа.
// Канал Messages закрывается после Close.
type Subscription interface {
	Messages() <-chan Envelope
	Close() error
}

// Broker публикация и подписка по документам.
// Сообщения одного издателя доставляются в порядке публикации.
type Broker interface {
	Publish(ctx context.Context, documentID string, env Envelope) error
	Subscribe(ctx context.Context, documentID string) (Subscription, error)
	Close() error
}
