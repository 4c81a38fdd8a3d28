package broker

import (
	"context"
	"log/slog"
	"sync"
)

// Local брокер внутри одного процесса
type Local struct {
	logger *slog.Logger
	subs   map[string]map[*localSub]struct{}
	buffer int
	mu     sync.RWMutex
	closed bool
}

var _ Broker = (*Local)(nil)

// NewLocal создает брокер в памяти процесса
func NewLocal(logger *slog.Logger) *Local {
	return &Local{
		logger: logger,
		subs:   make(map[string]map[*localSub]struct{}),
		buffer: DefaultBuffer,
	}
}

// Publish доставляет сообщение всем подписчикам документа.
// Переполненный подписчик пропускает сообщение.
func (b *Local) Publish(ctx context.Context, documentID string, env Envelope) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}

	for sub := range b.subs[documentID] {
		select {
		case sub.ch <- env:
		default:
			b.logger.Warn("Subscriber buffer full, message dropped", "document_id", documentID)
		}
	}
	return nil
}

func (b *Local) Subscribe(ctx context.Context, documentID string) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	sub := &localSub{
		broker:     b,
		documentID: documentID,
		ch:         make(chan Envelope, b.buffer),
	}
	if b.subs[documentID] == nil {
		b.subs[documentID] = make(map[*localSub]struct{})
	}
	b.subs[documentID][sub] = struct{}{}
	return sub, nil
}

// Close закрывает все подписки
func (b *Local) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for _, subs := range b.subs {
		for sub := range subs {
			close(sub.ch)
		}
	}
	b.subs = nil
	return nil
}

func (b *Local) remove(sub *localSub) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subs[sub.documentID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.subs, sub.documentID)
	}
	close(sub.ch)
}

type localSub struct {
	broker     *Local
	ch         chan Envelope
	documentID string
}

func (s *localSub) Messages() <-chan Envelope {
	return s.ch
}

func (s *localSub) Close() error {
	s.broker.remove(s)
	return nil
}
