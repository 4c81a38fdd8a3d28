// Package hub обслуживает WebSocket каналы синхронизации документов.
//
// Участники одного документа объединены в комнату. Комната подписана на
// брокер, через который идут все сообщения документа, в том числе от
// участников этого же экземпляра сервера.
package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/iudanet/docsync/internal/server/broker"
	"github.com/iudanet/docsync/internal/server/storage"
)

const (
	DefaultSendBuffer     = 64
	DefaultWriteTimeout   = 10 * time.Second
	DefaultPongWait       = 60 * time.Second
	DefaultMaxMessageSize = 4 << 20
)

// ErrClosed hub закрыт
var ErrClosed = errors.New("hub closed")

// Options параметры hub, нулевые значения заменяются значениями по умолчанию
type Options struct {
	SendBuffer     int
	WriteTimeout   time.Duration
	PongWait       time.Duration
	MaxMessageSize int64
	CheckOrigin    func(r *http.Request) bool
}

func (o Options) withDefaults() Options {
	if o.SendBuffer <= 0 {
		o.SendBuffer = DefaultSendBuffer
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultWriteTimeout
	}
	if o.PongWait <= 0 {
		o.PongWait = DefaultPongWait
	}
	if o.MaxMessageSize <= 0 {
		o.MaxMessageSize = DefaultMaxMessageSize
	}
	return o
}

// Hub комнаты документов одного экземпляра сервера
type Hub struct {
	docs     storage.DocumentStorage
	broker   broker.Broker
	logger   *slog.Logger
	upgrader websocket.Upgrader
	rooms    map[string]*room
	opts     Options
	wg       sync.WaitGroup
	mu       sync.Mutex
	closed   bool
}

// New создает hub
func New(docs storage.DocumentStorage, b broker.Broker, logger *slog.Logger, opts Options) *Hub {
	opts = opts.withDefaults()
	return &Hub{
		docs:   docs,
		broker: b,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     opts.CheckOrigin,
		},
		rooms: make(map[string]*room),
		opts:  opts,
	}
}

// Serve переводит запрос в WebSocket и обслуживает участника до отключения.
// Идентификаторы документа и пользователя уже проверены вызывающей стороной.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, documentID, userID string) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "document_id", documentID, "error", err)
		return
	}

	p := newPeer(ws, uuid.New().String(), userID, h.opts)
	logger := h.logger.With("document_id", documentID, "user_id", userID, "peer_id", p.id)

	ctx := r.Context()

	rm, err := h.join(ctx, documentID, p)
	if err != nil {
		logger.Error("Failed to join room", "error", err)
		p.closeWithMessage(websocket.CloseInternalServerErr, "join failed", h.opts.WriteTimeout)
		return
	}
	defer h.leave(rm, p)

	if err := rm.sendInit(ctx, p); err != nil {
		logger.Error("Failed to load document", "error", err)
		p.closeWithMessage(websocket.CloseInternalServerErr, "load failed", h.opts.WriteTimeout)
		return
	}

	logger.Info("Peer joined")
	go p.writePump(logger)
	p.readPump(ctx, rm, logger)
	logger.Info("Peer left")
}

// join добавляет участника в комнату документа, создавая ее при необходимости
func (h *Hub) join(ctx context.Context, documentID string, p *peer) (*room, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrClosed
	}

	rm, ok := h.rooms[documentID]
	if !ok {
		sub, err := h.broker.Subscribe(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("failed to subscribe: %w", err)
		}
		rm = newRoom(documentID, h, sub)
		h.rooms[documentID] = rm

		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			rm.run()
		}()
	}

	rm.add(p)
	return rm, nil
}

// leave удаляет участника, последняя комната закрывает подписку
func (h *Hub) leave(rm *room, p *peer) {
	p.close()

	h.mu.Lock()
	defer h.mu.Unlock()

	if rm.remove(p) > 0 {
		return
	}
	if h.rooms[rm.id] == rm {
		delete(h.rooms, rm.id)
	}
	if err := rm.sub.Close(); err != nil {
		h.logger.Warn("Failed to close subscription", "document_id", rm.id, "error", err)
	}
}

// Rooms количество открытых комнат
func (h *Hub) Rooms() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}

// Peers количество участников документа на этом экземпляре
func (h *Hub) Peers(documentID string) int {
	h.mu.Lock()
	rm, ok := h.rooms[documentID]
	h.mu.Unlock()
	if !ok {
		return 0
	}
	return rm.size()
}

// Close отключает всех участников и ждет завершения комнат
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	var peers []*peer
	for _, rm := range h.rooms {
		peers = append(peers, rm.list("")...)
	}
	h.mu.Unlock()

	for _, p := range peers {
		p.closeWithMessage(websocket.CloseGoingAway, "server shutdown", h.opts.WriteTimeout)
	}
	h.wg.Wait()
	return nil
}
