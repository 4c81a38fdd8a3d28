package hub

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/iudanet/docsync/internal/server/broker"
	"github.com/iudanet/docsync/internal/server/storage"
	"github.com/iudanet/docsync/pkg/api"
)

// room участники одного документа на этом экземпляре
type room struct {
	hub   *Hub
	sub   broker.Subscription
	peers map[string]*peer
	id    string

	mu sync.Mutex
	// сохранение и публикация одного документа выполняются по очереди,
	// порядок в хранилище совпадает с порядком рассылки
	saveMu sync.Mutex
}

func newRoom(documentID string, h *Hub, sub broker.Subscription) *room {
	return &room{
		hub:   h,
		sub:   sub,
		peers: make(map[string]*peer),
		id:    documentID,
	}
}

// run рассылает сообщения брокера всем участникам, кроме автора
func (r *room) run() {
	logger := r.hub.logger.With("document_id", r.id)
	for env := range r.sub.Messages() {
		for _, p := range r.list(env.Origin) {
			if !p.enqueue(env.Payload) {
				logger.Warn("Slow peer dropped", "peer_id", p.id, "user_id", p.userID)
			}
		}
	}
	logger.Debug("Room closed")
}

func (r *room) add(p *peer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peers[p.id] = p
}

// remove возвращает число оставшихся участников
func (r *room) remove(p *peer) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.peers, p.id)
	return len(r.peers)
}

func (r *room) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.peers)
}

// list участники комнаты, кроме exclude
func (r *room) list(exclude string) []*peer {
	r.mu.Lock()
	defer r.mu.Unlock()

	peers := make([]*peer, 0, len(r.peers))
	for id, p := range r.peers {
		if id != exclude {
			peers = append(peers, p)
		}
	}
	return peers
}

// sendInit ставит в очередь участника init с сохраненным содержимым.
// Несохраненный документ пустой. Загрузка и постановка в очередь идут под saveMu:
// обновление, сохраненное до загрузки, уже есть в init, а более позднее
// попадет в очередь участника после init.
func (r *room) sendInit(ctx context.Context, p *peer) error {
	msg := api.Init{}

	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	doc, err := r.hub.docs.LoadDocument(ctx, r.id)
	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
	case err != nil:
		return err
	default:
		msg.Content = doc.Content
		msg.Revision = doc.Revision
	}

	data, err := api.Encode(msg)
	if err != nil {
		return err
	}
	if !p.enqueue(data) {
		return fmt.Errorf("peer %s closed before init", p.id)
	}
	return nil
}

// update сохраняет документ и рассылает обновление остальным участникам
func (r *room) update(ctx context.Context, p *peer, m api.Update) error {
	data, err := api.Encode(m)
	if err != nil {
		return err
	}

	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	if _, err := r.hub.docs.SaveDocument(ctx, r.id, m.Content, m.UserID); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	if err := r.hub.broker.Publish(ctx, r.id, broker.Envelope{Origin: p.id, Payload: data}); err != nil {
		return fmt.Errorf("failed to publish update: %w", err)
	}
	return nil
}

// cursor рассылает позицию курсора без сохранения
func (r *room) cursor(ctx context.Context, p *peer, m api.Cursor) error {
	data, err := api.Encode(m)
	if err != nil {
		return err
	}
	if err := r.hub.broker.Publish(ctx, r.id, broker.Envelope{Origin: p.id, Payload: data}); err != nil {
		return fmt.Errorf("failed to publish cursor: %w", err)
	}
	return nil
}
