// Package presence рассылает позицию курсора и отображает курсоры других участников.
package presence

import (
	"maps"
	"sync"
	"time"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

//go:generate moq -out sender_mock.go . Sender
//go:generate moq -out overlay_mock.go . Overlay

// Sender канал отправки сообщений (Connection Manager).
type Sender interface {
	State() models.ConnectionState
	Send(msg api.Message) bool
}

// Overlay слой отображения курсоров участников.
type Overlay interface {
	Render(positions map[string]int)
}

// Options параметры присутствия.
// TTL > 0 включает удаление записей участников, молчащих дольше TTL.
type Options struct {
	Now func() time.Time
	TTL time.Duration
}

// Broadcaster отслеживает позиции курсоров участников документа.
type Broadcaster struct {
	sender     Sender
	overlay    Overlay
	entries    map[string]models.PresenceEntry
	now        func() time.Time
	userID     string
	documentID string
	ttl        time.Duration
	mu         sync.Mutex
}

// New создает Broadcaster для участника userID в документе documentID.
func New(userID, documentID string, sender Sender, overlay Overlay, opts Options) *Broadcaster {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Broadcaster{
		sender:     sender,
		overlay:    overlay,
		entries:    make(map[string]models.PresenceEntry),
		now:        now,
		userID:     userID,
		documentID: documentID,
		ttl:        opts.TTL,
	}
}

// Move отправляет позицию своего курсора. Без соединения позиция не отправляется.
func (b *Broadcaster) Move(position int) bool {
	if b.sender.State() != models.Connected {
		return false
	}
	return b.sender.Send(api.Cursor{
		Position:   position,
		UserID:     b.userID,
		DocumentID: b.documentID,
	})
}

// Receive применяет позицию курсора другого участника и перерисовывает слой.
// Собственное эхо и курсоры из других документов игнорируются.
func (b *Broadcaster) Receive(c api.Cursor) bool {
	if c.UserID == b.userID {
		return false
	}
	if c.DocumentID != "" && c.DocumentID != b.documentID {
		return false
	}

	b.mu.Lock()
	now := b.now()
	b.entries[c.UserID] = models.PresenceEntry{
		UserID:   c.UserID,
		Position: c.Position,
		SeenAt:   now,
	}
	b.pruneLocked(now)
	positions := b.positionsLocked()
	b.mu.Unlock()

	if b.overlay != nil {
		b.overlay.Render(positions)
	}
	return true
}

// Entries возвращает копию записей присутствия.
func (b *Broadcaster) Entries() map[string]models.PresenceEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return maps.Clone(b.entries)
}

// Positions возвращает копию отображения userID → позиция.
func (b *Broadcaster) Positions() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.positionsLocked()
}

// Reset очищает записи и перерисовывает пустой слой.
func (b *Broadcaster) Reset() {
	b.mu.Lock()
	clear(b.entries)
	b.mu.Unlock()

	if b.overlay != nil {
		b.overlay.Render(map[string]int{})
	}
}

func (b *Broadcaster) pruneLocked(now time.Time) {
	if b.ttl <= 0 {
		return
	}
	for id, e := range b.entries {
		if now.Sub(e.SeenAt) > b.ttl {
			delete(b.entries, id)
		}
	}
}

func (b *Broadcaster) positionsLocked() map[string]int {
	out := make(map[string]int, len(b.entries))
	for id, e := range b.entries {
		out[id] = e.Position
	}
	return out
}
