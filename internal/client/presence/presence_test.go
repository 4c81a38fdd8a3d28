package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

func newSender(state models.ConnectionState) *SenderMock {
	return &SenderMock{
		StateFunc: func() models.ConnectionState { return state },
		SendFunc:  func(msg api.Message) bool { return true },
	}
}

func TestBroadcaster_Move(t *testing.T) {
	tests := []struct {
		name      string
		state     models.ConnectionState
		wantSent  bool
		wantCalls int
	}{
		{name: "connected", state: models.Connected, wantSent: true, wantCalls: 1},
		{name: "connecting", state: models.Connecting},
		{name: "reconnecting", state: models.Reconnecting},
		{name: "disconnected", state: models.Disconnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := newSender(tt.state)
			b := New("me", "doc1", sender, nil, Options{})

			assert.Equal(t, tt.wantSent, b.Move(42))
			require.Len(t, sender.SendCalls(), tt.wantCalls)

			if tt.wantCalls > 0 {
				assert.Equal(t, api.Cursor{Position: 42, UserID: "me", DocumentID: "doc1"}, sender.SendCalls()[0].Msg)
			}
		})
	}
}

func TestBroadcaster_MoveIsNotDebounced(t *testing.T) {
	sender := newSender(models.Connected)
	b := New("me", "doc1", sender, nil, Options{})

	for i := 0; i < 5; i++ {
		b.Move(i)
	}
	assert.Len(t, sender.SendCalls(), 5)
}

func TestBroadcaster_Receive(t *testing.T) {
	overlay := &OverlayMock{RenderFunc: func(map[string]int) {}}
	b := New("me", "doc1", newSender(models.Connected), overlay, Options{})

	assert.True(t, b.Receive(api.Cursor{UserID: "alice", DocumentID: "doc1", Position: 3}))
	assert.True(t, b.Receive(api.Cursor{UserID: "bob", DocumentID: "doc1", Position: 7}))
	assert.True(t, b.Receive(api.Cursor{UserID: "alice", DocumentID: "doc1", Position: 5}))

	calls := overlay.RenderCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, map[string]int{"alice": 5, "bob": 7}, calls[2].Positions)
	assert.Equal(t, map[string]int{"alice": 5, "bob": 7}, b.Positions())
	assert.Len(t, b.Entries(), 2)
}

func TestBroadcaster_ReceiveIgnoresSelfAndForeignDocs(t *testing.T) {
	overlay := &OverlayMock{RenderFunc: func(map[string]int) {}}
	b := New("me", "doc1", newSender(models.Connected), overlay, Options{})

	assert.False(t, b.Receive(api.Cursor{UserID: "me", DocumentID: "doc1", Position: 1}))
	assert.False(t, b.Receive(api.Cursor{UserID: "alice", DocumentID: "doc2", Position: 1}))

	assert.Empty(t, overlay.RenderCalls())
	assert.Empty(t, b.Entries())
}

func TestBroadcaster_RenderGetsCopy(t *testing.T) {
	var rendered map[string]int
	overlay := &OverlayMock{RenderFunc: func(p map[string]int) { rendered = p }}
	b := New("me", "doc1", newSender(models.Connected), overlay, Options{})

	b.Receive(api.Cursor{UserID: "alice", DocumentID: "doc1", Position: 3})
	rendered["alice"] = 100

	assert.Equal(t, 3, b.Positions()["alice"])
}

func TestBroadcaster_EntriesKeptWithoutTTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := New("me", "doc1", newSender(models.Connected), nil, Options{
		Now: func() time.Time { return now },
	})

	b.Receive(api.Cursor{UserID: "alice", DocumentID: "doc1", Position: 1})
	now = now.Add(24 * time.Hour)
	b.Receive(api.Cursor{UserID: "bob", DocumentID: "doc1", Position: 2})

	assert.Len(t, b.Entries(), 2)
}

func TestBroadcaster_TTLPrunes(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	overlay := &OverlayMock{RenderFunc: func(map[string]int) {}}
	b := New("me", "doc1", newSender(models.Connected), overlay, Options{
		TTL: time.Minute,
		Now: func() time.Time { return now },
	})

	b.Receive(api.Cursor{UserID: "alice", DocumentID: "doc1", Position: 1})
	now = now.Add(2 * time.Minute)
	b.Receive(api.Cursor{UserID: "bob", DocumentID: "doc1", Position: 2})

	calls := overlay.RenderCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, map[string]int{"bob": 2}, calls[1].Positions)

	entry, ok := b.Entries()["bob"]
	require.True(t, ok)
	assert.Equal(t, now, entry.SeenAt)
}

func TestBroadcaster_Reset(t *testing.T) {
	overlay := &OverlayMock{RenderFunc: func(map[string]int) {}}
	b := New("me", "doc1", newSender(models.Connected), overlay, Options{})

	b.Receive(api.Cursor{UserID: "alice", DocumentID: "doc1", Position: 1})
	b.Reset()

	assert.Empty(t, b.Entries())
	calls := overlay.RenderCalls()
	require.Len(t, calls, 2)
	assert.Empty(t, calls[1].Positions)
}
