package cli

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/auth"
	"github.com/iudanet/docsync/internal/client/conn"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

// fakeChannel канал, который сразу отдает init
type fakeChannel struct {
	inbound chan []byte
	closed  chan struct{}
	once    sync.Once
}

func (c *fakeChannel) Send(ctx context.Context, data []byte) error {
	select {
	case <-c.closed:
		return conn.ErrChannelClosed
	default:
		return nil
	}
}

func (c *fakeChannel) Receive(ctx context.Context) ([]byte, error) {
	select {
	case data := <-c.inbound:
		return data, nil
	case <-c.closed:
		return nil, conn.ErrChannelClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *fakeChannel) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

type fakeDialer struct {
	err     error
	init    string
	targets []conn.Target
	mu      sync.Mutex
}

func (d *fakeDialer) Dial(ctx context.Context, target conn.Target) (conn.Channel, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targets = append(d.targets, target)
	if d.err != nil {
		return nil, d.err
	}
	ch := &fakeChannel{inbound: make(chan []byte, 1), closed: make(chan struct{})}
	ch.inbound <- []byte(`{"type":"init","content":"` + d.init + `"}`)
	return ch, nil
}

type openHarness struct {
	snapshots *storage.SnapshotStorageMock
	metadata  *storage.MetadataStorageMock
	dialer    *fakeDialer
	io        *testIO
	cli       *Cli

	mu    sync.Mutex
	saved []*models.Snapshot
}

func newOpenHarness(dialer *fakeDialer, inputs ...string) *openHarness {
	h := &openHarness{dialer: dialer, io: newTestIO(inputs...)}
	h.snapshots = &storage.SnapshotStorageMock{
		GetSnapshotFunc: func(ctx context.Context, documentID string) (*models.Snapshot, error) {
			return nil, storage.ErrSnapshotNotFound
		},
		SaveSnapshotFunc: func(ctx context.Context, snapshot *models.Snapshot) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.saved = append(h.saved, snapshot)
			return nil
		},
	}
	h.metadata = &storage.MetadataStorageMock{
		GetClockFunc:  func(ctx context.Context) (int64, error) { return 40, nil },
		SaveClockFunc: func(ctx context.Context, value int64) error { return nil },
	}
	h.cli = New(h.io, loggedIn(), &DocumentClientMock{}, h.snapshots, h.metadata, dialer, testLogger(), Options{
		DebounceDelay:     time.Hour,
		ReconnectInterval: 20 * time.Millisecond,
		InitTimeout:       2 * time.Second,
	})
	return h
}

func (h *openHarness) lastSaved() *models.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.saved) == 0 {
		return nil
	}
	return h.saved[len(h.saved)-1]
}

func TestRunOpen_EditSession(t *testing.T) {
	dialer := &fakeDialer{init: "first"}
	h := newOpenHarness(dialer, "second", ":show", ":undo", ":redo", ":undo", ":undo", ":cursor 4", ":bogus", ":quit", "never read")

	require.NoError(t, h.cli.Run(context.Background(), "open", []string{"notes"}))

	require.NotEmpty(t, dialer.targets)
	target := dialer.targets[0]
	assert.Equal(t, "http://localhost:8080/api/v1/ws", target.Endpoint)
	assert.Equal(t, "notes", target.DocumentID)
	assert.Equal(t, "user-1", target.UserID)
	assert.Equal(t, "jwt", target.Token)

	out := h.io.output()
	assert.Contains(t, out, "[live, connected]")
	assert.Contains(t, out, "   1 | first\n   2 | second\n")
	assert.Contains(t, out, "Nothing to undo.")
	assert.Contains(t, out, "Unknown command :bogus")
	assert.NotContains(t, out, "Not connected")
	assert.NotContains(t, out, "Last protocol error")

	// после redo и двух undo в документе снова только первая строка
	snap := h.lastSaved()
	require.NotNil(t, snap)
	assert.Equal(t, "notes", snap.DocumentID)
	assert.Equal(t, "first", snap.Content)

	// часы продолжают сохраненное значение
	calls := h.metadata.SaveClockCalls()
	require.Len(t, calls, 1)
	assert.Greater(t, calls[0].Value, int64(40))
	assert.Equal(t, snap.Revision, calls[0].Value)

	// ввод после :quit не читается
	assert.Len(t, h.io.ReadInputCalls(), 9)
}

func TestRunOpen_Offline(t *testing.T) {
	dialer := &fakeDialer{err: errors.New("connection refused")}
	h := newOpenHarness(dialer, "hello", ":undo")
	h.cli.opts.InitTimeout = 50 * time.Millisecond

	require.NoError(t, h.cli.Run(context.Background(), "open", []string{"notes"}))

	out := h.io.output()
	assert.Contains(t, out, "Server unavailable")
	assert.Contains(t, out, "read-only")
	assert.Contains(t, out, "Nothing to undo.")
	assert.Nil(t, h.lastSaved())
}

func TestRunOpen_NotLoggedIn(t *testing.T) {
	h := newOpenHarness(&fakeDialer{})
	h.cli.auth = &auth.ServiceMock{
		CurrentFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, auth.ErrNotLoggedIn
		},
	}

	err := h.cli.Run(context.Background(), "open", []string{"notes"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, h.dialer.targets)
}

func TestScrollEvent(t *testing.T) {
	down := scrollEvent(true, 100)
	assert.Equal(t, 24*lineHeight, down.ViewportHeight)
	assert.Equal(t, 100*lineHeight, down.ContentHeight)
	assert.Equal(t, down.ContentHeight-down.ViewportHeight, down.Offset)

	up := scrollEvent(false, 10)
	assert.Equal(t, 0, up.Offset)
	assert.Equal(t, 10*lineHeight, up.ViewportHeight)
}
