package conn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

// Manager держит одно соединение с сервером и переподключается
// после любого обрыва, пока не вызван Close.
type Manager struct {
	dialer   Dialer
	listener Listener
	logger   *slog.Logger
	backoff  backoff.BackOff

	ctx    context.Context
	cancel context.CancelFunc

	// текущее соединение
	ch       Channel
	out      chan []byte
	connDone chan struct{}
	timer    *time.Timer

	// очередь событий для Listener
	events []func()
	wake   chan struct{}
	done   chan struct{}

	lastErr error
	target  Target
	opts    Options
	gen     uint64
	state   models.ConnectionState
	mu      sync.Mutex
	opened  bool
	closed  bool
}

// NewManager создает менеджер. Соединение открывается вызовом Open.
func NewManager(dialer Dialer, listener Listener, opts Options, logger *slog.Logger) *Manager {
	opts = opts.withDefaults()
	return &Manager{
		dialer:   dialer,
		listener: listener,
		logger:   logger,
		opts:     opts,
		backoff:  backoff.NewConstantBackOff(opts.ReconnectInterval),
		state:    models.Disconnected,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Open начинает подключение к target. Не блокируется до установки соединения:
// результат сообщается через Listener.
func (m *Manager) Open(ctx context.Context, target Target) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.opened {
		return ErrAlreadyOpen
	}
	m.opened = true
	m.target = target
	m.ctx, m.cancel = context.WithCancel(ctx)

	go m.dispatch()

	m.logger.Info("Opening sync channel",
		"endpoint", target.Endpoint,
		"document_id", target.DocumentID,
		"user_id", target.UserID)

	m.connectLocked()
	return nil
}

// Send отправляет сообщение, если соединение установлено.
// Без соединения сообщение отбрасывается и не ставится в очередь.
func (m *Manager) Send(msg api.Message) bool {
	data, err := api.Encode(msg)
	if err != nil {
		m.logger.Error("Failed to encode message", "type", msg.Type(), "error", err)
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != models.Connected || m.out == nil {
		m.logger.Debug("Message dropped, not connected", "type", msg.Type(), "state", m.state.String())
		return false
	}

	select {
	case m.out <- data:
		return true
	default:
		m.logger.Warn("Send buffer full, message dropped", "type", msg.Type())
		return false
	}
}

// State возвращает текущее состояние соединения.
func (m *Manager) State() models.ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err возвращает последнюю ошибку протокола, nil если ошибки не было.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// ClearErr сбрасывает флаг ошибки протокола.
func (m *Manager) ClearErr() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = nil
}

// Close закрывает соединение и отменяет запланированное переподключение.
// Повторные вызовы ничего не делают.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	m.gen++

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.cancel != nil {
		m.cancel()
	}

	var err error
	if m.ch != nil {
		err = m.ch.Close()
		m.releaseLocked()
	}
	m.setStateLocked(models.Disconnected)
	close(m.done)

	m.logger.Info("Sync channel closed", "document_id", m.target.DocumentID)

	if err != nil {
		return fmt.Errorf("failed to close channel: %w", err)
	}
	return nil
}

func (m *Manager) connectLocked() {
	m.gen++
	gen := m.gen
	m.setStateLocked(models.Connecting)
	go m.dial(gen, m.target)
}

func (m *Manager) dial(gen uint64, target Target) {
	ctx, cancel := context.WithTimeout(m.ctx, m.opts.DialTimeout)
	defer cancel()

	ch, err := m.dialer.Dial(ctx, target)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || gen != m.gen {
		if ch != nil {
			_ = ch.Close()
		}
		return
	}

	if err != nil {
		m.logger.Warn("Failed to open sync channel", "endpoint", target.Endpoint, "error", err)
		m.dropLocked()
		return
	}

	m.ch = ch
	m.out = make(chan []byte, m.opts.SendBuffer)
	m.connDone = make(chan struct{})
	m.setStateLocked(models.Connected)
	m.emit(m.listener.OnOpen)

	m.logger.Info("Sync channel connected", "document_id", target.DocumentID)

	go m.readLoop(gen, ch, m.connDone)
	go m.writeLoop(gen, ch, m.out, m.connDone)
}

func (m *Manager) readLoop(gen uint64, ch Channel, stop <-chan struct{}) {
	for {
		data, err := ch.Receive(m.ctx)
		if err != nil {
			m.lost(gen, err)
			return
		}

		msg, err := api.Decode(data)
		if err != nil {
			m.protocolError(gen, err)
			continue
		}

		select {
		case <-stop:
			return
		default:
		}
		m.mu.Lock()
		if gen == m.gen && !m.closed {
			m.emit(func() { m.listener.OnMessage(msg) })
		}
		m.mu.Unlock()
	}
}

func (m *Manager) writeLoop(gen uint64, ch Channel, out <-chan []byte, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-m.ctx.Done():
			return
		case data := <-out:
			ctx, cancel := context.WithTimeout(m.ctx, m.opts.WriteTimeout)
			err := ch.Send(ctx, data)
			cancel()
			if err != nil {
				m.lost(gen, err)
				return
			}
		}
	}
}

func (m *Manager) protocolError(gen uint64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen || m.closed {
		return
	}
	m.lastErr = err
	m.logger.Warn("Malformed message received", "error", err)
	m.emit(func() { m.listener.OnProtocolError(err) })
}

// lost обрабатывает обрыв соединения поколения gen
func (m *Manager) lost(gen uint64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen || m.closed {
		return
	}

	if errors.Is(err, context.Canceled) {
		m.logger.Debug("Sync channel read cancelled")
	} else {
		m.logger.Warn("Sync channel lost", "document_id", m.target.DocumentID, "error", err)
	}

	_ = m.ch.Close()
	m.releaseLocked()
	m.dropLocked()
}

// dropLocked переводит менеджер в Disconnected → Reconnecting и планирует повтор
func (m *Manager) dropLocked() {
	m.gen++
	m.setStateLocked(models.Disconnected)
	m.setStateLocked(models.Reconnecting)

	m.timer = time.AfterFunc(m.backoff.NextBackOff(), m.reconnect)
}

func (m *Manager) reconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.timer = nil
	m.connectLocked()
}

func (m *Manager) releaseLocked() {
	m.ch = nil
	m.out = nil
	if m.connDone != nil {
		close(m.connDone)
		m.connDone = nil
	}
}

func (m *Manager) setStateLocked(state models.ConnectionState) {
	if m.state == state {
		return
	}
	m.state = state
	m.logger.Debug("Connection state changed", "state", state.String())
	m.emit(func() { m.listener.OnStateChange(state) })
}

// emit ставит событие в очередь, вызывается под мьютексом
func (m *Manager) emit(fn func()) {
	m.events = append(m.events, fn)
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *Manager) dispatch() {
	for {
		select {
		case <-m.wake:
			m.drain()
		case <-m.done:
			m.drain()
			return
		}
	}
}

func (m *Manager) drain() {
	for {
		m.mu.Lock()
		if len(m.events) == 0 {
			m.mu.Unlock()
			return
		}
		events := m.events
		m.events = nil
		m.mu.Unlock()

		for _, fn := range events {
			fn()
		}
	}
}
