// Package session связывает поверхность редактирования, историю, присутствие
// и канал синхронизации одного документа.
//
// Все изменения состояния выполняются в одной горутине цикла событий:
// уведомления редактора, undo/redo, входящие сообщения, события соединения
// и срабатывания debounce передаются туда замыканиями.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/docsync/internal/client/conn"
	"github.com/iudanet/docsync/internal/client/debounce"
	"github.com/iudanet/docsync/internal/client/history"
	"github.com/iudanet/docsync/internal/client/presence"
	"github.com/iudanet/docsync/internal/client/viewport"
	"github.com/iudanet/docsync/internal/clock"
	"github.com/iudanet/docsync/internal/models"
)

// Phase фаза жизненного цикла сессии
type Phase int

const (
	Initializing Phase = iota // редактор только для чтения до первого init
	Live
	Closed
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Live:
		return "live"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Config параметры сессии
type Config struct {
	Endpoint          string
	DocumentID        string
	UserID            string
	Token             string
	Viewport          viewport.Options
	DebounceDelay     time.Duration
	ReconnectInterval time.Duration
	PresenceTTL       time.Duration
	HistoryLimit      int
	InitialClock      int64 // последнее сохраненное значение часов Лэмпорта
}

// Dependencies внешние зависимости сессии. Cache и Overlay необязательны.
type Dependencies struct {
	Dialer   conn.Dialer
	Editor   Editor
	Overlay  Overlay
	Listener Listener
	Cache    SnapshotCache
	Logger   *slog.Logger
}

// Session экземпляр синхронизации одного документа одним участником.
type Session struct {
	ctx      context.Context
	editor   Editor
	listener Listener
	cache    SnapshotCache
	logger   *slog.Logger

	manager   *conn.Manager
	debouncer *debounce.Debouncer
	history   *history.History
	presence  *presence.Broadcaster
	window    *viewport.Window
	clock     *clock.Lamport

	// очередь цикла событий
	jobs    []func()
	wake    chan struct{}
	quit    chan struct{}
	stopped chan struct{}

	cfg   Config
	state models.DocumentState
	phase Phase

	mu        sync.Mutex
	startOnce sync.Once
	closeOnce sync.Once
	closed    bool
}

// New создает сессию и запускает ее цикл событий.
// Соединение открывается в Start, ресурсы освобождает Close.
func New(cfg Config, deps Dependencies) *Session {
	// у каждого экземпляра сессии свой узел часов, его id различает
	// несколько сессий одного пользователя в логах
	lamport := clock.New()
	s := &Session{
		editor:   deps.Editor,
		listener: deps.Listener,
		cache:    deps.Cache,
		logger: deps.Logger.With(
			"document_id", cfg.DocumentID,
			"user_id", cfg.UserID,
			"session_id", lamport.NodeID(),
		),
		history: history.New(cfg.HistoryLimit),
		window:  viewport.New(cfg.Viewport),
		clock:   lamport,
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
		cfg:     cfg,
		phase:   Initializing,
	}

	s.clock.Reset(cfg.InitialClock)

	s.manager = conn.NewManager(deps.Dialer, connEvents{s}, conn.Options{
		ReconnectInterval: cfg.ReconnectInterval,
	}, s.logger)
	s.debouncer = debounce.New(cfg.DebounceDelay, func(content string) {
		s.post(func() { s.broadcast(content) })
	})

	s.presence = presence.New(cfg.UserID, cfg.DocumentID, s.manager, deps.Overlay, presence.Options{
		TTL: cfg.PresenceTTL,
	})

	go s.run()
	return s
}

// Start запускает цикл событий и подключение к серверу.
// Редактор остается только для чтения до получения init.
func (s *Session) Start(ctx context.Context) error {
	err := ErrAlreadyStarted
	s.startOnce.Do(func() {
		err = nil
		s.ctx = ctx

		if !s.post(func() {
			s.editor.SetReadOnly(true)
			s.restoreSnapshot(ctx)
		}) {
			err = ErrClosed
			return
		}

		if openErr := s.manager.Open(ctx, conn.Target{
			Endpoint:   s.cfg.Endpoint,
			DocumentID: s.cfg.DocumentID,
			UserID:     s.cfg.UserID,
			Token:      s.cfg.Token,
		}); openErr != nil {
			err = fmt.Errorf("failed to open connection: %w", openErr)
		}
	})
	return err
}

// Close останавливает debounce, соединение и цикл событий.
// Неотправленные локальные правки отбрасываются.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.debouncer.Stop()

		s.post(func() {
			s.phase = Closed
			s.editor.SetReadOnly(true)
		})

		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		close(s.quit)
		<-s.stopped

		if closeErr := s.manager.Close(); closeErr != nil {
			err = fmt.Errorf("failed to close connection: %w", closeErr)
		}
		s.logger.Info("Session closed")
	})
	return err
}

// NotifyEdit уведомление поверхности редактирования о локальной правке.
// Не блокируется. До первого init правки игнорируются.
func (s *Session) NotifyEdit() {
	s.post(s.applyLocalEdit)
}

// Flush немедленно отправляет отложенную локальную правку.
func (s *Session) Flush() {
	s.debouncer.Flush()
}

// Undo откатывает документ к предыдущей записи истории и рассылает результат.
func (s *Session) Undo() bool {
	var ok bool
	s.do(func() { ok = s.step(s.history.Undo) })
	return ok
}

// Redo повторяет отмененную запись истории и рассылает результат.
func (s *Session) Redo() bool {
	var ok bool
	s.do(func() { ok = s.step(s.history.Redo) })
	return ok
}

// MoveCursor рассылает позицию курсора, если соединение установлено.
func (s *Session) MoveCursor(position int) bool {
	return s.presence.Move(position)
}

// Scroll расширяет видимое окно и перерисовывает редактор при изменении.
func (s *Session) Scroll(ev viewport.ScrollEvent) bool {
	var changed bool
	s.do(func() {
		if s.phase != Live {
			return
		}
		changed = s.window.Scroll(ev, viewport.LineCount(s.state.Content))
		if changed {
			s.editor.ImportContent(s.window.Slice(s.state.Content))
		}
	})
	return changed
}

// Content полное содержимое документа.
func (s *Session) Content() string {
	var content string
	s.query(func() { content = s.state.Content })
	return content
}

// State копия состояния документа.
func (s *Session) State() models.DocumentState {
	var state models.DocumentState
	s.query(func() { state = s.state })
	return state
}

func (s *Session) Phase() Phase {
	var phase Phase
	s.query(func() { phase = s.phase })
	return phase
}

func (s *Session) ConnectionState() models.ConnectionState {
	return s.manager.State()
}

// ProtocolErr последняя ошибка разбора входящего кадра.
// Сбрасывается при получении init.
func (s *Session) ProtocolErr() error {
	return s.manager.Err()
}

func (s *Session) HistoryLen() int {
	var n int
	s.query(func() { n = s.history.Len() })
	return n
}

func (s *Session) HistoryCursor() int {
	var n int
	s.query(func() { n = s.history.Cursor() })
	return n
}

// Presence позиции курсоров других участников.
func (s *Session) Presence() map[string]int {
	return s.presence.Positions()
}

// Viewport текущее видимое окно.
func (s *Session) Viewport() models.ViewportRange {
	var r models.ViewportRange
	s.query(func() { r = s.window.Range() })
	return r
}

// VisibleContent видимая часть документа.
func (s *Session) VisibleContent() string {
	var content string
	s.query(func() { content = s.window.Slice(s.state.Content) })
	return content
}
