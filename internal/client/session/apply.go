package session

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/client/viewport"
	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/pkg/api"
)

const snapshotTimeout = 5 * time.Second

// applyRemote применяет входящее сообщение. Паника при применении
// передается слушателю как ошибка, сессия продолжает работу.
func (s *Session) applyRemote(msg api.Message) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %s: %v", ErrApplyPanic, msg.Type(), r)
			s.logger.Error("Failed to apply remote message", "type", msg.Type(), "error", err)
			s.listener.OnError(err)
		}
	}()

	switch m := msg.(type) {
	case api.Init:
		s.applyInit(m)
	case api.Update:
		s.applyUpdate(m)
	case api.Cursor:
		s.presence.Receive(m)
	case api.Error:
		s.logger.Warn("Server reported error", "message", m.Message)
		s.listener.OnError(&RemoteError{Message: m.Message})
	}
}

func (s *Session) applyInit(m api.Init) {
	s.manager.ClearErr()

	switch s.phase {
	case Initializing:
		s.clock.Witness(m.Revision)
		s.state = models.DocumentState{Content: m.Content, Revision: s.clock.Now()}
		s.history.Seed(m.Content)
		s.window.Reset(viewport.LineCount(m.Content))
		s.editor.ImportContent(s.window.Slice(m.Content))
		s.editor.SetReadOnly(false)
		s.phase = Live
		s.saveSnapshot()

		s.logger.Info("Document initialized", "revision", m.Revision)
	case Live:
		// повторный init после переподключения: серверная копия побеждает,
		// курсоры, полученные до разрыва, устарели
		s.logger.Info("Document re-initialized after reconnect", "revision", m.Revision)
		s.presence.Reset()
		s.replaceRemote(m.Content, m.Revision)
	}
}

func (s *Session) applyUpdate(m api.Update) {
	if s.phase != Live {
		s.logger.Debug("Update before init ignored", "from", m.UserID)
		return
	}
	if m.UserID == s.cfg.UserID {
		return
	}
	if m.DocumentID != "" && m.DocumentID != s.cfg.DocumentID {
		s.logger.Debug("Update for another document ignored", "target_document_id", m.DocumentID)
		return
	}

	s.logger.Debug("Remote update applied", "from", m.UserID, "revision", m.Revision)
	s.replaceRemote(m.Content, m.Revision)
}

// replaceRemote заменяет документ удаленной версией (last-writer-wins).
// Отложенная локальная отправка отбрасывается, иначе она перезаписала бы
// удаленную версию у остальных участников.
func (s *Session) replaceRemote(content string, revision int64) {
	s.clock.Witness(revision)
	s.state = models.DocumentState{Content: content, Revision: s.clock.Now()}
	s.debouncer.Cancel()
	s.history.Record(content)
	s.editor.ImportContent(s.window.Slice(content))
	s.saveSnapshot()
}

func (s *Session) applyLocalEdit() {
	if s.phase != Live {
		return
	}

	exported := s.editor.ExportContent()
	content := s.window.Splice(s.state.Content, exported)
	if content == s.state.Content {
		return
	}

	s.state = models.DocumentState{Content: content, Revision: s.clock.Tick()}
	s.history.Record(content)
	s.debouncer.Notify(content)
}

// step перемещение по истории: move это Undo или Redo
func (s *Session) step(move func() (string, bool)) bool {
	if s.phase != Live {
		return false
	}
	content, ok := move()
	if !ok {
		return false
	}

	s.state = models.DocumentState{Content: content, Revision: s.clock.Tick()}
	s.editor.ImportContent(s.window.Slice(content))
	s.debouncer.Notify(content)
	return true
}

// broadcast вызывается по срабатыванию debounce
func (s *Session) broadcast(content string) {
	if s.phase != Live {
		return
	}
	sent := s.manager.Send(api.Update{
		Content:    content,
		UserID:     s.cfg.UserID,
		DocumentID: s.cfg.DocumentID,
		Revision:   s.state.Revision,
	})
	if !sent {
		s.logger.Debug("Update not sent, channel unavailable")
	}
	s.saveSnapshot()
}

func (s *Session) restoreSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	snap, err := s.cache.GetSnapshot(ctx, s.cfg.DocumentID)
	if err != nil {
		s.logger.Debug("No cached snapshot", "error", err)
		return
	}

	// до init показываем кешированную копию только для чтения
	s.window.Reset(viewport.LineCount(snap.Content))
	s.editor.ImportContent(s.window.Slice(snap.Content))
	s.logger.Info("Cached snapshot restored", "revision", snap.Revision)
}

func (s *Session) saveSnapshot() {
	if s.cache == nil || s.ctx == nil {
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, snapshotTimeout)
	defer cancel()

	err := s.cache.SaveSnapshot(ctx, &models.Snapshot{
		DocumentID: s.cfg.DocumentID,
		Content:    s.state.Content,
		Revision:   s.state.Revision,
		SavedAt:    time.Now(),
	})
	if err != nil {
		s.logger.Warn("Failed to save snapshot", "error", err)
	}
}
