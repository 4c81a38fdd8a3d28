package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/docsync/internal/client/session"
	"github.com/iudanet/docsync/internal/client/viewport"
	"github.com/iudanet/docsync/internal/validation"
)

const (
	wsPath = "/api/v1/ws"

	// высота строки терминала в единицах ScrollEvent
	lineHeight   = 20
	screenHeight = 24
)

// runOpen интерактивное редактирование документа
func (c *Cli) runOpen(ctx context.Context, documentID string) error {
	if err := validation.ValidateDocumentID(documentID); err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	authData, err := c.currentAuth(ctx)
	if err != nil {
		return err
	}

	initialClock, err := c.metadata.GetClock(ctx)
	if err != nil {
		c.logger.Warn("Failed to load clock", "error", err)
	}

	term := newTerminal(c.io)
	s := session.New(session.Config{
		Endpoint:          strings.TrimRight(authData.ServerURL, "/") + wsPath,
		DocumentID:        documentID,
		UserID:            authData.UserID,
		Token:             authData.AccessToken,
		DebounceDelay:     c.opts.DebounceDelay,
		ReconnectInterval: c.opts.ReconnectInterval,
		PresenceTTL:       c.opts.PresenceTTL,
		InitialClock:      initialClock,
	}, session.Dependencies{
		Dialer:   c.dialer,
		Editor:   term,
		Overlay:  term,
		Listener: term,
		Cache:    c.snapshots,
		Logger:   c.logger,
	})
	defer c.closeSession(s)

	if err := s.Start(ctx); err != nil {
		return err
	}

	c.io.Printf("Opening %s as %s...\n", documentID, authData.Username)
	if !c.waitReady(ctx, term) {
		c.io.Println("Server unavailable: showing cached copy, editing is disabled until sync.")
	}
	c.io.Println("Type text to append a line, :quit to exit.")

	return c.repl(ctx, s, term)
}

// waitReady ждет первого init с сервера
func (c *Cli) waitReady(ctx context.Context, term *terminal) bool {
	timer := time.NewTimer(c.opts.InitTimeout)
	defer timer.Stop()

	select {
	case <-term.ready:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

func (c *Cli) repl(ctx context.Context, s *session.Session, term *terminal) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := c.io.ReadInput("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if !strings.HasPrefix(line, ":") {
			if !term.appendLine(line) {
				c.io.Println("Document is read-only until it is synchronized.")
				continue
			}
			s.NotifyEdit()
			continue
		}

		if quit := c.command(s, term, line); quit {
			return nil
		}
	}
}

// command выполняет команду ":..." и сообщает, нужно ли выйти
func (c *Cli) command(s *session.Session, term *terminal, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":undo":
		if !s.Undo() {
			c.io.Println("Nothing to undo.")
		}
	case ":redo":
		if !s.Redo() {
			c.io.Println("Nothing to redo.")
		}
	case ":cursor":
		if len(fields) != 2 {
			c.io.Println("Usage: :cursor N")
			return false
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil || pos < 0 {
			c.io.Println("Cursor position must be a non-negative number.")
			return false
		}
		if !s.MoveCursor(pos) {
			c.io.Println("Not connected, cursor not shared.")
		}
	case ":up", ":down":
		if !s.Scroll(scrollEvent(fields[0] == ":down", term.lines())) {
			c.io.Println("No more lines.")
		}
	case ":show":
		c.io.Printf("[%s, %s]\n", s.Phase(), s.ConnectionState())
		if err := s.ProtocolErr(); err != nil {
			c.io.Printf("Last protocol error: %v\n", err)
		}
		term.show(s.Viewport())
	default:
		c.io.Printf("Unknown command %s\n", fields[0])
	}
	return false
}

// scrollEvent геометрия прокрутки терминала: окно у верхнего или нижнего края
func scrollEvent(down bool, lines int) viewport.ScrollEvent {
	ev := viewport.ScrollEvent{
		ViewportHeight: min(lines, screenHeight) * lineHeight,
		ContentHeight:  lines * lineHeight,
	}
	if down {
		ev.Offset = ev.ContentHeight - ev.ViewportHeight
	}
	return ev
}

// closeSession отправляет отложенную правку, закрывает сессию и сохраняет часы
func (c *Cli) closeSession(s *session.Session) {
	s.Flush()
	revision := s.State().Revision

	if err := s.Close(); err != nil {
		c.logger.Warn("Failed to close session", "error", err)
	}

	// контекст команды к этому моменту может быть отменен
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.metadata.SaveClock(ctx, revision); err != nil {
		c.logger.Warn("Failed to save clock", "error", err)
	}
}
