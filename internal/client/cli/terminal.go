package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/client/session"
	"github.com/iudanet/docsync/internal/models"
)

// terminal строковая поверхность редактирования для интерактивного режима.
// Реализует session.Editor, session.Overlay и session.Listener.
type terminal struct {
	io      iocli.IO
	ready   chan struct{}
	cursors map[string]int
	content string

	mu        sync.Mutex
	readyOnce sync.Once
	readOnly  bool
}

var (
	_ session.Editor   = (*terminal)(nil)
	_ session.Overlay  = (*terminal)(nil)
	_ session.Listener = (*terminal)(nil)
)

func newTerminal(io iocli.IO) *terminal {
	return &terminal{
		io:       io,
		ready:    make(chan struct{}),
		cursors:  map[string]int{},
		readOnly: true,
	}
}

func (t *terminal) ImportContent(content string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.content = content
}

func (t *terminal) ExportContent() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.content
}

func (t *terminal) SetReadOnly(readOnly bool) {
	t.mu.Lock()
	t.readOnly = readOnly
	t.mu.Unlock()

	if !readOnly {
		t.readyOnce.Do(func() { close(t.ready) })
	}
}

func (t *terminal) Render(positions map[string]int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursors = positions
}

func (t *terminal) OnStatus(state models.ConnectionState) {
	t.io.Printf("[%s]\n", state)
}

func (t *terminal) OnError(err error) {
	t.io.Printf("[error] %v\n", err)
}

// appendLine добавляет строку в конец видимого текста.
// Возвращает false, пока редактор только для чтения.
func (t *terminal) appendLine(line string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.readOnly {
		return false
	}
	if t.content == "" {
		t.content = line
	} else {
		t.content += "\n" + line
	}
	return true
}

// lines количество видимых строк
func (t *terminal) lines() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Count(t.content, "\n") + 1
}

// show печатает видимый текст с номерами строк и курсоры участников
func (t *terminal) show(window models.ViewportRange) {
	t.mu.Lock()
	content := t.content
	cursors := maps.Clone(t.cursors)
	t.mu.Unlock()

	var b strings.Builder
	for i, line := range strings.Split(content, "\n") {
		fmt.Fprintf(&b, "%4d | %s\n", window.Start+i+1, line)
	}
	for _, userID := range slices.Sorted(maps.Keys(cursors)) {
		fmt.Fprintf(&b, "  cursor %s at %d\n", userID, cursors[userID])
	}
	t.io.Printf("%s", b.String())
}
