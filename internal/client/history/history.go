// Package history хранит линейную историю содержимого документа для undo/redo.
package history

import "github.com/iudanet/docsync/internal/models"

// DefaultLimit максимальное количество записей истории
const DefaultLimit = 50

// History стек снимков документа с курсором.
// Локальные и удаленные изменения попадают в одну линейную историю.
//
// Не потокобезопасен: принадлежит циклу событий сессии.
type History struct {
	entries []models.HistoryEntry
	cursor  int
	limit   int
	nextIdx int
}

// New создает пустую историю. При limit <= 0 используется DefaultLimit.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{
		limit:  limit,
		cursor: -1,
	}
}

// Seed сбрасывает историю к единственной записи content.
func (h *History) Seed(content string) {
	h.entries = h.entries[:0]
	h.nextIdx = 0
	h.cursor = -1
	h.push(content)
}

// Record добавляет снимок после курсора, отбрасывая ветку redo.
// Возвращает false, если content совпадает с текущей записью.
func (h *History) Record(content string) bool {
	if h.cursor >= 0 && h.entries[h.cursor].Content == content {
		return false
	}

	h.entries = h.entries[:h.cursor+1]
	h.push(content)

	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
		h.cursor -= over
	}
	return true
}

// Undo сдвигает курсор назад и возвращает содержимое записи.
func (h *History) Undo() (string, bool) {
	if !h.CanUndo() {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor].Content, true
}

// Redo сдвигает курсор вперед и возвращает содержимое записи.
func (h *History) Redo() (string, bool) {
	if !h.CanRedo() {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor].Content, true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.entries)-1 }

func (h *History) Len() int { return len(h.entries) }

// Cursor индекс текущей записи, -1 для пустой истории.
func (h *History) Cursor() int { return h.cursor }

// Current содержимое записи под курсором.
func (h *History) Current() (string, bool) {
	if h.cursor < 0 {
		return "", false
	}
	return h.entries[h.cursor].Content, true
}

// Entries возвращает копию записей.
func (h *History) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) push(content string) {
	h.entries = append(h.entries, models.HistoryEntry{Content: content, Index: h.nextIdx})
	h.nextIdx++
	h.cursor = len(h.entries) - 1
}
