// Package viewport управляет видимым окном строк большого документа.
//
// Окно расширяется страницами при приближении прокрутки к краю.
// Состояние документа всегда хранится целиком, окно влияет только на то,
// какая часть передается в редактор.
package viewport

import (
	"strings"

	"github.com/iudanet/docsync/internal/models"
)

const (
	DefaultThreshold   = 200 // пикселей до края
	DefaultPageSize    = 50  // строк на страницу
	DefaultInitialSize = 100 // строк в начальном окне
)

// Options параметры окна
type Options struct {
	Threshold   int
	PageSize    int
	InitialSize int
}

// ScrollEvent геометрия прокрутки, приходящая от поверхности редактирования.
type ScrollEvent struct {
	Offset         int // scrollTop
	ViewportHeight int // clientHeight
	ContentHeight  int // scrollHeight
}

// Window текущее окно [Start, End) в строках.
type Window struct {
	opts  Options
	rng   models.ViewportRange
	lines int
}

// New создает окно, нулевые значения опций заменяются значениями по умолчанию.
func New(opts Options) *Window {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.InitialSize <= 0 {
		opts.InitialSize = DefaultInitialSize
	}
	return &Window{opts: opts}
}

// Reset устанавливает начальное окно для документа из lineCount строк.
func (w *Window) Reset(lineCount int) {
	w.lines = lineCount
	w.rng = models.ViewportRange{Start: 0, End: min(w.opts.InitialSize, lineCount)}
}

// Range возвращает текущее окно.
func (w *Window) Range() models.ViewportRange {
	return w.rng
}

// Scroll расширяет окно при приближении к краю.
// Возвращает true, если окно изменилось.
func (w *Window) Scroll(ev ScrollEvent, lineCount int) bool {
	w.lines = lineCount
	before := w.rng
	w.clamp()

	if ev.ContentHeight-ev.Offset-ev.ViewportHeight < w.opts.Threshold {
		w.rng.End = min(w.rng.End+w.opts.PageSize, lineCount)
	}
	if ev.Offset < w.opts.Threshold && w.rng.Start > 0 {
		w.rng.Start = max(w.rng.Start-w.opts.PageSize, 0)
	}

	return w.rng != before
}

// Slice возвращает видимые строки content.
func (w *Window) Slice(content string) string {
	lines := w.fit(content)
	return strings.Join(lines[w.rng.Start:w.rng.End], "\n")
}

// Splice заменяет видимые строки content на edited и возвращает
// полный документ. Окно подстраивается под новое число строк.
func (w *Window) Splice(content, edited string) string {
	lines := w.fit(content)

	replacement := SplitLines(edited)
	out := make([]string, 0, len(lines)-w.rng.Len()+len(replacement))
	out = append(out, lines[:w.rng.Start]...)
	out = append(out, replacement...)
	out = append(out, lines[w.rng.End:]...)

	w.lines = len(out)
	w.rng.End = w.rng.Start + len(replacement)
	return strings.Join(out, "\n")
}

// fit подгоняет окно под content. Документ содержит хотя бы одну строку,
// поэтому пустое окно бывает только до первого Reset.
func (w *Window) fit(content string) []string {
	lines := SplitLines(content)
	if w.rng.End == 0 {
		w.Reset(len(lines))
		return lines
	}
	w.lines = len(lines)
	w.clamp()
	return lines
}

func (w *Window) clamp() {
	w.rng.End = min(w.rng.End, w.lines)
	w.rng.Start = min(w.rng.Start, w.rng.End)
	w.rng.Start = max(w.rng.Start, 0)
	// документ укоротился ниже окна
	if w.rng.Len() == 0 && w.lines > 0 {
		w.rng.Start = max(w.rng.End-w.opts.PageSize, 0)
	}
}

// SplitLines делит content на строки, пустой документ это одна пустая строка.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// LineCount количество строк content.
func LineCount(content string) int {
	return strings.Count(content, "\n") + 1
}
